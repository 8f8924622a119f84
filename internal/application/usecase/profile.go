package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"leetcode-stats-api/internal/domain"
	"leetcode-stats-api/internal/infrastructure/leetcode"
)

// Текст отдаётся клиенту как есть, поэтому с заглавной буквы и с точкой.
var ErrUserNotFound = errors.New("Could not fetch user data. Maybe invalid username or blocked request.")

type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*leetcode.ProfileResponse, error)
}

type ProfileCache interface {
	Get(ctx context.Context, username string) ([]byte, bool)
	Set(ctx context.Context, username string, data []byte)
}

type ProfileUseCase struct {
	fetcher ProfileFetcher
	cache   ProfileCache
	now     func() time.Time
}

func NewProfileUseCase(fetcher ProfileFetcher, cache ProfileCache) *ProfileUseCase {
	return &ProfileUseCase{
		fetcher: fetcher,
		cache:   cache,
		now:     time.Now,
	}
}

// GetUserProfile — весь конвейер: кэш -> LeetCode -> валидация -> агрегация -> сборка -> кэш.
// Попадание в кэш возвращает сохранённые байты без повторной обработки,
// поэтому повторный ответ байт-в-байт совпадает с первым.
func (uc *ProfileUseCase) GetUserProfile(ctx context.Context, username string) (json.RawMessage, error) {
	if cached, ok := uc.cache.Get(ctx, username); ok {
		return cached, nil
	}

	resp, err := uc.fetcher.FetchProfile(ctx, username)
	if err != nil {
		log.Printf("leetcode fetch failed for %s: %v", username, err)
		return nil, ErrUserNotFound
	}
	if resp.Data == nil || resp.Data.MatchedUser == nil {
		// Юзера нет либо LeetCode зарезал запрос — для клиента это одно и то же
		return nil, ErrUserNotFound
	}

	user := resp.Data.MatchedUser

	profile := user.Profile
	if profile == nil {
		profile = &leetcode.Profile{}
	}

	if user.UserCalendar == nil {
		return nil, errors.New("matched user has no submission calendar")
	}
	var calendar map[string]int
	if err := json.Unmarshal([]byte(user.UserCalendar.SubmissionCalendar), &calendar); err != nil {
		return nil, fmt.Errorf("parse submission calendar: %w", err)
	}

	progress, err := domain.AggregateCalendar(calendar, uc.now())
	if err != nil {
		return nil, err
	}

	var problems domain.ProblemStats
	for _, q := range resp.Data.AllQuestionsCount {
		// Агрегатную строку "All" и прочие незнакомые сложности пропускаем
		if tier := problems.Tier(strings.ToLower(q.Difficulty)); tier != nil {
			tier.Total = q.Count
		}
	}
	if user.SubmitStats != nil {
		for _, s := range user.SubmitStats.AcSubmissionNum {
			if tier := problems.Tier(strings.ToLower(s.Difficulty)); tier != nil {
				tier.Solved = s.Count
			}
		}
	}

	website := profile.Websites
	if website == nil {
		website = []string{}
	}
	skill := profile.SkillTags
	if skill == nil {
		skill = []string{}
	}

	result := domain.UserProfile{
		Username:    user.Username,
		Github:      user.GithubURL,
		Twitter:     user.TwitterURL,
		Linkedin:    user.LinkedinURL,
		Ranking:     profile.Ranking,
		RealName:    profile.RealName,
		AboutMe:     profile.AboutMe,
		School:      profile.School,
		Website:     website,
		CountryName: profile.CountryName,
		Company:     profile.Company,
		JobTitle:    profile.JobTitle,
		Skill:       skill,
		Progress:    progress,
		Problem:     problems,
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, username, data)
	return data, nil
}
