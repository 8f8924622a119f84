package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultURL = "https://leetcode.com/graphql"

// Запрос собран по Network-табу профиля LeetCode: профиль, статистика сабмитов,
// календарь и общее число задач — всё одним документом.
const profileQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      realName
      aboutMe
      school
      websites
      countryName
      company
      jobTitle
      skillTags
      userAvatar
      ranking
    }
    githubUrl
    twitterUrl
    linkedinUrl
    submitStats {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
      totalSubmissionNum {
        difficulty
        count
        submissions
      }
    }
    userCalendar {
      submissionCalendar
    }
  }
  allQuestionsCount {
    difficulty
    count
  }
}
`

type Profile struct {
	RealName    *string  `json:"realName"`
	AboutMe     *string  `json:"aboutMe"`
	School      *string  `json:"school"`
	Websites    []string `json:"websites"`
	CountryName *string  `json:"countryName"`
	Company     *string  `json:"company"`
	JobTitle    *string  `json:"jobTitle"`
	SkillTags   []string `json:"skillTags"`
	UserAvatar  *string  `json:"userAvatar"`
	Ranking     *int     `json:"ranking"`
}

type SubmissionNum struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type SubmitStats struct {
	AcSubmissionNum    []SubmissionNum `json:"acSubmissionNum"`
	TotalSubmissionNum []SubmissionNum `json:"totalSubmissionNum"`
}

type UserCalendar struct {
	SubmissionCalendar string `json:"submissionCalendar"`
}

type MatchedUser struct {
	Username     *string       `json:"username"`
	Profile      *Profile      `json:"profile"`
	GithubURL    *string       `json:"githubUrl"`
	TwitterURL   *string       `json:"twitterUrl"`
	LinkedinURL  *string       `json:"linkedinUrl"`
	SubmitStats  *SubmitStats  `json:"submitStats"`
	UserCalendar *UserCalendar `json:"userCalendar"`
}

type QuestionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// ProfileResponse — распарсенный ответ GraphQL как есть, без интерпретации.
type ProfileResponse struct {
	Data *struct {
		MatchedUser       *MatchedUser    `json:"matchedUser"`
		AllQuestionsCount []QuestionCount `json:"allQuestionsCount"`
	} `json:"data"`
}

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchProfile шлёт единственный фиксированный запрос с username как переменной.
// Одна попытка, без ретраев.
func (c *Client) FetchProfile(ctx context.Context, username string) (*ProfileResponse, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query":     profileQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	// Без User-Agent LeetCode режет запросы
	req.Header.Set("User-Agent", "LeetCode-API/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("leetcode returned non-JSON body (status %d): %w", resp.StatusCode, err)
	}

	return &profile, nil
}
