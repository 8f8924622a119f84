package domain

// DifficultyCount — решено/всего по одной сложности.
type DifficultyCount struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// ProblemStats держит ровно три уровня сложности.
// Всё, что пришло с другим именем (например "All"), отбрасывается.
type ProblemStats struct {
	Easy   DifficultyCount `json:"easy"`
	Medium DifficultyCount `json:"medium"`
	Hard   DifficultyCount `json:"hard"`
}

// Tier возвращает счётчик по имени сложности в нижнем регистре,
// nil — если сложность не из фиксированного набора.
func (p *ProblemStats) Tier(difficulty string) *DifficultyCount {
	switch difficulty {
	case "easy":
		return &p.Easy
	case "medium":
		return &p.Medium
	case "hard":
		return &p.Hard
	}
	return nil
}

// UserProfile — итоговый плоский ответ API.
// Отсутствующие у LeetCode поля отдаём как null/пустой список, не как ошибку.
type UserProfile struct {
	Username    *string        `json:"username"`
	Github      *string        `json:"github"`
	Twitter     *string        `json:"twitter"`
	Linkedin    *string        `json:"linkedin"`
	Ranking     *int           `json:"ranking"`
	RealName    *string        `json:"realname"`
	AboutMe     *string        `json:"aboutme"`
	School      *string        `json:"school"`
	Website     []string       `json:"website"`
	CountryName *string        `json:"country_name"`
	Company     *string        `json:"company"`
	JobTitle    *string        `json:"job_title"`
	Skill       []string       `json:"skill"`
	Progress    ProgressReport `json:"progress"`
	Problem     ProblemStats   `json:"problem"`
}
