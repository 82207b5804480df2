package models

import "time"

// Author — глобальная сущность: один автор может быть привязан
// к любому числу статей. Правка его полей видна во всех статьях.
type Author struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email,omitempty"`
	OrcidID     string    `json:"orcid_id,omitempty"`
	Affiliation string    `json:"affiliation,omitempty"`
	Department  string    `json:"department,omitempty"`
	Country     string    `json:"country,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Authorship — связка статья–автор с порядковым номером и признаком
// корреспондирующего автора. author_order внутри статьи — непрерывная
// последовательность 1..N без дыр и дублей после любой мутации.
type Authorship struct {
	ArticleID          int64  `json:"article_id"`
	AuthorID           int    `json:"author_id"`
	AuthorOrder        int    `json:"author_order"`
	IsCorresponding    bool   `json:"is_corresponding"`
	AuthorContribution string `json:"author_contribution,omitempty"`

	// Снимок полей автора для отображения списка без дополнительных запросов.
	Author Author `json:"author"`
}

// swagger:model AuthorFields
type AuthorFields struct {
	FirstName   string `json:"first_name" example:"Jane"`
	LastName    string `json:"last_name" example:"Doe"`
	Email       string `json:"email" example:"jane.doe@example.edu"`
	OrcidID     string `json:"orcid_id" example:"0000-0002-1825-0097"`
	Affiliation string `json:"affiliation"`
	Department  string `json:"department"`
	Country     string `json:"country"`
	Bio         string `json:"bio"`
}

// AuthorshipEntry — элемент полного списка авторов статьи.
// Контракт синхронизации: список всегда заменяется целиком.
type AuthorshipEntry struct {
	AuthorID           int    `json:"author_id"`
	AuthorOrder        int    `json:"author_order"`
	IsCorresponding    bool   `json:"is_corresponding"`
	AuthorContribution string `json:"author_contribution,omitempty"`
}

// swagger:model ReplaceAuthorsRequest
type ReplaceAuthorsRequest struct {
	Authors []AuthorshipEntry `json:"authors"`
}
