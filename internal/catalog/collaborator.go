package catalog

import (
	"context"

	"aethra/internal/models"
)

// Collaborator — операции каталога, которые движки делегируют серверу.
// Реализация по HTTP живёт в internal/client; в тестах подставляются моки.
type Collaborator interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	ListJournals(ctx context.Context, f models.JournalFilter) ([]*models.Journal, error)
	ListVolumes(ctx context.Context, journalID int) ([]*models.Volume, error)
	ListIssues(ctx context.Context, volumeID int) ([]*models.Issue, error)
	ListArticles(ctx context.Context, f models.ArticleFilter) ([]*models.Article, error)

	CreateAuthor(ctx context.Context, fields models.AuthorFields) (*models.Author, error)
	UpdateAuthor(ctx context.Context, id int, fields models.AuthorFields) (*models.Author, error)

	// ReplaceArticleAuthorship заменяет список авторов статьи целиком
	// и возвращает сохранённый список в порядке author_order.
	ReplaceArticleAuthorship(ctx context.Context, articleID int64, entries []models.AuthorshipEntry) ([]models.Authorship, error)
}

// URLBuilder строит ссылки на файлы, которые раздаются через API.
// Прямые форматы (epub, mobi, prc) в построении ссылок не участвуют.
type URLBuilder interface {
	ArticlePDFURL(journalSlug, articleSlug string) string
	ArticleXMLURL(journalSlug, articleSlug string) string
}
