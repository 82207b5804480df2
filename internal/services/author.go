package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/repository"

	"go.uber.org/zap"
)

type AuthorService struct {
	repo     repository.AuthorRepo
	articles repository.ArticleRepo
}

func NewAuthorService(repo repository.AuthorRepo, articles repository.ArticleRepo) *AuthorService {
	return &AuthorService{repo: repo, articles: articles}
}

func (s *AuthorService) List(ctx context.Context, search string) ([]*models.Author, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.List(ctx, search)
	if err != nil {
		log.Error("Ошибка получения авторов (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *AuthorService) GetByID(ctx context.Context, id int) (*models.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AuthorService) Create(ctx context.Context, req models.AuthorFields) (*models.Author, error) {
	log := logger.WithCtx(ctx)

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		err := errors.New("имя и фамилия автора обязательны")
		log.Warn("Валидация не пройдена: имя автора", zap.Error(err))
		return nil, err
	}

	a := &models.Author{
		FirstName:   first,
		LastName:    last,
		FullName:    first + " " + last,
		Email:       strings.TrimSpace(req.Email),
		OrcidID:     strings.TrimSpace(req.OrcidID),
		Affiliation: req.Affiliation,
		Department:  req.Department,
		Country:     req.Country,
		Bio:         req.Bio,
	}
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания автора (repo)", zap.Error(err))
		return nil, err
	}
	log.Info("Автор создан", zap.Int("id", id), zap.String("full_name", a.FullName))
	return s.repo.GetByID(ctx, id)
}

// Update меняет глобальную карточку автора: правка видна во всех статьях,
// к которым автор привязан.
func (s *AuthorService) Update(ctx context.Context, id int, req models.AuthorFields) (*models.Author, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		err := errors.New("имя и фамилия автора обязательны")
		log.Warn("Валидация не пройдена: имя автора", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	a.FirstName = first
	a.LastName = last
	a.FullName = first + " " + last
	a.Email = strings.TrimSpace(req.Email)
	a.OrcidID = strings.TrimSpace(req.OrcidID)
	a.Affiliation = req.Affiliation
	a.Department = req.Department
	a.Country = req.Country
	a.Bio = req.Bio

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("Ошибка обновления автора (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Автор обновлён", zap.Int("id", id))
	return a, nil
}

func (s *AuthorService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления автора (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Автор удалён", zap.Int("id", id))
	return nil
}

func (s *AuthorService) ListByArticle(ctx context.Context, articleID int64) ([]models.Authorship, error) {
	return s.repo.ListByArticle(ctx, articleID)
}

// ReplaceArticleAuthors заменяет список авторов статьи целиком.
// Порядок в сохранённом списке определяется позицией элемента,
// присланные значения author_order игнорируются.
func (s *AuthorService) ReplaceArticleAuthors(ctx context.Context, articleID int64, entries []models.AuthorshipEntry) ([]models.Authorship, error) {
	log := logger.WithCtx(ctx)
	log.Info("Замена списка авторов статьи",
		zap.Int64("article_id", articleID),
		zap.Int("count", len(entries)),
	)

	if ok, err := s.articles.Exists(ctx, articleID); err != nil {
		log.Error("Ошибка проверки статьи", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	} else if !ok {
		return nil, errors.New("статья не найдена")
	}

	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.AuthorID]; dup {
			err := fmt.Errorf("автор %d указан в списке дважды", e.AuthorID)
			log.Warn("Валидация не пройдена: дубль автора", zap.Error(err))
			return nil, err
		}
		seen[e.AuthorID] = struct{}{}

		if ok, err := s.repo.Exists(ctx, e.AuthorID); err != nil {
			return nil, err
		} else if !ok {
			err := fmt.Errorf("автор %d не найден", e.AuthorID)
			log.Warn("Валидация не пройдена: автор не найден", zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.ReplaceArticleAuthors(ctx, articleID, entries); err != nil {
		log.Error("Ошибка замены авторов (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}

	saved, err := s.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	log.Info("Список авторов заменён", zap.Int64("article_id", articleID), zap.Int("count", len(saved)))
	return saved, nil
}
