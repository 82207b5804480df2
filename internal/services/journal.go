package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/repository"
	"aethra/internal/utils"

	"go.uber.org/zap"
)

type JournalService struct {
	repo *repository.JournalRepo
}

func NewJournalService(repo *repository.JournalRepo) *JournalService {
	return &JournalService{repo: repo}
}

func (s *JournalService) List(ctx context.Context, f models.JournalFilter, onlyActive bool) ([]*models.Journal, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка журналов",
		zap.String("subject", f.SubjectSlug),
		zap.String("search", f.Search),
		zap.Bool("only_active", onlyActive),
	)
	list, err := s.repo.List(ctx, f, onlyActive)
	if err != nil {
		log.Error("Ошибка получения списка журналов (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *JournalService) GetByID(ctx context.Context, id int) (*models.Journal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *JournalService) GetBySlug(ctx context.Context, slug string) (*models.Journal, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *JournalService) Create(ctx context.Context, req models.CreateJournalRequest) (*models.Journal, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание журнала", zap.String("title", strings.TrimSpace(req.Title)))

	title := strings.TrimSpace(req.Title)
	if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
		err := errors.New("длина названия журнала должна быть от 3 до 255 символов")
		log.Warn("Валидация не пройдена: название", zap.Int("runes", l), zap.Error(err))
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	if exists, err := s.repo.SlugExists(ctx, slug); err != nil {
		log.Error("Ошибка проверки slug", zap.Error(err))
		return nil, err
	} else if exists {
		return nil, errors.New("slug уже занят")
	}

	j := &models.Journal{
		Title:         title,
		Slug:          slug,
		ShortTitle:    req.ShortTitle,
		Description:   req.Description,
		ISSNPrint:     req.ISSNPrint,
		ISSNOnline:    req.ISSNOnline,
		EditorInChief: req.EditorInChief,
		Publisher:     req.Publisher,
		Frequency:     req.Frequency,
		IsActive:      boolOrDefault(req.IsActive, true),
		IsFeatured:    boolOrDefault(req.IsFeatured, false),
	}

	id, err := s.repo.Create(ctx, j, req.SubjectIDs)
	if err != nil {
		log.Error("Ошибка создания журнала (repo)", zap.Error(err))
		return nil, err
	}
	log.Info("Журнал создан", zap.Int("id", id), zap.String("slug", slug))
	return s.repo.GetByID(ctx, id)
}

func (s *JournalService) Update(ctx context.Context, id int, req models.CreateJournalRequest) (*models.Journal, error) {
	log := logger.WithCtx(ctx)

	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
			return nil, errors.New("длина названия журнала должна быть от 3 до 255 символов")
		}
		j.Title = title
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" && slug != j.Slug {
		if exists, err := s.repo.SlugExists(ctx, slug); err != nil {
			return nil, err
		} else if exists {
			return nil, errors.New("slug уже занят")
		}
		j.Slug = slug
	}
	j.ShortTitle = req.ShortTitle
	j.Description = req.Description
	j.ISSNPrint = req.ISSNPrint
	j.ISSNOnline = req.ISSNOnline
	j.EditorInChief = req.EditorInChief
	j.Publisher = req.Publisher
	j.Frequency = req.Frequency
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		j.IsFeatured = *req.IsFeatured
	}

	if err := s.repo.Update(ctx, j, req.SubjectIDs); err != nil {
		log.Error("Ошибка обновления журнала (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Журнал обновлён", zap.Int("id", id))
	return s.repo.GetByID(ctx, id)
}

func (s *JournalService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления журнала (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Журнал удалён", zap.Int("id", id))
	return nil
}
