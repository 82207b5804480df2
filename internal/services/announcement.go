package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/repository"
	"aethra/internal/utils"

	"go.uber.org/zap"
)

type AnnouncementService struct {
	repo *repository.AnnouncementRepo
}

func NewAnnouncementService(repo *repository.AnnouncementRepo) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

func (s *AnnouncementService) List(ctx context.Context, onlyPublished, onlyHomepage bool) ([]*models.Announcement, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.List(ctx, onlyPublished, onlyHomepage)
	if err != nil {
		log.Error("Ошибка получения объявлений (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *AnnouncementService) GetBySlug(ctx context.Context, slug string) (*models.Announcement, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *AnnouncementService) Create(ctx context.Context, req models.CreateAnnouncementRequest) (*models.Announcement, error) {
	log := logger.WithCtx(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.New("заголовок объявления обязателен")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("текст объявления обязателен")
	}

	a := &models.Announcement{
		Title:          title,
		Slug:           utils.UniqueSlug(title),
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		AuthorName:     req.AuthorName,
		ShowOnHomepage: req.ShowOnHomepage,
		IsPublished:    req.Publish,
	}
	if req.Publish {
		now := time.Now()
		a.PublishedAt = &now
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания объявления (repo)", zap.Error(err))
		return nil, err
	}
	log.Info("Объявление создано", zap.Int("id", id), zap.Bool("published", a.IsPublished))
	return s.repo.GetBySlug(ctx, a.Slug)
}

func (s *AnnouncementService) Update(ctx context.Context, slug string, req models.CreateAnnouncementRequest) (*models.Announcement, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		a.Title = title
	}
	a.Excerpt = req.Excerpt
	if strings.TrimSpace(req.Content) != "" {
		a.Content = req.Content
	}
	a.AuthorName = req.AuthorName
	a.ShowOnHomepage = req.ShowOnHomepage
	if req.Publish && !a.IsPublished {
		now := time.Now()
		a.IsPublished = true
		a.PublishedAt = &now
	}

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("Ошибка обновления объявления (repo)", zap.Int("id", a.ID), zap.Error(err))
		return nil, err
	}
	log.Info("Объявление обновлено", zap.Int("id", a.ID))
	return a, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления объявления (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Объявление удалено", zap.Int("id", id))
	return nil
}
