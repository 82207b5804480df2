package services

import (
	"context"
	"errors"
	"strings"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/repository"
	"aethra/internal/utils"

	"go.uber.org/zap"
)

type SubjectService struct {
	repo *repository.SubjectRepo
}

func NewSubjectService(repo *repository.SubjectRepo) *SubjectService {
	return &SubjectService{repo: repo}
}

func (s *SubjectService) List(ctx context.Context, onlyActive bool) ([]models.Subject, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.List(ctx, onlyActive)
	if err != nil {
		log.Error("Ошибка получения предметных областей (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *SubjectService) GetByID(ctx context.Context, id int) (*models.Subject, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SubjectService) Create(ctx context.Context, req models.CreateSubjectRequest) (*models.Subject, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание предметной области", zap.String("name", req.Name))

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("название предметной области обязательно")
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if exists, err := s.repo.SlugExists(ctx, slug); err != nil {
		log.Error("Ошибка проверки slug", zap.Error(err))
		return nil, err
	} else if exists {
		return nil, errors.New("slug уже занят")
	}

	sub := &models.Subject{
		Name:         name,
		Slug:         slug,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     boolOrDefault(req.IsActive, true),
	}
	id, err := s.repo.Create(ctx, sub)
	if err != nil {
		log.Error("Ошибка создания предметной области (repo)", zap.Error(err))
		return nil, err
	}
	log.Info("Предметная область создана", zap.Int("id", id), zap.String("slug", slug))
	return s.repo.GetByID(ctx, id)
}

func (s *SubjectService) Update(ctx context.Context, id int, req models.CreateSubjectRequest) (*models.Subject, error) {
	log := logger.WithCtx(ctx)

	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		sub.Name = name
	}
	sub.Description = req.Description
	sub.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		log.Error("Ошибка обновления предметной области (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Предметная область обновлена", zap.Int("id", id))
	return sub, nil
}

func (s *SubjectService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления предметной области (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Предметная область удалена", zap.Int("id", id))
	return nil
}

func boolOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
