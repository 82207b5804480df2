package services

import (
	"context"
	"errors"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/repository"

	"go.uber.org/zap"
)

type IssueService struct {
	repo    *repository.IssueRepo
	volumes *repository.VolumeRepo
}

func NewIssueService(repo *repository.IssueRepo, volumes *repository.VolumeRepo) *IssueService {
	return &IssueService{repo: repo, volumes: volumes}
}

func (s *IssueService) ListByVolume(ctx context.Context, volumeID int, onlyActive bool) ([]*models.Issue, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.ListByVolume(ctx, volumeID, onlyActive)
	if err != nil {
		log.Error("Ошибка получения выпусков (repo)", zap.Int("volume_id", volumeID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *IssueService) GetByID(ctx context.Context, id int) (*models.Issue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *IssueService) Create(ctx context.Context, req models.CreateIssueRequest) (*models.Issue, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание выпуска", zap.Int("volume_id", req.VolumeID), zap.Int("number", req.Number))

	if req.Number < 1 {
		return nil, errors.New("номер выпуска должен быть положительным")
	}
	if ok, err := s.volumes.Exists(ctx, req.VolumeID); err != nil {
		log.Error("Ошибка проверки тома", zap.Error(err))
		return nil, err
	} else if !ok {
		return nil, errors.New("том не найден")
	}
	if req.IsSpecialIssue != nil && *req.IsSpecialIssue && req.SpecialIssueTitle == "" {
		return nil, errors.New("для специального выпуска требуется заголовок")
	}

	is := &models.Issue{
		VolumeID:          req.VolumeID,
		Number:            req.Number,
		Title:             req.Title,
		IsSpecialIssue:    boolOrDefault(req.IsSpecialIssue, false),
		SpecialIssueTitle: req.SpecialIssueTitle,
		IsCurrent:         boolOrDefault(req.IsCurrent, false),
		IsActive:          true,
	}
	id, err := s.repo.Create(ctx, is)
	if err != nil {
		log.Error("Ошибка создания выпуска (repo)", zap.Error(err))
		return nil, err
	}
	log.Info("Выпуск создан", zap.Int("id", id), zap.Bool("is_current", is.IsCurrent))
	return s.repo.GetByID(ctx, id)
}

func (s *IssueService) Update(ctx context.Context, id int, req models.CreateIssueRequest) (*models.Issue, error) {
	log := logger.WithCtx(ctx)

	is, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Number > 0 {
		is.Number = req.Number
	}
	is.Title = req.Title
	if req.IsSpecialIssue != nil {
		is.IsSpecialIssue = *req.IsSpecialIssue
	}
	is.SpecialIssueTitle = req.SpecialIssueTitle
	if is.IsSpecialIssue && is.SpecialIssueTitle == "" {
		return nil, errors.New("для специального выпуска требуется заголовок")
	}
	if req.IsCurrent != nil {
		is.IsCurrent = *req.IsCurrent
	}

	if err := s.repo.Update(ctx, is); err != nil {
		log.Error("Ошибка обновления выпуска (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Выпуск обновлён", zap.Int("id", id), zap.Bool("is_current", is.IsCurrent))
	return s.repo.GetByID(ctx, id)
}

func (s *IssueService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления выпуска (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Выпуск удалён", zap.Int("id", id))
	return nil
}
