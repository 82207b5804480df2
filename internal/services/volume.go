package services

import (
	"context"
	"errors"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/repository"

	"go.uber.org/zap"
)

type VolumeService struct {
	repo     *repository.VolumeRepo
	journals *repository.JournalRepo
}

func NewVolumeService(repo *repository.VolumeRepo, journals *repository.JournalRepo) *VolumeService {
	return &VolumeService{repo: repo, journals: journals}
}

func (s *VolumeService) ListByJournal(ctx context.Context, journalID int, onlyActive bool) ([]*models.Volume, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.ListByJournal(ctx, journalID, onlyActive)
	if err != nil {
		log.Error("Ошибка получения томов (repo)", zap.Int("journal_id", journalID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *VolumeService) GetByID(ctx context.Context, id int) (*models.Volume, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VolumeService) Create(ctx context.Context, req models.CreateVolumeRequest) (*models.Volume, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание тома", zap.Int("journal_id", req.JournalID), zap.Int("volume_number", req.VolumeNumber))

	if req.VolumeNumber < 1 {
		return nil, errors.New("номер тома должен быть положительным")
	}
	if req.Year < 1800 || req.Year > 2200 {
		return nil, errors.New("некорректный год тома")
	}
	if _, err := s.journals.GetByID(ctx, req.JournalID); err != nil {
		log.Warn("Журнал не найден", zap.Int("journal_id", req.JournalID), zap.Error(err))
		return nil, errors.New("журнал не найден")
	}

	v := &models.Volume{
		JournalID:    req.JournalID,
		VolumeNumber: req.VolumeNumber,
		Title:        req.Title,
		Year:         req.Year,
		Description:  req.Description,
		IsArchived:   boolOrDefault(req.IsArchived, false),
		IsActive:     true,
	}
	id, err := s.repo.Create(ctx, v)
	if err != nil {
		log.Error("Ошибка создания тома (repo)", zap.Error(err))
		return nil, err
	}
	log.Info("Том создан", zap.Int("id", id))
	return s.repo.GetByID(ctx, id)
}

func (s *VolumeService) Update(ctx context.Context, id int, req models.CreateVolumeRequest) (*models.Volume, error) {
	log := logger.WithCtx(ctx)

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.VolumeNumber > 0 {
		v.VolumeNumber = req.VolumeNumber
	}
	if req.Year > 0 {
		if req.Year < 1800 || req.Year > 2200 {
			return nil, errors.New("некорректный год тома")
		}
		v.Year = req.Year
	}
	v.Title = req.Title
	v.Description = req.Description
	if req.IsArchived != nil {
		v.IsArchived = *req.IsArchived
	}

	if err := s.repo.Update(ctx, v); err != nil {
		log.Error("Ошибка обновления тома (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Том обновлён", zap.Int("id", id))
	return v, nil
}

func (s *VolumeService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления тома (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}
	log.Info("Том удалён", zap.Int("id", id))
	return nil
}
