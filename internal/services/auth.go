package services

import (
	"context"
	"errors"
	"time"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/utils"

	"go.uber.org/zap"
)

// UserStore — операции над пользователями и refresh-токенами,
// нужные сервису аутентификации.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	SaveRefreshToken(ctx context.Context, userID int, token string, expiresAt time.Time) error
	IsRefreshTokenValid(ctx context.Context, userID int, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID int) error
}

type AuthService struct {
	repo UserStore
}

func NewAuthService(repo UserStore) *AuthService {
	return &AuthService{repo: repo}
}

// Login проверяет учётные данные и выдаёт пару токенов.
func (s *AuthService) Login(
	ctx context.Context,
	email, password, jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) (*models.TokenPair, *models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("email", email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.String("email", email), zap.Error(err))
		return nil, nil, errors.New("пользователь не найден")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("email", email))
		return nil, nil, errors.New("неверный пароль")
	}

	access, err := utils.GenerateToken(jwtSecret, user.ID, user.Role, accessTTL, "access")
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return nil, nil, err
	}
	refresh, err := utils.GenerateToken(jwtSecret, user.ID, user.Role, refreshTTL, "refresh")
	if err != nil {
		log.Error("Ошибка генерации refresh-токена", zap.Error(err))
		return nil, nil, err
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID, refresh, time.Now().Add(refreshTTL)); err != nil {
		log.Error("Ошибка сохранения refresh-токена", zap.Error(err))
		return nil, nil, err
	}

	log.Info("Вход выполнен (service)", zap.Int("user_id", user.ID))
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, user, nil
}

// Refresh выдаёт новую пару токенов по действующему refresh-токену.
// Старый токен при этом инвалидируется.
func (s *AuthService) Refresh(
	ctx context.Context,
	userID int, refreshToken, jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) (*models.TokenPair, error) {
	log := logger.WithCtx(ctx)

	ok, err := s.repo.IsRefreshTokenValid(ctx, userID, refreshToken)
	if err != nil {
		log.Error("Ошибка проверки refresh-токена", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if !ok {
		log.Warn("Недействительный refresh-токен", zap.Int("user_id", userID))
		return nil, errors.New("недействительный refresh-токен")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	access, err := utils.GenerateToken(jwtSecret, user.ID, user.Role, accessTTL, "access")
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateToken(jwtSecret, user.ID, user.Role, refreshTTL, "refresh")
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveRefreshToken(ctx, user.ID, refresh, time.Now().Add(refreshTTL)); err != nil {
		return nil, err
	}

	log.Info("Токены обновлены (service)", zap.Int("user_id", user.ID))
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID int) error {
	log := logger.WithCtx(ctx)
	log.Info("Выход пользователя (service)", zap.Int("user_id", userID))
	return s.repo.DeleteRefreshToken(ctx, userID)
}
