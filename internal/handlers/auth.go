package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"aethra/internal/config"
	"aethra/internal/logger"
	"aethra/internal/middleware"
	"aethra/internal/models"
	"aethra/internal/services"
	helpers "aethra/internal/utils/helpres"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type loginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

func (h *AuthHandler) tokenTTLs() (time.Duration, time.Duration) {
	accessTTL, err := time.ParseDuration(h.cfg.AccessTokenTTL)
	if err != nil {
		accessTTL = 15 * time.Minute
	}
	refreshTTL, err := time.ParseDuration(h.cfg.RefreshTokenTTL)
	if err != nil {
		refreshTTL = 720 * time.Hour
	}
	return accessTTL, refreshTTL
}

// Login godoc
// @Summary Вход по email и паролю
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Учётные данные"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверные учётные данные"
// @Router /api/v1/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при входе", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	accessTTL, refreshTTL := h.tokenTTLs()
	tokens, user, err := h.authService.Login(r.Context(), req.Email, req.Password, h.cfg.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		helpers.Error(w, http.StatusUnauthorized, "Неверные учётные данные")
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	})
}

// Refresh godoc
// @Summary Обновление пары токенов по refresh-токену
// @Tags auth
// @Accept json
// @Produce json
// @Param input body refreshRequest true "Refresh-токен"
// @Success 200 {object} models.TokenPair
// @Failure 401 {string} string "Недействительный refresh-токен"
// @Router /api/v1/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		helpers.Error(w, http.StatusBadRequest, "Требуется refresh_token")
		return
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Log.Warn("Недействительный refresh-токен", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh-токен")
		return
	}
	if tt, _ := claims["token_type"].(string); tt != "refresh" {
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh-токен")
		return
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Недопустимый payload")
		return
	}

	accessTTL, refreshTTL := h.tokenTTLs()
	tokens, err := h.authService.Refresh(r.Context(), int(userID), req.RefreshToken, h.cfg.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh-токен")
		return
	}
	helpers.JSON(w, http.StatusOK, tokens)
}

// Logout godoc
// @Summary Выход: инвалидация refresh-токена
// @Tags auth
// @Security ApiKeyAuth
// @Success 200 {string} string "Выход выполнен"
// @Router /api/v1/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextUserID).(int)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не удалось определить пользователя")
		return
	}
	if err := h.authService.Logout(r.Context(), userID); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка выхода")
		return
	}
	helpers.JSON(w, http.StatusOK, "Выход выполнен")
}
