package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"aethra/internal/models"
	"aethra/internal/utils"
)

// Мок-хранилище пользователей (заглушка)
type mockUserStore struct {
	users  map[string]*models.User
	tokens map[int]string
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: map[string]*models.User{}, tokens: map[int]string{}}
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (m *mockUserStore) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockUserStore) SaveRefreshToken(_ context.Context, userID int, token string, _ time.Time) error {
	m.tokens[userID] = token
	return nil
}

func (m *mockUserStore) IsRefreshTokenValid(_ context.Context, userID int, token string) (bool, error) {
	return m.tokens[userID] == token, nil
}

func (m *mockUserStore) DeleteRefreshToken(_ context.Context, userID int) error {
	delete(m.tokens, userID)
	return nil
}

func TestLogin_Success(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store)

	hashed, _ := utils.HashPassword("secret")
	store.users["editor@example.org"] = &models.User{
		ID:           1,
		Email:        "editor@example.org",
		PasswordHash: hashed,
		Role:         "admin",
	}

	pair, user, err := service.Login(context.Background(), "editor@example.org", "secret", "testsecret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("токены не сгенерированы")
	}
	if user == nil || user.ID != 1 {
		t.Fatal("пользователь не возвращён")
	}
	if store.tokens[1] != pair.RefreshToken {
		t.Fatal("refresh-токен не сохранён")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store)

	hashed, _ := utils.HashPassword("secret")
	store.users["editor@example.org"] = &models.User{ID: 1, Email: "editor@example.org", PasswordHash: hashed}

	_, _, err := service.Login(context.Background(), "editor@example.org", "wrong", "testsecret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка при неверном пароле")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	service := NewAuthService(newMockUserStore())

	_, _, err := service.Login(context.Background(), "nobody@example.org", "secret", "testsecret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка при логине несуществующего пользователя")
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store)

	hashed, _ := utils.HashPassword("secret")
	store.users["editor@example.org"] = &models.User{ID: 1, Email: "editor@example.org", PasswordHash: hashed, Role: "admin"}

	pair, _, err := service.Login(context.Background(), "editor@example.org", "secret", "testsecret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	fresh, err := service.Refresh(context.Background(), 1, pair.RefreshToken, "testsecret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("ошибка обновления токенов: %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatal("новая пара токенов не сгенерирована")
	}
	if store.tokens[1] != fresh.RefreshToken {
		t.Fatal("сохранённый refresh-токен должен замениться новым")
	}
}

func TestRefresh_InvalidToken(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store)

	store.users["editor@example.org"] = &models.User{ID: 1, Email: "editor@example.org"}

	_, err := service.Refresh(context.Background(), 1, "stale-token", "testsecret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка для недействительного refresh-токена")
	}
}

func TestLogout(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store)
	store.tokens[1] = "token"

	if err := service.Logout(context.Background(), 1); err != nil {
		t.Fatalf("ошибка выхода: %v", err)
	}
	if _, ok := store.tokens[1]; ok {
		t.Fatal("refresh-токен должен быть удалён")
	}
}
