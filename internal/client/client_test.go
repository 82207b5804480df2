package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aethra/internal/catalog"
	"aethra/internal/models"
)

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
}

func loginHandler(access, refresh string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, map[string]any{
			"access_token":  access,
			"refresh_token": refresh,
			"user":          &models.User{ID: 1, Email: "editor@example.org", Role: "admin"},
		})
	}
}

func TestClient_LoginStoresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/login", loginHandler("a1", "r1"))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), "editor@example.org", "secret")
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if user == nil || user.Email != "editor@example.org" {
		t.Fatal("пользователь не распакован из конверта")
	}

	s := c.Session()
	if !s.Authenticated() || s.AccessToken != "a1" || s.RefreshToken != "r1" {
		t.Fatalf("сессия не сохранена: %+v", s)
	}
}

func TestClient_ListSubjectsUnwrapsEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/subjects", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, []models.Subject{
			{ID: 1, Name: "Medicine", Slug: "medicine"},
			{ID: 2, Name: "Biology", Slug: "biology"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	subjects, err := New(srv.URL).ListSubjects(context.Background())
	if err != nil {
		t.Fatalf("ошибка запроса: %v", err)
	}
	if len(subjects) != 2 || subjects[0].Slug != "medicine" {
		t.Fatalf("данные распакованы неверно: %+v", subjects)
	}
}

func TestClient_ListArticlesQuery(t *testing.T) {
	var gotQuery map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/articles", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		writeData(w, http.StatusOK, []*models.Article{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	jid, iid := 3, 12
	_, err := New(srv.URL).ListArticles(context.Background(), models.ArticleFilter{
		JournalID: &jid,
		IssueID:   &iid,
		Search:    "crispr",
		Ordering:  "-published_date",
	})
	if err != nil {
		t.Fatalf("ошибка запроса: %v", err)
	}

	want := map[string]string{
		"journal_id": "3",
		"issue_id":   "12",
		"search":     "crispr",
		"ordering":   "-published_date",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("параметр %s: ожидалось %q, получено %q", k, v, gotQuery[k])
		}
	}
	if _, ok := gotQuery["volume_id"]; ok {
		t.Fatal("невыбранный том не должен попадать в параметры")
	}
}

func TestClient_RefreshAndRetryOn401(t *testing.T) {
	var putAttempts int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/login", loginHandler("stale", "r1"))
	mux.HandleFunc("POST /api/v1/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, models.TokenPair{AccessToken: "fresh", RefreshToken: "r2"})
	})
	mux.HandleFunc("PUT /api/v1/admin/articles/7/authors", func(w http.ResponseWriter, r *http.Request) {
		putAttempts++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			writeError(w, http.StatusUnauthorized, "токен просрочен")
			return
		}
		writeData(w, http.StatusOK, []models.Authorship{
			{ArticleID: 7, AuthorID: 1, AuthorOrder: 1},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "editor@example.org", "secret"); err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	saved, err := c.ReplaceArticleAuthorship(context.Background(), 7, []models.AuthorshipEntry{
		{AuthorID: 1, AuthorOrder: 1},
	})
	if err != nil {
		t.Fatalf("запрос должен пройти после обновления токенов: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("ожидалась 1 сохранённая запись, получено %d", len(saved))
	}
	if putAttempts != 2 {
		t.Fatalf("ожидалось 2 попытки (401 и повтор), получено %d", putAttempts)
	}
	if s := c.Session(); s.AccessToken != "fresh" || s.RefreshToken != "r2" {
		t.Fatalf("сессия должна обновиться: %+v", s)
	}
}

func TestClient_PersistentUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/login", loginHandler("stale", "r1"))
	mux.HandleFunc("POST /api/v1/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, models.TokenPair{AccessToken: "still-stale", RefreshToken: "r2"})
	})
	mux.HandleFunc("POST /api/v1/admin/authors", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "токен просрочен")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "editor@example.org", "secret"); err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	_, err := c.CreateAuthor(context.Background(), models.AuthorFields{FirstName: "Jane", LastName: "Doe"})
	var vErr *catalog.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("при стойком 401 ожидалась ValidationError, получено %T: %v", err, err)
	}
}

func TestClient_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/volumes", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "журнал не найден")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := New(srv.URL).ListVolumes(context.Background(), 99)
	var nfErr *catalog.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("ожидалась NotFoundError, получено %T: %v", err, err)
	}
}

func TestClient_ValidationErrorFromServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/journals", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, "неверный issn")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := New(srv.URL).ListJournals(context.Background(), models.JournalFilter{ISSN: "xxx"})
	var vErr *catalog.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидалась ValidationError, получено %T: %v", err, err)
	}
	if vErr.Msg != "неверный issn" {
		t.Fatalf("сообщение сервера должно сохраниться, получено %q", vErr.Msg)
	}
}

func TestClient_SyncErrorOnMutationFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/login", loginHandler("a1", "r1"))
	mux.HandleFunc("POST /api/v1/admin/authors", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "база недоступна")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "editor@example.org", "secret"); err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	_, err := c.CreateAuthor(context.Background(), models.AuthorFields{FirstName: "Jane", LastName: "Doe"})
	var syncErr *catalog.SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("при 5xx на мутации ожидалась SyncError, получено %T: %v", err, err)
	}
}

func TestClient_LogoutClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/login", loginHandler("a1", "r1"))
	mux.HandleFunc("POST /api/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, "выход выполнен")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "editor@example.org", "secret"); err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("ошибка выхода: %v", err)
	}
	if c.Session() != nil {
		t.Fatal("после выхода сессии быть не должно")
	}

	if err := c.Logout(context.Background()); err == nil {
		t.Fatal("повторный выход без сессии должен вернуть ошибку")
	}
}

func TestClient_URLBuilders(t *testing.T) {
	c := New("https://api.example.org/")

	pdf := c.ArticlePDFURL("acta-medica", "crispr-review")
	if pdf != "https://api.example.org/api/v1/articles/by-journal/acta-medica/crispr-review/pdf" {
		t.Fatalf("неверная ссылка на pdf: %q", pdf)
	}
	xml := c.ArticleXMLURL("acta-medica", "crispr-review")
	if xml != "https://api.example.org/api/v1/articles/by-journal/acta-medica/crispr-review/xml" {
		t.Fatalf("неверная ссылка на xml: %q", xml)
	}
}
