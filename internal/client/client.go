package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"aethra/internal/catalog"
	"aethra/internal/logger"
	"aethra/internal/models"

	"go.uber.org/zap"
)

// Client — HTTP-реализация catalog.Collaborator и catalog.URLBuilder.
// Сессия явная: Login кладёт пару токенов, Logout убирает её; на 401
// клиент один раз пробует Refresh и повторяет запрос.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu      sync.Mutex
	session *Session
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Session возвращает копию текущей сессии (nil — вход не выполнен).
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// envelope — конверт ответа API: либо data, либо error.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

type loginData struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

// Login выполняет вход и сохраняет сессию в клиенте.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var data loginData
	err := c.do(ctx, http.MethodPost, "/api/v1/login", nil,
		models.LoginRequest{Email: email, Password: password}, &data, false)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = &Session{AccessToken: data.AccessToken, RefreshToken: data.RefreshToken}
	c.mu.Unlock()

	logger.WithCtx(ctx).Info("Вход выполнен (client)", zap.String("email", email))
	return data.User, nil
}

// Logout инвалидирует refresh-токен на сервере и сбрасывает сессию.
func (c *Client) Logout(ctx context.Context) error {
	if !c.Session().Authenticated() {
		return &catalog.ValidationError{Field: "session", Msg: "вход не выполнен"}
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/logout", nil, nil, nil, true)

	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()

	return err
}

// Refresh обменивает refresh-токен на новую пару токенов.
func (c *Client) Refresh(ctx context.Context) error {
	s := c.Session()
	if s == nil || s.RefreshToken == "" {
		return &catalog.ValidationError{Field: "session", Msg: "нет refresh-токена"}
	}

	var pair models.TokenPair
	err := c.do(ctx, http.MethodPost, "/api/v1/refresh", nil,
		map[string]string{"refresh_token": s.RefreshToken}, &pair, false)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.session = &Session{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
	c.mu.Unlock()
	return nil
}

func (c *Client) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	err := c.do(ctx, http.MethodGet, "/api/v1/subjects", nil, nil, &out, false)
	return out, err
}

func (c *Client) ListJournals(ctx context.Context, f models.JournalFilter) ([]*models.Journal, error) {
	q := url.Values{}
	if f.SubjectSlug != "" {
		q.Set("subject", f.SubjectSlug)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.ISSN != "" {
		q.Set("issn", f.ISSN)
	}

	var out []*models.Journal
	err := c.do(ctx, http.MethodGet, "/api/v1/journals", q, nil, &out, false)
	return out, err
}

func (c *Client) ListVolumes(ctx context.Context, journalID int) ([]*models.Volume, error) {
	q := url.Values{"journal_id": []string{strconv.Itoa(journalID)}}
	var out []*models.Volume
	err := c.do(ctx, http.MethodGet, "/api/v1/volumes", q, nil, &out, false)
	return out, err
}

func (c *Client) ListIssues(ctx context.Context, volumeID int) ([]*models.Issue, error) {
	q := url.Values{"volume_id": []string{strconv.Itoa(volumeID)}}
	var out []*models.Issue
	err := c.do(ctx, http.MethodGet, "/api/v1/issues", q, nil, &out, false)
	return out, err
}

func (c *Client) ListArticles(ctx context.Context, f models.ArticleFilter) ([]*models.Article, error) {
	q := url.Values{}
	if f.JournalID != nil {
		q.Set("journal_id", strconv.Itoa(*f.JournalID))
	}
	if f.VolumeID != nil {
		q.Set("volume_id", strconv.Itoa(*f.VolumeID))
	}
	if f.IssueID != nil {
		q.Set("issue_id", strconv.Itoa(*f.IssueID))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Ordering != "" {
		q.Set("ordering", f.Ordering)
	}

	var out []*models.Article
	err := c.do(ctx, http.MethodGet, "/api/v1/articles", q, nil, &out, false)
	return out, err
}

func (c *Client) CreateAuthor(ctx context.Context, fields models.AuthorFields) (*models.Author, error) {
	var out models.Author
	err := c.do(ctx, http.MethodPost, "/api/v1/admin/authors", nil, fields, &out, true)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAuthor(ctx context.Context, id int, fields models.AuthorFields) (*models.Author, error) {
	var out models.Author
	path := fmt.Sprintf("/api/v1/admin/authors/%d", id)
	err := c.do(ctx, http.MethodPatch, path, nil, fields, &out, true)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReplaceArticleAuthorship(ctx context.Context, articleID int64, entries []models.AuthorshipEntry) ([]models.Authorship, error) {
	var out []models.Authorship
	path := fmt.Sprintf("/api/v1/admin/articles/%d/authors", articleID)
	err := c.do(ctx, http.MethodPut, path, nil, models.ReplaceAuthorsRequest{Authors: entries}, &out, true)
	return out, err
}

// ArticlePDFURL строит ссылку на pdf: файл раздаёт API по слагам,
// значение поля pdf_file в ссылке не используется.
func (c *Client) ArticlePDFURL(journalSlug, articleSlug string) string {
	return fmt.Sprintf("%s/api/v1/articles/by-journal/%s/%s/pdf", c.baseURL, journalSlug, articleSlug)
}

func (c *Client) ArticleXMLURL(journalSlug, articleSlug string) string {
	return fmt.Sprintf("%s/api/v1/articles/by-journal/%s/%s/xml", c.baseURL, journalSlug, articleSlug)
}

// do выполняет запрос, разворачивает конверт {data,error} и приводит
// отказы к доменным ошибкам. На 401 при наличии refresh-токена токены
// обновляются и запрос повторяется один раз.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	status, err := c.once(ctx, method, path, query, body, out, authed)

	if err == nil && status == http.StatusUnauthorized {
		if s := c.Session(); authed && s != nil && s.RefreshToken != "" {
			if rerr := c.Refresh(ctx); rerr == nil {
				logger.WithCtx(ctx).Debug("Повтор запроса после обновления токенов",
					zap.String("method", method), zap.String("path", path))
				status, err = c.once(ctx, method, path, query, body, out, authed)
			}
		}
		if err == nil && status == http.StatusUnauthorized {
			err = &catalog.ValidationError{Field: "session", Msg: "не авторизован"}
		}
	}
	return err
}

// once — одна попытка запроса. Возвращает статус и ошибку; ошибки
// статусов уже приведены к доменным типам.
func (c *Client) once(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) (int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if s := c.Session(); s.Authenticated() {
			req.Header.Set("Authorization", "Bearer "+s.AccessToken)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, nil
	}

	var env envelope
	if derr := json.NewDecoder(resp.Body).Decode(&env); derr != nil && resp.StatusCode < http.StatusBadRequest {
		return resp.StatusCode, derr
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, c.failure(method, path, resp.StatusCode, env.Error)
	}

	if out != nil && env.Data != nil {
		if derr := json.Unmarshal(env.Data, out); derr != nil {
			return resp.StatusCode, derr
		}
	}
	return resp.StatusCode, nil
}

// failure приводит отказ к таксономии доменных ошибок: 404 — NotFoundError,
// прочие 4xx — ValidationError, всё остальное на мутациях — SyncError.
func (c *Client) failure(method, path string, status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	switch {
	case status == http.StatusNotFound:
		return &catalog.NotFoundError{Resource: "ресурс", Key: path}
	case status >= 400 && status < 500:
		return &catalog.ValidationError{Msg: msg}
	case method != http.MethodGet:
		return &catalog.SyncError{Op: method + " " + path, Err: fmt.Errorf("%s", msg)}
	default:
		return fmt.Errorf("запрос %s %s: %s", method, path, msg)
	}
}
