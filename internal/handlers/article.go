package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/services"
	helpers "aethra/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	articleService *services.ArticleService
	mediaDir       string
}

func NewArticleHandler(articleService *services.ArticleService, mediaDir string) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, mediaDir: mediaDir}
}

func articleFilterFromQuery(r *http.Request) models.ArticleFilter {
	f := models.ArticleFilter{
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("journal_id")); err == nil {
		f.JournalID = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("volume_id")); err == nil {
		f.VolumeID = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("issue_id")); err == nil {
		f.IssueID = &v
	}
	return f
}

// ListArticles godoc
// @Summary Список опубликованных статей
// @Description Фильтры journal_id, volume_id, issue_id каскадные; ordering — имя поля, префикс "-" для убывания.
// @Tags articles
// @Produce json
// @Param journal_id query int false "ID журнала"
// @Param volume_id query int false "ID тома"
// @Param issue_id query int false "ID выпуска"
// @Param search query string false "Поиск по заголовку или DOI"
// @Param ordering query string false "Поле сортировки (published_date, title, created_at)"
// @Success 200 {array} models.Article
// @Router /api/v1/articles [get]
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.List(r.Context(), articleFilterFromQuery(r), true)
	if err != nil {
		logger.Log.Error("Ошибка получения статей", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения статей")
		return
	}
	helpers.JSON(w, http.StatusOK, articles)
}

// GetArticle godoc
// @Summary Статья по slug журнала и статьи
// @Tags articles
// @Produce json
// @Param journal_slug path string true "Slug журнала"
// @Param article_slug path string true "Slug статьи"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "Не найдено"
// @Router /api/v1/articles/by-journal/{journal_slug}/{article_slug} [get]
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	article, err := h.articleService.GetPublicBySlug(r.Context(), vars["journal_slug"], vars["article_slug"])
	if err != nil {
		logger.Log.Warn("Статья не найдена",
			zap.String("journal_slug", vars["journal_slug"]),
			zap.String("article_slug", vars["article_slug"]))
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// DownloadArticle godoc
// @Summary Скачивание файла статьи
// @Description Раздаёт только pdf и xml. Форматы epub, mobi и prc распространяются по прямым ссылкам.
// @Tags articles
// @Produce octet-stream
// @Param journal_slug path string true "Slug журнала"
// @Param article_slug path string true "Slug статьи"
// @Param format path string true "Формат файла (pdf или xml)"
// @Success 200 {file} file
// @Failure 404 {string} string "Файл не найден"
// @Router /api/v1/articles/by-journal/{journal_slug}/{article_slug}/{format} [get]
func (h *ArticleHandler) DownloadArticle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	file, err := h.articleService.ResolveDownload(r.Context(), vars["journal_slug"], vars["article_slug"], vars["format"])
	if err != nil {
		logger.Log.Warn("Файл статьи недоступен",
			zap.String("article_slug", vars["article_slug"]),
			zap.String("format", vars["format"]),
			zap.Error(err))
		helpers.Error(w, http.StatusNotFound, "Файл не найден")
		return
	}

	http.ServeFile(w, r, filepath.Join(h.mediaDir, filepath.Clean("/"+file)))
}

// AdminListArticles godoc
// @Summary Список статей включая черновики (только admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Article
// @Router /api/v1/admin/articles [get]
func (h *ArticleHandler) AdminListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.List(r.Context(), articleFilterFromQuery(r), false)
	if err != nil {
		logger.Log.Error("Ошибка получения статей", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения статей")
		return
	}
	helpers.JSON(w, http.StatusOK, articles)
}

// AdminGetArticle godoc
// @Summary Статья по ID (только admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "Не найдено"
// @Router /api/v1/admin/articles/{id} [get]
func (h *ArticleHandler) AdminGetArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	article, err := h.articleService.GetByID(r.Context(), id)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// CreateArticle godoc
// @Summary Создать статью (только admin)
// @Description Статья создаётся в статусе draft. Пустой slug генерируется из заголовка.
// @Tags admin-articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "Данные статьи"
// @Success 201 {object} models.Article
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/articles [post]
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.articleService.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, article)
}

// UpdateArticle godoc
// @Summary Обновить статью (только admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Param input body models.CreateArticleRequest true "Новые данные"
// @Success 200 {object} models.Article
// @Router /api/v1/admin/articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.articleService.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Удалить статью (только admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Success 200 {string} string "Удалено"
// @Router /api/v1/admin/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err := h.articleService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// SetArticleStatus godoc
// @Summary Сменить статус статьи (только admin)
// @Description Перевод в published требует даты публикации: из запроса или уже сохранённой.
// @Tags admin-articles
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Param input body models.SetArticleStatusRequest true "Статус"
// @Success 200 {object} models.Article
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/articles/{id}/publish [patch]
func (h *ArticleHandler) SetArticleStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	var req models.SetArticleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.articleService.SetStatus(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// SetArticlePreface godoc
// @Summary Установить признак предисловия (только admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Param input body models.SetPrefaceRequest true "Признак предисловия"
// @Success 200 {object} models.Article
// @Router /api/v1/admin/articles/{id}/preface [patch]
func (h *ArticleHandler) SetArticlePreface(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	var req models.SetPrefaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.articleService.SetPreface(r.Context(), id, req.IsPreface)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}
