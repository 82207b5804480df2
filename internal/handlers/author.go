package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/services"
	helpers "aethra/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AuthorHandler struct {
	authorService *services.AuthorService
}

func NewAuthorHandler(authorService *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// ListAuthors godoc
// @Summary Список авторов (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Produce json
// @Param search query string false "Поиск по имени, email или ORCID"
// @Success 200 {array} models.Author
// @Router /api/v1/admin/authors [get]
func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		logger.Log.Error("Ошибка получения авторов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения авторов")
		return
	}
	helpers.JSON(w, http.StatusOK, authors)
}

// GetAuthor godoc
// @Summary Автор по ID (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID автора"
// @Success 200 {object} models.Author
// @Failure 404 {string} string "Не найдено"
// @Router /api/v1/admin/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	author, err := h.authorService.GetByID(r.Context(), id)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Автор не найден")
		return
	}
	helpers.JSON(w, http.StatusOK, author)
}

// CreateAuthor godoc
// @Summary Создать автора (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.AuthorFields true "Данные автора"
// @Success 201 {object} models.Author
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/authors [post]
func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req models.AuthorFields
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании автора", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	author, err := h.authorService.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, author)
}

// UpdateAuthor godoc
// @Summary Обновить карточку автора (только admin)
// @Description Автор — глобальная сущность: правка видна во всех статьях автора.
// @Tags admin-authors
// @Security ApiKeyAuth
// @Param id path int true "ID автора"
// @Param input body models.AuthorFields true "Новые данные"
// @Success 200 {object} models.Author
// @Router /api/v1/admin/authors/{id} [patch]
func (h *AuthorHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req models.AuthorFields
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	author, err := h.authorService.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary Удалить автора (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Param id path int true "ID автора"
// @Success 200 {string} string "Удалено"
// @Router /api/v1/admin/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.authorService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// ListArticleAuthors godoc
// @Summary Авторы статьи в порядке author_order (только admin)
// @Tags admin-authors
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {array} models.Authorship
// @Router /api/v1/admin/articles/{id}/authors [get]
func (h *AuthorHandler) ListArticleAuthors(w http.ResponseWriter, r *http.Request) {
	articleID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	authorships, err := h.authorService.ListByArticle(r.Context(), articleID)
	if err != nil {
		logger.Log.Error("Ошибка получения авторов статьи", zap.Int64("article_id", articleID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения авторов статьи")
		return
	}
	helpers.JSON(w, http.StatusOK, authorships)
}

// ReplaceArticleAuthors godoc
// @Summary Заменить список авторов статьи целиком (только admin)
// @Description Порядок авторов определяется позицией в списке и перенумеровывается 1..N в одной транзакции.
// @Tags admin-authors
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID статьи"
// @Param input body models.ReplaceAuthorsRequest true "Полный список авторов"
// @Success 200 {array} models.Authorship
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/articles/{id}/authors [put]
func (h *AuthorHandler) ReplaceArticleAuthors(w http.ResponseWriter, r *http.Request) {
	articleID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	var req models.ReplaceAuthorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при замене авторов", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	saved, err := h.authorService.ReplaceArticleAuthors(r.Context(), articleID, req.Authors)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, saved)
}
