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

type JournalHandler struct {
	journalService *services.JournalService
	subjectService *services.SubjectService
}

func NewJournalHandler(journalService *services.JournalService, subjectService *services.SubjectService) *JournalHandler {
	return &JournalHandler{journalService: journalService, subjectService: subjectService}
}

// ListSubjects godoc
// @Summary Список предметных областей
// @Tags subjects
// @Produce json
// @Success 200 {array} models.Subject
// @Router /api/v1/subjects [get]
func (h *JournalHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjectService.List(r.Context(), true)
	if err != nil {
		logger.Log.Error("Ошибка получения предметных областей", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения предметных областей")
		return
	}
	helpers.JSON(w, http.StatusOK, subjects)
}

// CreateSubject godoc
// @Summary Создать предметную область (только admin)
// @Tags admin-subjects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateSubjectRequest true "Данные предметной области"
// @Success 201 {object} models.Subject
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/subjects [post]
func (h *JournalHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании предметной области", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	subject, err := h.subjectService.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, subject)
}

// UpdateSubject godoc
// @Summary Обновить предметную область (только admin)
// @Tags admin-subjects
// @Security ApiKeyAuth
// @Param id path int true "ID предметной области"
// @Param input body models.CreateSubjectRequest true "Новые данные"
// @Success 200 {object} models.Subject
// @Router /api/v1/admin/subjects/{id} [put]
func (h *JournalHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req models.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	subject, err := h.subjectService.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, subject)
}

// DeleteSubject godoc
// @Summary Удалить предметную область (только admin)
// @Tags admin-subjects
// @Security ApiKeyAuth
// @Param id path int true "ID предметной области"
// @Success 200 {string} string "Удалено"
// @Router /api/v1/admin/subjects/{id} [delete]
func (h *JournalHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.subjectService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// ListJournals godoc
// @Summary Список журналов
// @Description Поддерживает фильтрацию по предметной области (slug), поиску и ISSN.
// @Tags journals
// @Produce json
// @Param subject query string false "Slug предметной области"
// @Param search query string false "Поиск по названию"
// @Param issn query string false "ISSN (печатный или электронный)"
// @Success 200 {array} models.Journal
// @Router /api/v1/journals [get]
func (h *JournalHandler) ListJournals(w http.ResponseWriter, r *http.Request) {
	f := models.JournalFilter{
		SubjectSlug: r.URL.Query().Get("subject"),
		Search:      r.URL.Query().Get("search"),
		ISSN:        r.URL.Query().Get("issn"),
	}

	journals, err := h.journalService.List(r.Context(), f, true)
	if err != nil {
		logger.Log.Error("Ошибка получения журналов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения журналов")
		return
	}
	helpers.JSON(w, http.StatusOK, journals)
}

// GetJournal godoc
// @Summary Журнал по slug
// @Tags journals
// @Produce json
// @Param slug path string true "Slug журнала"
// @Success 200 {object} models.Journal
// @Failure 404 {string} string "Не найдено"
// @Router /api/v1/journals/by-slug/{slug} [get]
func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	journal, err := h.journalService.GetBySlug(r.Context(), slug)
	if err != nil {
		logger.Log.Warn("Журнал не найден", zap.String("slug", slug))
		helpers.Error(w, http.StatusNotFound, "Журнал не найден")
		return
	}
	helpers.JSON(w, http.StatusOK, journal)
}

// CreateJournal godoc
// @Summary Создать журнал (только admin)
// @Tags admin-journals
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateJournalRequest true "Данные журнала"
// @Success 201 {object} models.Journal
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/journals [post]
func (h *JournalHandler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании журнала", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	journal, err := h.journalService.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, journal)
}

// UpdateJournal godoc
// @Summary Обновить журнал (только admin)
// @Tags admin-journals
// @Security ApiKeyAuth
// @Param id path int true "ID журнала"
// @Param input body models.CreateJournalRequest true "Новые данные"
// @Success 200 {object} models.Journal
// @Router /api/v1/admin/journals/{id} [put]
func (h *JournalHandler) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req models.CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	journal, err := h.journalService.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, journal)
}

// DeleteJournal godoc
// @Summary Удалить журнал (только admin)
// @Tags admin-journals
// @Security ApiKeyAuth
// @Param id path int true "ID журнала"
// @Success 200 {string} string "Удалено"
// @Router /api/v1/admin/journals/{id} [delete]
func (h *JournalHandler) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.journalService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
