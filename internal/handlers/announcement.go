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

type AnnouncementHandler struct {
	service *services.AnnouncementService
}

func NewAnnouncementHandler(service *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// ListAnnouncements godoc
// @Summary Список опубликованных объявлений
// @Tags announcements
// @Produce json
// @Param homepage query bool false "Только объявления для главной страницы"
// @Success 200 {array} models.Announcement
// @Router /api/v1/announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	onlyHomepage := r.URL.Query().Get("homepage") == "true"
	list, err := h.service.List(r.Context(), true, onlyHomepage)
	if err != nil {
		logger.Log.Error("Ошибка получения объявлений", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения объявлений")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetAnnouncement godoc
// @Summary Объявление по slug
// @Tags announcements
// @Produce json
// @Param slug path string true "Slug объявления"
// @Success 200 {object} models.Announcement
// @Failure 404 {string} string "Не найдено"
// @Router /api/v1/announcements/{slug} [get]
func (h *AnnouncementHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	a, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil || !a.IsPublished {
		helpers.Error(w, http.StatusNotFound, "Объявление не найдено")
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// CreateAnnouncement godoc
// @Summary Создать объявление (только admin)
// @Tags admin-announcements
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateAnnouncementRequest true "Данные объявления"
// @Success 201 {object} models.Announcement
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании объявления", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	a, err := h.service.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, a)
}

// UpdateAnnouncement godoc
// @Summary Обновить объявление (только admin)
// @Tags admin-announcements
// @Security ApiKeyAuth
// @Param slug path string true "Slug объявления"
// @Param input body models.CreateAnnouncementRequest true "Новые данные"
// @Success 200 {object} models.Announcement
// @Router /api/v1/admin/announcements/{slug} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	var req models.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	a, err := h.service.Update(r.Context(), slug, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// DeleteAnnouncement godoc
// @Summary Удалить объявление (только admin)
// @Tags admin-announcements
// @Security ApiKeyAuth
// @Param id path int true "ID объявления"
// @Success 200 {string} string "Удалено"
// @Router /api/v1/admin/announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.service.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
