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

type VolumeHandler struct {
	volumeService *services.VolumeService
	issueService  *services.IssueService
}

func NewVolumeHandler(volumeService *services.VolumeService, issueService *services.IssueService) *VolumeHandler {
	return &VolumeHandler{volumeService: volumeService, issueService: issueService}
}

// ListVolumes godoc
// @Summary Тома журнала
// @Tags volumes
// @Produce json
// @Param journal_id query int true "ID журнала"
// @Success 200 {array} models.Volume
// @Router /api/v1/volumes [get]
func (h *VolumeHandler) ListVolumes(w http.ResponseWriter, r *http.Request) {
	journalID, err := strconv.Atoi(r.URL.Query().Get("journal_id"))
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Требуется параметр journal_id")
		return
	}

	volumes, err := h.volumeService.ListByJournal(r.Context(), journalID, true)
	if err != nil {
		logger.Log.Error("Ошибка получения томов", zap.Int("journal_id", journalID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения томов")
		return
	}
	helpers.JSON(w, http.StatusOK, volumes)
}

// ListIssues godoc
// @Summary Выпуски тома
// @Tags issues
// @Produce json
// @Param volume_id query int true "ID тома"
// @Success 200 {array} models.Issue
// @Router /api/v1/issues [get]
func (h *VolumeHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	volumeID, err := strconv.Atoi(r.URL.Query().Get("volume_id"))
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Требуется параметр volume_id")
		return
	}

	issues, err := h.issueService.ListByVolume(r.Context(), volumeID, true)
	if err != nil {
		logger.Log.Error("Ошибка получения выпусков", zap.Int("volume_id", volumeID), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения выпусков")
		return
	}
	helpers.JSON(w, http.StatusOK, issues)
}

// CreateVolume godoc
// @Summary Создать том (только admin)
// @Tags admin-volumes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateVolumeRequest true "Данные тома"
// @Success 201 {object} models.Volume
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/volumes [post]
func (h *VolumeHandler) CreateVolume(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании тома", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	volume, err := h.volumeService.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, volume)
}

// UpdateVolume godoc
// @Summary Обновить том (только admin)
// @Tags admin-volumes
// @Security ApiKeyAuth
// @Param id path int true "ID тома"
// @Param input body models.CreateVolumeRequest true "Новые данные"
// @Success 200 {object} models.Volume
// @Router /api/v1/admin/volumes/{id} [put]
func (h *VolumeHandler) UpdateVolume(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req models.CreateVolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	volume, err := h.volumeService.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, volume)
}

// DeleteVolume godoc
// @Summary Удалить том (только admin)
// @Tags admin-volumes
// @Security ApiKeyAuth
// @Param id path int true "ID тома"
// @Success 200 {string} string "Удалено"
// @Router /api/v1/admin/volumes/{id} [delete]
func (h *VolumeHandler) DeleteVolume(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.volumeService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// CreateIssue godoc
// @Summary Создать выпуск (только admin)
// @Description Если выпуск отмечен текущим, прежний текущий выпуск журнала снимается.
// @Tags admin-issues
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateIssueRequest true "Данные выпуска"
// @Success 201 {object} models.Issue
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/v1/admin/issues [post]
func (h *VolumeHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании выпуска", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	issue, err := h.issueService.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, issue)
}

// UpdateIssue godoc
// @Summary Обновить выпуск (только admin)
// @Tags admin-issues
// @Security ApiKeyAuth
// @Param id path int true "ID выпуска"
// @Param input body models.CreateIssueRequest true "Новые данные"
// @Success 200 {object} models.Issue
// @Router /api/v1/admin/issues/{id} [put]
func (h *VolumeHandler) UpdateIssue(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req models.CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	issue, err := h.issueService.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, issue)
}

// DeleteIssue godoc
// @Summary Удалить выпуск (только admin)
// @Tags admin-issues
// @Security ApiKeyAuth
// @Param id path int true "ID выпуска"
// @Success 200 {string} string "Удалено"
// @Router /api/v1/admin/issues/{id} [delete]
func (h *VolumeHandler) DeleteIssue(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.issueService.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}
