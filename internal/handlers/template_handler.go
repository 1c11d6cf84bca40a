package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"tripdesk/internal/cache"
	"tripdesk/internal/dberr"
	"tripdesk/internal/middleware"
	"tripdesk/internal/models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type TemplateHandler struct {
	Repo *repositories.TemplateRepository
}

func NewTemplateHandler(repo *repositories.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{Repo: repo}
}

// ============================================
// Day templates
// ============================================

func (h *TemplateHandler) CreateMaster(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.TemplateMasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.District) == "" || strings.TrimSpace(req.TemplateTitle) == "" {
		utils.Error(w, http.StatusBadRequest, "district and template_title are required")
		return
	}

	t := &models.TemplateMaster{
		UserID:        userID,
		District:      strings.TrimSpace(req.District),
		TemplateTitle: strings.TrimSpace(req.TemplateTitle),
		TravelTime:    strings.TrimSpace(req.TravelTime),
		Description:   strings.TrimSpace(req.Description),
		OvernightStay: strings.TrimSpace(req.OvernightStay),
	}

	if err := h.Repo.CreateMaster(r.Context(), t); err != nil {
		if msg, ok := dberr.Friendly(err); ok {
			utils.Error(w, http.StatusConflict, msg)
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateTemplateCaches(r.Context())
	utils.JSON(w, http.StatusCreated, t)
}

// ListMasters returns the caller's day templates, optionally filtered with
// ?district=.
func (h *TemplateHandler) ListMasters(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	masters, err := h.Repo.ListMasters(r.Context(), userID, r.URL.Query().Get("district"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, masters)
}

func (h *TemplateHandler) UpdateMaster(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.TemplateMasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t := &models.TemplateMaster{
		ID:            id,
		UserID:        userID,
		District:      strings.TrimSpace(req.District),
		TemplateTitle: strings.TrimSpace(req.TemplateTitle),
		TravelTime:    strings.TrimSpace(req.TravelTime),
		Description:   strings.TrimSpace(req.Description),
		OvernightStay: strings.TrimSpace(req.OvernightStay),
	}

	if err := h.Repo.UpdateMaster(r.Context(), t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Template not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateTemplateCaches(r.Context())
	utils.JSON(w, http.StatusOK, t)
}

func (h *TemplateHandler) DeleteMaster(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repo.DeleteMaster(r.Context(), id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Template not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateTemplateCaches(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ============================================
// Itinerary templates
// ============================================

func (h *TemplateHandler) CreateItineraryTemplate(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.ItineraryTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		utils.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	t := &models.ItineraryTemplate{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DefaultDays: req.DefaultDays,
		CreatedBy:   userID,
	}
	if t.DefaultDays == nil {
		t.DefaultDays = []models.TemplateDay{}
	}

	if err := h.Repo.CreateItineraryTemplate(r.Context(), t); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateTemplateCaches(r.Context())
	utils.JSON(w, http.StatusCreated, t)
}

func (h *TemplateHandler) ListItineraryTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.Repo.ListItineraryTemplates(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, templates)
}

func (h *TemplateHandler) GetItineraryTemplate(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	t, err := h.Repo.GetItineraryTemplate(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Template not found")
		return
	}
	utils.JSON(w, http.StatusOK, t)
}

func (h *TemplateHandler) UpdateItineraryTemplate(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.ItineraryTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t := &models.ItineraryTemplate{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DefaultDays: req.DefaultDays,
	}
	if t.DefaultDays == nil {
		t.DefaultDays = []models.TemplateDay{}
	}

	if err := h.Repo.UpdateItineraryTemplate(r.Context(), t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Template not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateTemplateCaches(r.Context())
	utils.JSON(w, http.StatusOK, t)
}

func (h *TemplateHandler) DeleteItineraryTemplate(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repo.DeleteItineraryTemplate(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Template not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateTemplateCaches(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
