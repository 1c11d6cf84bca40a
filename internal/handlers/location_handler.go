package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tripdesk/internal/cache"
	"tripdesk/internal/dberr"
	"tripdesk/internal/models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

const locationListKey = "locations:list"

type LocationHandler struct {
	Repo *repositories.LocationRepository
}

func NewLocationHandler(repo *repositories.LocationRepository) *LocationHandler {
	return &LocationHandler{Repo: repo}
}

// ListLocations returns all destinations sorted by name. The list changes
// rarely so it is cached.
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetCached(r.Context(), locationListKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	locations, err := h.Repo.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if data, err := json.Marshal(locations); err == nil {
		cache.SetCached(r.Context(), locationListKey, data, 10*time.Minute)
	}
	utils.JSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	location := &models.Location{Name: name}
	if err := h.Repo.Create(r.Context(), location); err != nil {
		if msg, ok := dberr.Friendly(err); ok {
			utils.Error(w, http.StatusConflict, msg)
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateLocationCaches(r.Context())
	utils.JSON(w, http.StatusCreated, location)
}
