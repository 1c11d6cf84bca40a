package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"tripdesk/internal/cache"
	"tripdesk/internal/dberr"
	"tripdesk/internal/middleware"
	"tripdesk/internal/models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type AgencyHandler struct {
	Repo *repositories.AgencyRepository
}

func NewAgencyHandler(repo *repositories.AgencyRepository) *AgencyHandler {
	return &AgencyHandler{Repo: repo}
}

func (h *AgencyHandler) GetAgencyDetails(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	details, err := h.Repo.GetByUID(r.Context(), uid)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Agency details not found")
		return
	}
	utils.JSON(w, http.StatusOK, details)
}

// SaveAgencyDetails creates or replaces the caller's agency profile.
func (h *AgencyHandler) SaveAgencyDetails(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.SaveAgencyDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	required := map[string]string{
		"agency_name": req.AgencyName,
		"owner_name":  req.OwnerName,
		"email":       req.Email,
		"phone":       req.Phone,
		"whatsapp":    req.Whatsapp,
		"address":     req.Address,
		"city":        req.City,
		"state":       req.State,
		"country":     req.Country,
		"postal_code": req.PostalCode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			utils.Error(w, http.StatusBadRequest, field+" is required")
			return
		}
	}

	details := &models.AgencyDetails{
		UID:                uid,
		AgencyName:         strings.TrimSpace(req.AgencyName),
		OwnerName:          strings.TrimSpace(req.OwnerName),
		Email:              strings.TrimSpace(req.Email),
		Phone:              strings.TrimSpace(req.Phone),
		Whatsapp:           strings.TrimSpace(req.Whatsapp),
		Address:            strings.TrimSpace(req.Address),
		City:               strings.TrimSpace(req.City),
		State:              strings.TrimSpace(req.State),
		Country:            strings.TrimSpace(req.Country),
		PostalCode:         strings.TrimSpace(req.PostalCode),
		Website:            strings.TrimSpace(req.Website),
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
	}

	if err := h.Repo.Save(r.Context(), details); err != nil {
		if msg, ok := dberr.Friendly(err); ok {
			utils.Error(w, http.StatusConflict, msg)
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateAgencyCaches(r.Context())
	utils.JSON(w, http.StatusOK, details)
}
