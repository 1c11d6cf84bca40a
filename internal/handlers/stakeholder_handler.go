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

type StakeholderHandler struct {
	Repo *repositories.StakeholderRepository
}

func NewStakeholderHandler(repo *repositories.StakeholderRepository) *StakeholderHandler {
	return &StakeholderHandler{Repo: repo}
}

func (h *StakeholderHandler) CreateStakeholder(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.StakeholderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s, err := stakeholderFromRequest(uid, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), s); err != nil {
		if msg, ok := dberr.Friendly(err); ok {
			utils.Error(w, http.StatusConflict, msg)
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateStakeholderCaches(r.Context())
	utils.JSON(w, http.StatusCreated, s)
}

// ListStakeholders returns the caller's stakeholders, optionally filtered
// with ?type=HOTEL|TAXI|TRAVEL_AGENT.
func (h *StakeholderHandler) ListStakeholders(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())

	stakeholderType := r.URL.Query().Get("type")
	if stakeholderType != "" && !models.ValidStakeholderType(stakeholderType) {
		utils.Error(w, http.StatusBadRequest, "Unknown stakeholder type")
		return
	}

	stakeholders, err := h.Repo.List(r.Context(), uid, stakeholderType)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, stakeholders)
}

func (h *StakeholderHandler) GetStakeholder(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	s, err := h.Repo.Get(r.Context(), id, uid)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Stakeholder not found")
		return
	}
	utils.JSON(w, http.StatusOK, s)
}

func (h *StakeholderHandler) UpdateStakeholder(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.StakeholderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s, err := stakeholderFromRequest(uid, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	s.ID = id

	if err := h.Repo.Update(r.Context(), s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Stakeholder not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateStakeholderCaches(r.Context())
	utils.JSON(w, http.StatusOK, s)
}

func (h *StakeholderHandler) DeleteStakeholder(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repo.Delete(r.Context(), id, uid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Stakeholder not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateStakeholderCaches(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func stakeholderFromRequest(uid int, req *models.StakeholderRequest) (*models.Stakeholder, error) {
	if !models.ValidStakeholderType(req.StakeholderType) {
		return nil, errors.New("stakeholder_type must be HOTEL, TAXI or TRAVEL_AGENT")
	}
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, errors.New("business name is required")
	}
	if strings.TrimSpace(req.ContactPersonName) == "" {
		return nil, errors.New("contact person name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, errors.New("phone is required")
	}

	taxiType := strings.TrimSpace(req.TaxiType)
	if req.StakeholderType == models.StakeholderTaxi {
		if !models.ValidTaxiType(taxiType) {
			return nil, errors.New("taxi_type must be LOCAL or OUTSIDE")
		}
	} else {
		// Taxi type only applies to taxi operators
		taxiType = ""
	}

	return &models.Stakeholder{
		UID:               uid,
		StakeholderType:   req.StakeholderType,
		TaxiType:          taxiType,
		BusinessName:      strings.TrimSpace(req.BusinessName),
		ContactPersonName: strings.TrimSpace(req.ContactPersonName),
		Designation:       strings.TrimSpace(req.Designation),
		Phone:             strings.TrimSpace(req.Phone),
		Whatsapp:          strings.TrimSpace(req.Whatsapp),
		AlternatePhone:    strings.TrimSpace(req.AlternatePhone),
		Address:           strings.TrimSpace(req.Address),
	}, nil
}
