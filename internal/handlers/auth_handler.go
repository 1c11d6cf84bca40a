package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tripdesk/internal/auth"
	"tripdesk/internal/dberr"
	"tripdesk/internal/middleware"
	"tripdesk/internal/models"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type AuthHandler struct {
	Service    *services.UserService
	AgencyRepo *repositories.AgencyRepository
}

func NewAuthHandler(s *services.UserService, agencyRepo *repositories.AgencyRepository) *AuthHandler {
	return &AuthHandler{Service: s, AgencyRepo: agencyRepo}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Signup(r.Context(), &req)
	if err != nil {
		if msg, ok := dberr.Friendly(err); ok {
			utils.Error(w, http.StatusConflict, msg)
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.Error(w, http.StatusForbidden, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Session returns the authenticated user and the area the client should land
// in. Admins go to the admin area, users without an agency profile go to
// onboarding first.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.Service.Get(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "User not found")
		return
	}

	hasProfile := false
	if !user.IsAdmin() {
		hasProfile, err = h.AgencyRepo.Exists(r.Context(), userID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to check agency profile")
			return
		}
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
		"area": auth.AreaFor(user, hasProfile),
	})
}
