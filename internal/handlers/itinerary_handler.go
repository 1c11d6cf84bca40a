package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"tripdesk/internal/cache"
	"tripdesk/internal/dberr"
	"tripdesk/internal/middleware"
	"tripdesk/internal/models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

func itineraryListKey(ownerID int) string {
	return fmt.Sprintf("itineraries:list:%d", ownerID)
}

// ownerScope resolves which owner's rows the caller may touch. Admins get 0
// (every owner), regular users get their own id so per-id reads and writes
// stay within rows they created.
func ownerScope(r *http.Request) int {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	group, _ := middleware.GetGroupFromContext(r.Context())
	if group == models.GroupAdmin {
		return 0
	}
	return userID
}

type ItineraryHandler struct {
	Service     *services.ItineraryService
	Assignments *services.AssignmentService
}

func NewItineraryHandler(s *services.ItineraryService, assignments *services.AssignmentService) *ItineraryHandler {
	return &ItineraryHandler{Service: s, Assignments: assignments}
}

func (h *ItineraryHandler) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.SaveItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	it, err := h.Service.Create(r.Context(), userID, &req)
	if err != nil {
		writeItineraryError(w, err)
		return
	}

	cache.InvalidateItineraryCaches(r.Context())
	log.Printf("[Itinerary] Created itinerary %d with %d days", it.ID, len(it.Days))
	utils.JSON(w, http.StatusCreated, it)
}

// ListItineraries returns summaries newest first. Admins see every owner's
// itineraries, users see their own. The response is cached briefly since the
// list backs the app's home screen.
func (h *ItineraryHandler) ListItineraries(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerScope(r)

	key := itineraryListKey(ownerID)
	if data, ok := cache.GetCached(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	summaries, err := h.Service.List(r.Context(), ownerID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if data, err := json.Marshal(summaries); err == nil {
		cache.SetCached(r.Context(), key, data, 2*time.Minute)
	}
	utils.JSON(w, http.StatusOK, summaries)
}

func (h *ItineraryHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	it, err := h.Service.Get(r.Context(), id, ownerScope(r))
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	utils.JSON(w, http.StatusOK, it)
}

func (h *ItineraryHandler) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.SaveItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	it, err := h.Service.Update(r.Context(), id, userID, ownerScope(r), &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		writeItineraryError(w, err)
		return
	}

	cache.InvalidateItineraryCaches(r.Context())
	utils.JSON(w, http.StatusOK, it)
}

func (h *ItineraryHandler) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id, ownerScope(r)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateItineraryCaches(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ExportPDF renders the itinerary document without a customer assignment.
func (h *ItineraryHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	name, data, err := h.Assignments.Export(r.Context(), id, userID, ownerScope(r))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	writePDF(w, name, data)
}

// AssignItinerary issues the itinerary to a customer and streams back the
// personalized document.
func (h *ItineraryHandler) AssignItinerary(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.AssignItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, data, err := h.Assignments.Assign(r.Context(), id, userID, ownerScope(r), &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		writeItineraryError(w, err)
		return
	}

	cache.InvalidateItineraryCaches(r.Context())
	log.Printf("[Itinerary] Assigned itinerary %d to %s", id, resp.Assignment.CustomerName)

	if r.URL.Query().Get("download") == "true" {
		writePDF(w, resp.PDFName, data)
		return
	}
	utils.JSON(w, http.StatusCreated, resp)
}

func (h *ItineraryHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	assignments, err := h.Assignments.ListForItinerary(r.Context(), id, ownerScope(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, assignments)
}

func writePDF(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

func writeItineraryError(w http.ResponseWriter, err error) {
	if msg, ok := dberr.Friendly(err); ok {
		utils.Error(w, http.StatusConflict, msg)
		return
	}
	utils.Error(w, http.StatusBadRequest, err.Error())
}
