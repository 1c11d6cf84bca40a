package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"tripdesk/internal/handlers"
	"tripdesk/internal/middleware"
)

func testRouter() *mux.Router {
	return NewRouter(
		handlers.NewAuthHandler(nil, nil),
		handlers.NewUserHandler(nil),
		handlers.NewAgencyHandler(nil),
		handlers.NewStakeholderHandler(nil),
		handlers.NewLocationHandler(nil),
		handlers.NewTemplateHandler(nil),
		handlers.NewItineraryHandler(nil, nil),
		handlers.NewHealthHandler(nil),
		middleware.NewAuthMiddleware(nil, nil),
	)
}

func matches(r *mux.Router, method, path string) bool {
	var m mux.RouteMatch
	req := httptest.NewRequest(method, path, nil)
	return r.Match(req, &m) && m.MatchErr == nil
}

// Day templates are per-user, so their writes live on the authenticated user
// branch, not under /api/admin. Multi-day plan writes stay admin-only.
func TestDayTemplateRoutesOnUserBranch(t *testing.T) {
	r := testRouter()

	assert.True(t, matches(r, "GET", "/api/templates/masters"))
	assert.True(t, matches(r, "POST", "/api/templates/masters"))
	assert.True(t, matches(r, "PUT", "/api/templates/masters/7"))
	assert.True(t, matches(r, "DELETE", "/api/templates/masters/7"))

	assert.False(t, matches(r, "POST", "/api/admin/templates/masters"))
	assert.False(t, matches(r, "PUT", "/api/admin/templates/masters/7"))

	assert.True(t, matches(r, "GET", "/api/templates/itineraries"))
	assert.False(t, matches(r, "POST", "/api/templates/itineraries"))
	assert.True(t, matches(r, "POST", "/api/admin/templates/itineraries"))
}

func TestItineraryRoutes(t *testing.T) {
	r := testRouter()

	assert.True(t, matches(r, "GET", "/api/itineraries"))
	assert.True(t, matches(r, "POST", "/api/itineraries/12/assign"))
	assert.True(t, matches(r, "GET", "/api/itineraries/12/pdf"))
	assert.True(t, matches(r, "GET", "/api/itineraries/12/assignments"))
	assert.True(t, matches(r, "GET", "/api/auth/me"))
	assert.False(t, matches(r, "POST", "/api/admin/itineraries"))
}
