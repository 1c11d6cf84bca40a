package auth

import "tripdesk/internal/models"

// Areas a freshly authenticated client is routed to.
const (
	AreaLogin      = "login"
	AreaAdmin      = "admin"
	AreaUser       = "user"
	AreaOnboarding = "onboarding"
)

// AreaFor decides where a client lands after the session check. No session
// routes to login. Admins always land in the admin area. Regular users land
// in onboarding until their agency profile exists, then in the user area.
func AreaFor(user *models.User, hasAgencyProfile bool) string {
	if user == nil {
		return AreaLogin
	}
	if user.IsAdmin() {
		return AreaAdmin
	}
	if !hasAgencyProfile {
		return AreaOnboarding
	}
	return AreaUser
}
