package httpgin

import (
	"time"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/signin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SecondFactorRequest struct {
	Code string `json:"code"`
}

// SignInResponse carries the flow status. Token and ExpiresAt are set only
// when the request opened a new session.
type SignInResponse struct {
	signin.Status
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type AddVenueRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AdRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	VenueID        string `json:"venue_id"`
	TargetLocation string `json:"target_location"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	RunNow         bool   `json:"run_now"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type TwoFactorRequest struct {
	Enabled bool `json:"enabled"`
}

type PreferencesRequest struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
}
