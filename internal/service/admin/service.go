// Package admin acknowledges the dashboard's mutation actions. Nothing is
// written back: every Ack carries Persisted == false and the loaded
// collections stay untouched.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/catalog"
)

// Action names carried by acks and published on the actions channel.
const (
	ActionAddVenue        = "venue.add"
	ActionDeleteVenue     = "venue.delete"
	ActionUpdateUser      = "user.update"
	ActionDeleteUser      = "user.delete"
	ActionCreateAd        = "ad.create"
	ActionUpdateAd        = "ad.update"
	ActionDeleteAd        = "ad.delete"
	ActionToggleAd        = "ad.toggle"
	ActionMarkRead        = "notification.read"
	ActionMarkAllRead     = "notification.read_all"
	ActionClearAll        = "notification.clear_all"
	ActionChangePassword  = "settings.password"
	ActionToggleTwoFactor = "settings.two_factor"
	ActionSavePreferences = "settings.preferences"
)

type Publisher interface {
	PublishAck(ctx context.Context, ack domain.Ack) error
}

type Service struct {
	catalog *catalog.Service
	pub     Publisher
	log     *slog.Logger
}

// New builds the service. pub may be nil when no actions channel is
// configured.
func New(catalog *catalog.Service, pub Publisher, log *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		pub:     pub,
		log:     log,
	}
}

func (s *Service) ack(ctx context.Context, action, message string) domain.Ack {
	ack := domain.Accepted(action, message)

	s.log.Info("action acknowledged", slog.String("action", action), slog.String("message", message))

	if s.pub != nil {
		if err := s.pub.PublishAck(ctx, ack); err != nil {
			s.log.Warn("publish ack", slog.String("action", action), slog.Any("err", err))
		}
	}

	return ack
}

type NewVenue struct {
	Name          string
	Location      string
	CategoryID    string
	SubcategoryID string
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// AddVenue requires every field and a subcategory of the chosen category.
func (s *Service) AddVenue(ctx context.Context, v NewVenue) (domain.Ack, error) {
	const op = "service.admin.AddVenue"

	if blank(v.Name, v.Location, v.CategoryID, v.SubcategoryID) {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	if !s.catalog.Categories().Has(v.CategoryID, v.SubcategoryID) {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, ErrSubcategoryMismatch)
	}

	return s.ack(ctx, ActionAddVenue, "Venue added successfully"), nil
}

func (s *Service) DeleteVenue(ctx context.Context, id string) (domain.Ack, error) {
	const op = "service.admin.DeleteVenue"

	v, err := s.catalog.Venue(id)
	if err != nil {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.ack(ctx, ActionDeleteVenue, fmt.Sprintf("Venue %q deleted successfully", v.Name)), nil
}

type UserUpdate struct {
	FullName string
	Username string
	Email    string
}

func (s *Service) UpdateUser(ctx context.Context, id string, _ UserUpdate) (domain.Ack, error) {
	const op = "service.admin.UpdateUser"

	if _, err := s.catalog.User(id); err != nil {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.ack(ctx, ActionUpdateUser, "User updated successfully"), nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) (domain.Ack, error) {
	const op = "service.admin.DeleteUser"

	if _, err := s.catalog.User(id); err != nil {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.ack(ctx, ActionDeleteUser, "User deleted successfully"), nil
}

type AdDraft struct {
	Title          string
	Description    string
	Image          string
	VenueID        string
	TargetLocation string
	StartDate      string
	EndDate        string
}

// CreateAd acknowledges a new ad, started right away when runNow is set.
func (s *Service) CreateAd(ctx context.Context, _ AdDraft, runNow bool) (domain.Ack, error) {
	msg := "Advertisement saved successfully"
	if runNow {
		msg = "Advertisement created and running successfully"
	}

	return s.ack(ctx, ActionCreateAd, msg), nil
}

func (s *Service) UpdateAd(ctx context.Context, id string, _ AdDraft) (domain.Ack, error) {
	const op = "service.admin.UpdateAd"

	if _, err := s.catalog.Ad(id); err != nil {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.ack(ctx, ActionUpdateAd, "Advertisement updated successfully"), nil
}

func (s *Service) DeleteAd(ctx context.Context, id string) (domain.Ack, error) {
	const op = "service.admin.DeleteAd"

	if _, err := s.catalog.Ad(id); err != nil {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.ack(ctx, ActionDeleteAd, "Advertisement deleted successfully"), nil
}

// ToggleAd reports the status the ad would switch to. The stored status
// does not change, so repeated toggles give the same answer.
func (s *Service) ToggleAd(ctx context.Context, id string) (domain.Ack, error) {
	const op = "service.admin.ToggleAd"

	ad, err := s.catalog.Ad(id)
	if err != nil {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	verb := "stopped"
	switch ad.Status.Toggled() {
	case domain.AdRunning:
		verb = "started"
	case domain.AdStopped:
		verb = "stopped"
	}

	return s.ack(ctx, ActionToggleAd, fmt.Sprintf("Advertisement %s successfully", verb)), nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id string) (domain.Ack, error) {
	const op = "service.admin.MarkNotificationRead"

	if _, err := s.catalog.Notification(id); err != nil {
		return domain.Ack{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.ack(ctx, ActionMarkRead, "Notification marked as read"), nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context) domain.Ack {
	return s.ack(ctx, ActionMarkAllRead, "All notifications marked as read")
}

func (s *Service) ClearNotifications(ctx context.Context) domain.Ack {
	return s.ack(ctx, ActionClearAll, "All notifications cleared")
}

type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

func (s *Service) ChangePassword(ctx context.Context, _ PasswordChange) domain.Ack {
	return s.ack(ctx, ActionChangePassword, "Password changed successfully")
}

func (s *Service) SetTwoFactor(ctx context.Context, enabled bool) domain.Ack {
	msg := "Two-factor authentication disabled"
	if enabled {
		msg = "Two-factor authentication enabled"
	}

	return s.ack(ctx, ActionToggleTwoFactor, msg)
}

type Preferences struct {
	EmailNotifications bool
	PushNotifications  bool
}

func (s *Service) SavePreferences(ctx context.Context, _ Preferences) domain.Ack {
	return s.ack(ctx, ActionSavePreferences, "Preferences saved successfully")
}
