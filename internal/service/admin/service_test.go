package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/fixture"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/catalog"
)

type recorder struct {
	mu   sync.Mutex
	acks []domain.Ack
	err  error
}

func (r *recorder) PublishAck(_ context.Context, ack domain.Ack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.acks = append(r.acks, ack)
	return r.err
}

func newTestService(t *testing.T, pub Publisher) (*Service, *fixture.Dataset) {
	t.Helper()

	ds, err := fixture.Load(context.Background(), fixture.NewEmbedded())
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(catalog.New(ds), pub, log), ds
}

func TestAddVenue(t *testing.T) {
	rec := &recorder{}
	s, ds := newTestService(t, rec)
	before := len(ds.Venues)

	ack, err := s.AddVenue(context.Background(), NewVenue{
		Name:          "The Craft Beer House",
		Location:      "234 West St, New York, NY 10014",
		CategoryID:    "nightlife",
		SubcategoryID: "pub",
	})
	require.NoError(t, err)

	assert.Equal(t, "Venue added successfully", ack.Message)
	assert.False(t, ack.Persisted)
	assert.Len(t, ds.Venues, before)
	require.Len(t, rec.acks, 1)
	assert.Equal(t, ActionAddVenue, rec.acks[0].Action)
}

func TestAddVenueValidation(t *testing.T) {
	s, _ := newTestService(t, nil)

	_, err := s.AddVenue(context.Background(), NewVenue{Name: "X", Location: " ", CategoryID: "nightlife", SubcategoryID: "pub"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = s.AddVenue(context.Background(), NewVenue{Name: "X", Location: "Y", CategoryID: "dining", SubcategoryID: "pub"})
	assert.ErrorIs(t, err, ErrSubcategoryMismatch)
}

func TestDeleteVenueNamesVenue(t *testing.T) {
	s, _ := newTestService(t, nil)

	ack, err := s.DeleteVenue(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, `Venue "Sunset Lounge" deleted successfully`, ack.Message)

	_, err = s.DeleteVenue(context.Background(), "404")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUserActions(t *testing.T) {
	s, _ := newTestService(t, nil)

	ack, err := s.UpdateUser(context.Background(), "1", UserUpdate{FullName: "John Smith"})
	require.NoError(t, err)
	assert.Equal(t, "User updated successfully", ack.Message)

	ack, err = s.DeleteUser(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", ack.Message)

	_, err = s.DeleteUser(context.Background(), "404")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestAdActions(t *testing.T) {
	s, ds := newTestService(t, nil)
	ctx := context.Background()

	ack, err := s.CreateAd(ctx, AdDraft{Title: "Quiz"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Advertisement created and running successfully", ack.Message)

	ack, err = s.CreateAd(ctx, AdDraft{Title: "Quiz"}, false)
	require.NoError(t, err)
	assert.Equal(t, "Advertisement saved successfully", ack.Message)

	ack, err = s.UpdateAd(ctx, "1", AdDraft{})
	require.NoError(t, err)
	assert.Equal(t, "Advertisement updated successfully", ack.Message)

	ack, err = s.DeleteAd(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Advertisement deleted successfully", ack.Message)

	ack, err = s.ToggleAd(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Advertisement stopped successfully", ack.Message)

	ack, err = s.ToggleAd(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Advertisement started successfully", ack.Message)

	// Nothing is written back, so a second toggle answers the same.
	ack, err = s.ToggleAd(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Advertisement started successfully", ack.Message)
	assert.Equal(t, domain.AdStopped, ds.Ads[2].Status)

	_, err = s.ToggleAd(ctx, "404")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestNotificationActions(t *testing.T) {
	s, _ := newTestService(t, nil)
	ctx := context.Background()

	ack, err := s.MarkNotificationRead(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Notification marked as read", ack.Message)

	assert.Equal(t, "All notifications marked as read", s.MarkAllNotificationsRead(ctx).Message)
	assert.Equal(t, "All notifications cleared", s.ClearNotifications(ctx).Message)
}

func TestSettingsActions(t *testing.T) {
	s, _ := newTestService(t, nil)
	ctx := context.Background()

	assert.Equal(t, "Password changed successfully", s.ChangePassword(ctx, PasswordChange{}).Message)
	assert.Equal(t, "Two-factor authentication enabled", s.SetTwoFactor(ctx, true).Message)
	assert.Equal(t, "Two-factor authentication disabled", s.SetTwoFactor(ctx, false).Message)
	assert.Equal(t, "Preferences saved successfully", s.SavePreferences(ctx, Preferences{}).Message)
}

func TestPublishFailureDoesNotFailAction(t *testing.T) {
	s, _ := newTestService(t, &recorder{err: errors.New("redis down")})

	ack := s.ClearNotifications(context.Background())
	assert.Equal(t, ActionClearAll, ack.Action)
}
