package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/filter"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/fixture"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	ds, err := fixture.Load(context.Background(), fixture.NewEmbedded())
	require.NoError(t, err)

	return New(ds)
}

func TestVenuesDerivesRows(t *testing.T) {
	s := newTestService(t)

	rows, err := s.Venues(filter.VenueCriteria{Query: "blue moon"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Nightlife", row.CategoryName)
	assert.Equal(t, "Bar", row.SubcategoryName)
	assert.Equal(t, 57, row.TodayVotes)
	assert.Equal(t, 79, row.OpenPercent)
	assert.Equal(t, 21, row.ClosePercent)
}

func TestVenuesHighBand(t *testing.T) {
	s := newTestService(t)

	rows, err := s.Venues(filter.VenueCriteria{Votes: filter.BandHigh, Status: "open"})
	require.NoError(t, err)

	var names []string
	for _, r := range rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"The Blue Moon Bar", "The Golden Gate Pub", "Downtown Sports Bar"}, names)
}

func TestVenuesInvalidFilter(t *testing.T) {
	s := newTestService(t)

	_, err := s.Venues(filter.VenueCriteria{Status: "ajar"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.ErrorIs(t, err, domain.ErrUnknownValue)

	_, err = s.Users(filter.UserCriteria{Activity: "asleep"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = s.Ads(filter.AdCriteria{Status: "paused"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = s.Notifications(filter.NotificationCriteria{Read: "skimmed"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestLookups(t *testing.T) {
	s := newTestService(t)

	v, err := s.Venue("3")
	require.NoError(t, err)
	assert.Equal(t, "The Golden Gate Pub", v.Name)

	_, err = s.Venue("404")
	assert.ErrorIs(t, err, ErrNotFound)

	u, err := s.User("2")
	require.NoError(t, err)
	assert.Equal(t, "sarahj", u.Username)

	_, err = s.User("404")
	assert.ErrorIs(t, err, ErrNotFound)

	a, err := s.Ad("3")
	require.NoError(t, err)
	assert.Equal(t, domain.AdStopped, a.Status)

	_, err = s.Notification("404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubcategories(t *testing.T) {
	s := newTestService(t)

	subs, err := s.Subcategories("dining")
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "restaurant", subs[0].ID)

	_, err = s.Subcategories("shopping")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersAndNotifications(t *testing.T) {
	s := newTestService(t)

	users, err := s.Users(filter.UserCriteria{Activity: "inactive"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "davidw", users[0].Username)

	unread, err := s.Notifications(filter.NotificationCriteria{Read: "unread"})
	require.NoError(t, err)
	assert.Len(t, unread, 3)
}
