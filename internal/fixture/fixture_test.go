package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/filter"
)

func TestEmbeddedLoad(t *testing.T) {
	ds, err := Load(context.Background(), NewEmbedded())
	require.NoError(t, err)

	assert.Len(t, ds.Categories, 3)
	assert.Len(t, ds.Venues, 6)
	assert.Len(t, ds.Users, 5)
	assert.Len(t, ds.Ads, 4)
	assert.Len(t, ds.Notifications, 5)
	assert.Len(t, ds.RecentLocations, 4)
	assert.Len(t, ds.RecentActivities, 5)

	blueMoon := ds.Venues[0]
	assert.Equal(t, "The Blue Moon Bar", blueMoon.Name)
	assert.Equal(t, domain.VenueOpen, blueMoon.Status)
	assert.Equal(t, 57, blueMoon.TodayVotes())

	assert.True(t, decimal.RequireFromString("7.04").Equal(ds.Ads[0].CTR))
	assert.Equal(t, domain.AdStopped, ds.Ads[2].Status)
	assert.Equal(t, domain.VotedClosed, ds.RecentActivities[1].Action)
}

func TestEmbeddedVenuesResolve(t *testing.T) {
	ds, err := Load(context.Background(), NewEmbedded())
	require.NoError(t, err)

	cats := filter.Categories(ds.Categories)
	for _, v := range ds.Venues {
		assert.True(t, cats.Has(v.CategoryID, v.SubcategoryID), "venue %s", v.ID)
	}
}

func TestLoadRejectsUnknownEnum(t *testing.T) {
	src := NewYAML([]byte(`
venues:
  - id: "1"
    name: X
    status: maybe
`))

	_, err := Load(context.Background(), src)
	assert.ErrorIs(t, err, domain.ErrUnknownValue)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	src := NewYAML([]byte(`
venues:
  - id: "1"
    colour: red
`))

	_, err := Load(context.Background(), src)
	assert.Error(t, err)
}

type stubReader struct {
	Reader
	err error
}

func (s stubReader) ListCategories(context.Context) ([]domain.Category, error) {
	return nil, s.err
}

func TestPostgresLoadPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewPostgres(stubReader{err: boom}).Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource("", nil)
	require.NoError(t, err)
	assert.IsType(t, &Embedded{}, src)

	src, err = NewSource(SourcePostgres, func() (Source, error) { return NewPostgres(stubReader{}), nil })
	require.NoError(t, err)
	assert.IsType(t, &Postgres{}, src)

	_, err = NewSource("sqlite", nil)
	assert.ErrorIs(t, err, ErrUnknownSource)
}
