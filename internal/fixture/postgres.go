package fixture

import (
	"context"
	"fmt"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

// Reader is the read-only side of the fixture tables.
type Reader interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListVenues(ctx context.Context) ([]domain.Venue, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListAds(ctx context.Context) ([]domain.Advertisement, error)
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	ListRecentLocations(ctx context.Context) ([]domain.RecentLocation, error)
	ListRecentActivities(ctx context.Context) ([]domain.RecentActivity, error)
}

type Postgres struct {
	r Reader
}

func NewPostgres(r Reader) *Postgres {
	return &Postgres{r: r}
}

func (p *Postgres) Load(ctx context.Context) (*Dataset, error) {
	const op = "fixture.Postgres.Load"

	var (
		ds  Dataset
		err error
	)

	if ds.Categories, err = p.r.ListCategories(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ds.Venues, err = p.r.ListVenues(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ds.Users, err = p.r.ListUsers(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ds.Ads, err = p.r.ListAds(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ds.Notifications, err = p.r.ListNotifications(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ds.RecentLocations, err = p.r.ListRecentLocations(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ds.RecentActivities, err = p.r.ListRecentActivities(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ds, nil
}
