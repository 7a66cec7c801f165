// Package catalog serves the fixture collections through the filter engine.
package catalog

import (
	"fmt"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/filter"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/fixture"
)

type Service struct {
	ds   *fixture.Dataset
	cats filter.Categories
}

func New(ds *fixture.Dataset) *Service {
	return &Service{
		ds:   ds,
		cats: filter.Categories(ds.Categories),
	}
}

func (s *Service) Dataset() *fixture.Dataset { return s.ds }

func (s *Service) Categories() filter.Categories { return s.cats }

// Venues filters venues by c and derives the display columns of every match.
func (s *Service) Venues(c filter.VenueCriteria) ([]filter.VenueRow, error) {
	const op = "service.catalog.Venues"

	venues, err := filter.Venues(s.ds.Venues, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidFilter, err)
	}

	return filter.DeriveVenues(venues, s.cats), nil
}

func (s *Service) Venue(id string) (filter.VenueRow, error) {
	const op = "service.catalog.Venue"

	v, ok := find(s.ds.Venues, id, func(v domain.Venue) string { return v.ID })
	if !ok {
		return filter.VenueRow{}, fmt.Errorf("%s: venue %q: %w", op, id, ErrNotFound)
	}

	return filter.DeriveVenue(v, s.cats), nil
}

func (s *Service) Users(c filter.UserCriteria) ([]domain.User, error) {
	const op = "service.catalog.Users"

	users, err := filter.Users(s.ds.Users, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidFilter, err)
	}

	return users, nil
}

func (s *Service) User(id string) (domain.User, error) {
	const op = "service.catalog.User"

	u, ok := find(s.ds.Users, id, func(u domain.User) string { return u.ID })
	if !ok {
		return domain.User{}, fmt.Errorf("%s: user %q: %w", op, id, ErrNotFound)
	}

	return u, nil
}

func (s *Service) Ads(c filter.AdCriteria) ([]domain.Advertisement, error) {
	const op = "service.catalog.Ads"

	ads, err := filter.Ads(s.ds.Ads, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidFilter, err)
	}

	return ads, nil
}

func (s *Service) Ad(id string) (domain.Advertisement, error) {
	const op = "service.catalog.Ad"

	a, ok := find(s.ds.Ads, id, func(a domain.Advertisement) string { return a.ID })
	if !ok {
		return domain.Advertisement{}, fmt.Errorf("%s: ad %q: %w", op, id, ErrNotFound)
	}

	return a, nil
}

func (s *Service) Notifications(c filter.NotificationCriteria) ([]domain.Notification, error) {
	const op = "service.catalog.Notifications"

	ns, err := filter.Notifications(s.ds.Notifications, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidFilter, err)
	}

	return ns, nil
}

func (s *Service) Notification(id string) (domain.Notification, error) {
	const op = "service.catalog.Notification"

	n, ok := find(s.ds.Notifications, id, func(n domain.Notification) string { return n.ID })
	if !ok {
		return domain.Notification{}, fmt.Errorf("%s: notification %q: %w", op, id, ErrNotFound)
	}

	return n, nil
}

// Subcategories lists the subcategories of categoryID in table order.
func (s *Service) Subcategories(categoryID string) ([]domain.Subcategory, error) {
	const op = "service.catalog.Subcategories"

	subs := s.cats.Subcategories(categoryID)
	if subs == nil {
		return nil, fmt.Errorf("%s: category %q: %w", op, categoryID, ErrNotFound)
	}

	return subs, nil
}

func find[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, it := range items {
		if key(it) == id {
			return it, true
		}
	}

	var zero T
	return zero, false
}
