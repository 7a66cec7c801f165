// Package fixture loads the read-only collections the dashboard works on.
// A Dataset is loaded once at startup and never modified afterwards.
package fixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

var ErrUnknownSource = errors.New("unknown fixture source")

type Dataset struct {
	Categories       []domain.Category       `yaml:"categories"`
	Venues           []domain.Venue          `yaml:"venues"`
	Users            []domain.User           `yaml:"users"`
	Ads              []domain.Advertisement  `yaml:"ads"`
	Notifications    []domain.Notification   `yaml:"notifications"`
	RecentLocations  []domain.RecentLocation `yaml:"recent_locations"`
	RecentActivities []domain.RecentActivity `yaml:"recent_activities"`
}

type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

type SourceFunc func(ctx context.Context) (*Dataset, error)

func (f SourceFunc) Load(ctx context.Context) (*Dataset, error) { return f(ctx) }

// Validate rejects values outside the closed enumerations. Category
// references are not checked: unresolved ids fall back to the raw id.
func (d *Dataset) Validate() error {
	const op = "fixture.Dataset.Validate"

	for _, v := range d.Venues {
		if !v.Status.Valid() {
			return fmt.Errorf("%s: venue %s: %w: status %q", op, v.ID, domain.ErrUnknownValue, v.Status)
		}
		if v.TodayOpenVotes < 0 || v.TodayCloseVotes < 0 || v.TotalVotes < 0 {
			return fmt.Errorf("%s: venue %s: negative vote count", op, v.ID)
		}
	}

	for _, a := range d.Ads {
		if !a.Status.Valid() {
			return fmt.Errorf("%s: ad %s: %w: status %q", op, a.ID, domain.ErrUnknownValue, a.Status)
		}
	}

	for _, n := range d.Notifications {
		if !n.Type.Valid() {
			return fmt.Errorf("%s: notification %s: %w: type %q", op, n.ID, domain.ErrUnknownValue, n.Type)
		}
	}

	for _, a := range d.RecentActivities {
		if !a.Action.Valid() {
			return fmt.Errorf("%s: activity %s: %w: action %q", op, a.ID, domain.ErrUnknownValue, a.Action)
		}
	}

	return nil
}

// Load reads the dataset from src and validates it.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	const op = "fixture.Load"

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ds, nil
}

// NewSource picks a source by name. open builds the postgres source and is
// only called when that source is selected.
func NewSource(name string, open func() (Source, error)) (Source, error) {
	const op = "fixture.NewSource"

	switch name {
	case "", SourceEmbedded:
		return NewEmbedded(), nil
	case SourcePostgres:
		src, err := open()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return src, nil
	}

	return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownSource, name)
}
