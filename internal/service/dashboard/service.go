package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/filter"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/fixture"
	redisrepo "github.com/soft-boni/admin-panel-venue-proximity/internal/repository/redis"
)

type Config struct {
	CacheTTL time.Duration
}

type Summary struct {
	Stats            filter.Stats            `json:"stats"`
	RecentLocations  []domain.RecentLocation `json:"recent_locations"`
	RecentActivities []domain.RecentActivity `json:"recent_activities"`
}

type Service struct {
	ds    *fixture.Dataset
	cache *redisrepo.Cache
	cfg   Config
}

// New builds the dashboard service. cache may be nil, in which case every
// call derives the summary again.
func New(ds *fixture.Dataset, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}

	return &Service{
		ds:    ds,
		cache: cache,
		cfg:   cfg,
	}
}

// Summary returns the dashboard counters and recent feeds.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	const op = "service.dashboard.Summary"

	if s.cache == nil {
		return s.derive(), nil
	}

	sum, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyDashboardSummary(),
		s.cfg.CacheTTL,
		func(ctx context.Context) (Summary, error) {
			return s.derive(), nil
		},
	)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", op, err)
	}

	return sum, nil
}

func (s *Service) derive() Summary {
	return Summary{
		Stats: filter.DeriveStats(
			s.ds.Venues,
			filter.Categories(s.ds.Categories),
			s.ds.Users,
			s.ds.Notifications,
		),
		RecentLocations:  s.ds.RecentLocations,
		RecentActivities: s.ds.RecentActivities,
	}
}
