package service

import (
	"log/slog"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/auth"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/fixture"
	redisrepo "github.com/soft-boni/admin-panel-venue-proximity/internal/repository/redis"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/admin"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/catalog"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/dashboard"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/signin"
)

type Services struct {
	Catalog   *catalog.Service
	Dashboard *dashboard.Service
	Admin     *admin.Service
	SignIn    *signin.Service
}

type Config struct {
	Dashboard dashboard.Config
}

// NewServices wires the services over a loaded dataset. cache and pub may be
// nil when Redis is not configured.
func NewServices(
	ds *fixture.Dataset,
	registry *auth.Registry,
	tokens *auth.Tokens,
	cache *redisrepo.Cache,
	pub admin.Publisher,
	cfg Config,
	log *slog.Logger,
) *Services {
	cat := catalog.New(ds)

	return &Services{
		Catalog:   cat,
		Dashboard: dashboard.New(ds, cache, cfg.Dashboard),
		Admin:     admin.New(cat, pub, log.With(slog.String("service", "admin"))),
		SignIn:    signin.New(registry, tokens, log.With(slog.String("service", "signin"))),
	}
}
