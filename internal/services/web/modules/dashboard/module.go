package dashboard

import (
	"net/http"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/fetcher"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// trackerCapacity bounds the number of users with a remembered stats load.
const trackerCapacity = 1024

// Module provides authenticated dashboard routes.
type Module struct {
	stats    StatsProvider
	trackers *fetcher.Registry[Stats]
	base     modulehandler.Base
}

// New returns a dashboard module. A nil provider serves degraded stats.
func New(stats StatsProvider, base modulehandler.Base) Module {
	if stats == nil {
		stats = NewLiveStats(nil)
	}
	return Module{stats: stats, trackers: fetcher.NewRegistry[Stats](trackerCapacity), base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether live stats have an operational gateway.
func (m Module) Healthy() bool {
	return healthy(m.stats)
}

func healthy(provider StatsProvider) bool {
	switch p := provider.(type) {
	case liveStats:
		_, unavailable := p.gateway.(unavailableGateway)
		return !unavailable
	case composite:
		for _, part := range p {
			if !healthy(part) {
				return false
			}
		}
	}
	return true
}

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.stats, m.trackers, m.base))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
