package modules

import (
	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/modules/adminnews"
	"github.com/arenahq/arena/internal/services/web/modules/coupons"
	"github.com/arenahq/arena/internal/services/web/modules/dashboard"
	"github.com/arenahq/arena/internal/services/web/modules/events"
	"github.com/arenahq/arena/internal/services/web/modules/invites"
	"github.com/arenahq/arena/internal/services/web/modules/news"
	"github.com/arenahq/arena/internal/services/web/modules/public"
	"github.com/arenahq/arena/internal/services/web/modules/shop"
	"github.com/arenahq/arena/internal/services/web/modules/teams"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
)

// DefaultPublicModules returns the modules served without sign-in.
func DefaultPublicModules(deps Dependencies) []Module {
	deps = deps.normalized()
	var signer public.Signer
	var state shop.SessionState
	if deps.Sessions != nil {
		signer = deps.Sessions
		state = deps.Sessions
	}
	return []Module{
		public.New(public.NewBackendGateway(deps.Backend), signer, deps.Base, deps.RequestSchemePolicy),
		news.New(news.NewBackendGateway(deps.Backend), deps.Base),
		shop.New(shop.NewBackendGateway(deps.Backend), state, deps.Base, deps.Shop),
		invites.New(invites.NewBackendGateway(deps.Backend), deps.Confirm, deps.Base),
		teams.NewPublic(teams.NewBackendGateway(deps.Backend), deps.Base),
	}
}

// DefaultProtectedModules returns the admin modules mounted under /app/.
func DefaultProtectedModules(deps Dependencies) []Module {
	deps = deps.normalized()
	stats := dashboard.NewLiveStats(dashboard.NewBackendGateway(deps.Backend))
	if deps.PlaceholderStats {
		stats = dashboard.Compose(stats, dashboard.NewPlaceholderStats())
	}
	return []Module{
		dashboard.New(stats, deps.Base),
		adminnews.New(adminnews.NewBackendGateway(deps.Backend), deps.Confirm, deps.Base),
		events.New(events.NewBackendGateway(deps.Backend), deps.Confirm, deps.Base),
		coupons.New(coupons.NewBackendGateway(deps.Backend), deps.Confirm, deps.Base),
		teams.NewRoster(teams.NewBackendGateway(deps.Backend), deps.Confirm, deps.Base),
	}
}

// Unhealthy reports the modules whose gateways are unavailable. An empty result
// means every module can reach its backend.
func Unhealthy(groups ...[]Module) []string {
	var ids []string
	for _, group := range groups {
		for _, m := range group {
			reporter, ok := m.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				ids = append(ids, m.ID())
			}
		}
	}
	return ids
}

func (d Dependencies) normalized() Dependencies {
	if d.Confirm == nil {
		d.Confirm = confirm.NewRunner()
	}
	return d
}
