package teams

import (
	"net/http"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module serves either the public team page or the roster management pages.
type Module struct {
	gateway TeamsGateway
	runner  *confirm.Runner
	base    modulehandler.Base
	roster  bool
}

// NewPublic returns the public team page module. A nil gateway serves
// degraded pages.
func NewPublic(gateway TeamsGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// NewRoster returns the roster management module mounted under /app/.
func NewRoster(gateway TeamsGateway, runner *confirm.Runner, base modulehandler.Base) Module {
	if runner == nil {
		runner = confirm.NewRunner()
	}
	return Module{gateway: gateway, runner: runner, base: base, roster: true}
}

// ID returns a stable module identifier.
func (m Module) ID() string {
	if m.roster {
		return "teamroster"
	}
	return "teams"
}

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires team route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.runner, m.base)
	if m.roster {
		registerRosterRoutes(mux, h)
		return module.Mount{Prefix: routepath.AppTeamsPrefix, Handler: mux}, nil
	}
	registerPublicRoutes(mux, h)
	return module.Mount{Prefix: routepath.TeamsPrefix, Handler: mux}, nil
}
