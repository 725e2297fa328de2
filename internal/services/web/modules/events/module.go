package events

import (
	"net/http"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module provides the drafted events list and delete flow.
type Module struct {
	gateway EventsGateway
	runner  *confirm.Runner
	base    modulehandler.Base
}

// New returns an events module. A nil gateway serves degraded pages.
func New(gateway EventsGateway, runner *confirm.Runner, base modulehandler.Base) Module {
	if runner == nil {
		runner = confirm.NewRunner()
	}
	return Module{gateway: gateway, runner: runner, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "events" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires event route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.runner, m.base))
	return module.Mount{Prefix: routepath.EventsPrefix, Handler: mux}, nil
}
