package adminnews

import (
	"net/http"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module provides the admin article list and delete flow.
type Module struct {
	gateway NewsGateway
	runner  *confirm.Runner
	base    modulehandler.Base
}

// New returns an admin news module. A nil gateway serves degraded pages.
func New(gateway NewsGateway, runner *confirm.Runner, base modulehandler.Base) Module {
	if runner == nil {
		runner = confirm.NewRunner()
	}
	return Module{gateway: gateway, runner: runner, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "adminnews" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires admin news route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.runner, m.base))
	return module.Mount{Prefix: routepath.AdminNewsPrefix, Handler: mux}, nil
}
