package invites

import (
	"net/http"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module provides the team invite response routes.
type Module struct {
	gateway InviteGateway
	runner  *confirm.Runner
	base    modulehandler.Base
}

// New returns an invites module. A nil gateway serves degraded pages.
func New(gateway InviteGateway, runner *confirm.Runner, base modulehandler.Base) Module {
	return Module{gateway: gateway, runner: runner, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "invites" }

// Healthy reports whether the invites module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires invite route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.runner), m.base))
	return module.Mount{Prefix: routepath.InvitesPrefix, Handler: mux}, nil
}
