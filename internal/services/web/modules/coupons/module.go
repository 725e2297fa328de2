package coupons

import (
	"net/http"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module provides the coupon list, edit and delete flows.
type Module struct {
	gateway CouponsGateway
	runner  *confirm.Runner
	base    modulehandler.Base
}

// New returns a coupons module. A nil gateway serves degraded pages.
func New(gateway CouponsGateway, runner *confirm.Runner, base modulehandler.Base) Module {
	if runner == nil {
		runner = confirm.NewRunner()
	}
	return Module{gateway: gateway, runner: runner, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "coupons" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires coupon route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.runner, m.base))
	return module.Mount{Prefix: routepath.CouponsPrefix, Handler: mux}, nil
}
