package shop

import (
	"errors"
	"net/http"

	"github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module provides the catalog, cart and checkout routes.
type Module struct {
	gateway ShopGateway
	state   SessionState
	base    modulehandler.Base
	config  Config
}

// New returns a shop module. A nil gateway serves degraded pages.
func New(gateway ShopGateway, state SessionState, base modulehandler.Base, config Config) Module {
	return Module{gateway: gateway, state: state, base: base, config: config}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "shop" }

// Healthy reports whether the shop module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires shop route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.state == nil {
		return module.Mount{}, errors.New("shop: session state is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.config), m.state, m.base))
	return module.Mount{Prefix: routepath.ShopPrefix, Handler: mux}, nil
}
