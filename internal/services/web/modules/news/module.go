package news

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module provides the public news feed and article pages.
type Module struct {
	gateway NewsGateway
	base    modulehandler.Base
}

// New returns a news module. A nil gateway serves degraded pages.
func New(gateway NewsGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "news" }

// Healthy reports whether the news module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires news route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.NewsPrefix, Handler: mux}, nil
}
