package public

import (
	"errors"
	"net/http"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// Module provides the home, health and sign-in routes under the root prefix.
type Module struct {
	gateway Gateway
	signer  Signer
	base    modulehandler.Base
	policy  requestmeta.SchemePolicy
}

// New returns the root module. A nil gateway serves degraded pages.
func New(gateway Gateway, signer Signer, base modulehandler.Base, policy requestmeta.SchemePolicy) Module {
	return Module{gateway: gateway, signer: signer, base: base, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "public" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires public routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.signer == nil {
		return module.Mount{}, errors.New("public: session signer is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.signer, m.base, m.policy))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
