// Package modules defines web module registry helpers.
package modules

import (
	"github.com/arenahq/arena/internal/services/web/integration/backend"
	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/modules/shop"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
	"github.com/arenahq/arena/internal/services/web/session"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared collaborators required to compose the web
// module registry. A nil Backend composes every module in degraded mode; a
// nil Sessions leaves the session-backed modules unmountable.
type Dependencies struct {
	Backend  *backend.Client
	Sessions *session.Manager
	Base     modulehandler.Base
	// Confirm is shared so one pending action blocks duplicates across
	// modules.
	Confirm             *confirm.Runner
	Shop                shop.Config
	PlaceholderStats    bool
	RequestSchemePolicy requestmeta.SchemePolicy
}
