// Package module holds the contract between feature modules and the root
// composer, plus the viewer data every page chrome needs.
package module

import "net/http"

// Viewer is what the navigation bar knows about the signed-in user.
type Viewer struct {
	DisplayName string
	SignedIn    bool
	// IsAdmin unlocks the admin news link; the backend still enforces roles.
	IsAdmin bool
}

// ResolveViewer resolves chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveLanguage returns an explicit language preference for a request.
type ResolveLanguage func(*http.Request) string

// Mount is a module's route subtree: every path under Prefix goes to Handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one feature area mounted by the composer.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is implemented by modules backed by the esports API. A
// module reports false when it was built without a backend client and
// serves only the unavailable state.
type HealthReporter interface {
	Healthy() bool
}
