package session

import (
	"net/http"
	"net/url"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// RoleAdmin is the backend role that unlocks the admin navigation.
const RoleAdmin = "admin"

// ResolveViewer derives chrome viewer state from the request session.
func ResolveViewer(r *http.Request) module.Viewer {
	if r == nil {
		return module.Viewer{}
	}
	sess, ok := FromContext(r.Context())
	if !ok || !sess.SignedIn() {
		return module.Viewer{}
	}
	name := sess.Username
	if name == "" {
		name = sess.Email
	}
	return module.Viewer{
		DisplayName: name,
		SignedIn:    true,
		IsAdmin:     sess.Role == RoleAdmin,
	}
}

// RequireSignedIn redirects anonymous requests to the login page, carrying
// the requested path so sign-in can return to it.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := FromContext(r.Context()); ok && sess.SignedIn() {
			next.ServeHTTP(w, r)
			return
		}
		target := r.URL.RequestURI()
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			target = ""
			if current, err := url.Parse(r.Header.Get("HX-Current-URL")); err == nil {
				target = current.RequestURI()
			}
		}
		httpx.WriteRedirect(w, r, routepath.LoginWithNext(target))
	})
}
