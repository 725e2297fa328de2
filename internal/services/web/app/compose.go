package app

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// RequireAuth guards every protected module. When nil, protected routes
	// always redirect to the login page.
	RequireAuth      func(http.Handler) http.Handler
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// Composition is the composed root handler plus the pattern each module owns.
type Composition struct {
	Handler http.Handler
	// Routes maps every registered mux pattern to the owning module ID.
	Routes map[string]string
}

// Patterns returns the registered patterns in lexical order.
func (c Composition) Patterns() []string {
	out := make([]string, 0, len(c.Routes))
	for pattern := range c.Routes {
		out = append(out, pattern)
	}
	sort.Strings(out)
	return out
}

// surface is one group of modules sharing a prefix policy and guard.
type surface struct {
	name      string
	protected bool
	guard     func(http.Handler) http.Handler
	modules   []module.Module
}

// patterns lists the mux patterns a prefix claims. Protected prefixes also
// claim their slashless form so "/app/events" is guarded instead of falling
// through to the public catch-all.
func (s surface) patterns(prefix string) []string {
	if !s.protected {
		return []string{prefix}
	}
	return []string{prefix, strings.TrimSuffix(prefix, "/")}
}

// Compose builds a root HTTP handler from module groups.
func Compose(input ComposeInput) (Composition, error) {
	guard := input.RequireAuth
	if guard == nil {
		guard = denyAll
	}
	surfaces := []surface{
		{name: "public", modules: input.PublicModules},
		{name: "protected", protected: true, guard: guard, modules: input.ProtectedModules},
	}

	root := http.NewServeMux()
	owners := make(map[string]string)
	for _, s := range surfaces {
		for i, feature := range s.modules {
			if feature == nil {
				return Composition{}, fmt.Errorf("%s module %d is nil", s.name, i)
			}
			mount, err := checkedMount(feature)
			if err != nil {
				return Composition{}, err
			}
			if underApp := strings.HasPrefix(mount.Prefix, routepath.AppPrefix); underApp != s.protected {
				return Composition{}, fmt.Errorf("module %q prefix %q does not belong in the %s group", feature.ID(), mount.Prefix, s.name)
			}

			handler := mount.Handler
			if s.guard != nil {
				handler = s.guard(handler)
			}
			for _, pattern := range s.patterns(mount.Prefix) {
				if owner, taken := owners[pattern]; taken {
					return Composition{}, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, owner)
				}
				owners[pattern] = feature.ID()
				root.Handle(pattern, handler)
			}
		}
	}
	return Composition{Handler: root, Routes: owners}, nil
}

// checkedMount asks feature for its mount and enforces the prefix shape.
func checkedMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if problem := prefixProblem(mount.Prefix); problem != "" {
		return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %s", feature.ID(), mount.Prefix, problem)
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func prefixProblem(prefix string) string {
	switch {
	case prefix == "":
		return "prefix is required"
	case strings.TrimSpace(prefix) != prefix:
		return "prefix must not include surrounding whitespace"
	case !strings.HasPrefix(prefix, "/"):
		return "prefix must begin with /"
	case !strings.HasSuffix(prefix, "/"):
		return "prefix must end with /"
	}
	return ""
}

func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, routepath.Login)
	})
}
