package modules

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/sessioncookie"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage/sqlite"
)

func testDependencies(t *testing.T) Dependencies {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return Dependencies{
		Sessions: session.NewManager(store, sessioncookie.Cookies{}, 0),
		Base:     modulehandler.NewTestBase(),
	}
}

func moduleIDs(mods []Module) []string {
	ids := make([]string, 0, len(mods))
	for _, m := range mods {
		ids = append(ids, m.ID())
	}
	return ids
}

func TestDefaultModules(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	if got := strings.Join(moduleIDs(DefaultPublicModules(deps)), ","); got != "public,news,shop,invites,teams" {
		t.Fatalf("public modules = %s", got)
	}
	if got := strings.Join(moduleIDs(DefaultProtectedModules(deps)), ","); got != "dashboard,adminnews,events,coupons,teamroster" {
		t.Fatalf("protected modules = %s", got)
	}
}

func TestModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	seen := map[string]string{}
	for _, m := range append(DefaultPublicModules(deps), DefaultProtectedModules(deps)...) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", m.ID(), err)
		}
		if previous, ok := seen[mount.Prefix]; ok {
			t.Fatalf("modules %q and %q share prefix %q", previous, m.ID(), mount.Prefix)
		}
		seen[mount.Prefix] = m.ID()
	}
}

func TestUnhealthyWithoutBackend(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	unhealthy := Unhealthy(DefaultPublicModules(deps), DefaultProtectedModules(deps))
	for _, id := range []string{"news", "shop", "coupons", "teamroster", "dashboard"} {
		if !slices.Contains(unhealthy, id) {
			t.Fatalf("module %q not reported unhealthy: %v", id, unhealthy)
		}
	}
}

func TestSessionBackedModulesRequireSessions(t *testing.T) {
	t.Parallel()

	for _, m := range DefaultPublicModules(Dependencies{Base: modulehandler.NewTestBase()}) {
		if m.ID() != "public" && m.ID() != "shop" {
			continue
		}
		if _, err := m.Mount(); err == nil {
			t.Fatalf("module %q mounted without a session manager", m.ID())
		}
	}
}
