package templates

import (
	"strings"
	"testing"

	module "github.com/arenahq/arena/internal/services/web/module"
	webi18n "github.com/arenahq/arena/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

func TestLayoutAdaptsNavigationToViewer(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.MustParse("en-US"))
	tests := []struct {
		name      string
		viewer    module.Viewer
		want      []string
		forbidden []string
	}{
		{
			name:      "anonymous",
			want:      []string{`href="/login?next=%2Fnews%2F"`, "Sign in"},
			forbidden: []string{"/app/coupons", "Sign out"},
		},
		{
			name:      "member",
			viewer:    module.Viewer{DisplayName: "ada", SignedIn: true},
			want:      []string{"Sign out", "ada"},
			forbidden: []string{"/app/coupons"},
		},
		{
			name:   "admin",
			viewer: module.Viewer{DisplayName: "root", SignedIn: true, IsAdmin: true},
			want:   []string{`href="/app/coupons"`, `href="/app/dashboard"`},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			body := render(t, Layout(PageContext{
				Title:       "News",
				Lang:        "en-US",
				Loc:         loc,
				CurrentPath: "/news/",
				Viewer:      tc.viewer,
			}, Text("content")))
			if !strings.HasPrefix(body, "<!DOCTYPE html>") {
				t.Fatalf("missing doctype: %q", body[:40])
			}
			for _, want := range tc.want {
				if !strings.Contains(body, want) {
					t.Fatalf("body missing %q", want)
				}
			}
			for _, forbidden := range tc.forbidden {
				if strings.Contains(body, forbidden) {
					t.Fatalf("body unexpectedly contains %q", forbidden)
				}
			}
		})
	}
}

func TestLayoutRendersToast(t *testing.T) {
	t.Parallel()

	body := render(t, Layout(PageContext{Toast: &Toast{Kind: "success", Message: "Saved"}}, nil))
	if !strings.Contains(body, `class="toast toast-success"`) || !strings.Contains(body, "Saved") {
		t.Fatalf("body missing toast: %q", body)
	}
}

func TestLanguageURLPreservesQuery(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/news/", "q=finals&page=2", "pt-BR")
	if got != "/news/?lang=pt-BR&page=2&q=finals" {
		t.Fatalf("LanguageURL() = %q", got)
	}
}

func TestAppErrorStateUsesDetailWhenPresent(t *testing.T) {
	t.Parallel()

	body := render(t, AppErrorState(403, "Admins only", nil))
	if !strings.Contains(body, "Admins only") || !strings.Contains(body, appErrorPageTitleForbiddenKey) {
		t.Fatalf("body = %q", body)
	}
}
