package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

func newTestMux(gw EventsGateway) *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gw), confirm.NewRunner(), modulehandler.NewTestBase()))
	return mux
}

func serve(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func htmx(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	tests := map[string]Scope{"": ScopeAll, "all": ScopeAll, "MINE": ScopeMine, " mine ": ScopeMine, "other": ScopeAll}
	for input, want := range tests {
		if got := ParseScope(input); got != want {
			t.Errorf("ParseScope(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestListScopeSelectsBackendQuery(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{all: sampleEvents(), mine: sampleEvents()[:1]}
	mux := newTestMux(gw)
	all := serve(mux, httptest.NewRequest(http.MethodGet, routepath.AppEvents, nil)).Body.String()
	if !strings.Contains(all, "Friday Scrims") {
		t.Fatal("all scope missing event")
	}
	mine := serve(mux, httptest.NewRequest(http.MethodGet, routepath.AppEvents+"?scope=mine", nil)).Body.String()
	if strings.Contains(mine, "Friday Scrims") || !strings.Contains(mine, "Spring Cup") {
		t.Fatal("mine scope listed other events")
	}
	if len(gw.scopes) != 2 || gw.scopes[0] || !gw.scopes[1] {
		t.Fatalf("scopes = %v", gw.scopes)
	}
	if !strings.Contains(mine, `name="scope" value="mine"`) {
		t.Fatal("filter form dropped the scope")
	}
}

func TestListFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  string
		skip  string
	}{
		{name: "search game", query: "?q=dota", want: "Friday Scrims", skip: "Spring Cup"},
		{name: "search organizer", query: "?q=ADA", want: "Spring Cup", skip: "Friday Scrims"},
		{name: "category", query: "?category=Tournament", want: "Spring Cup", skip: "Friday Scrims"},
		{name: "date", query: "?date=2024-04-05", want: "Friday Scrims", skip: "Spring Cup"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			body := serve(newTestMux(&fakeGateway{all: sampleEvents()}), httptest.NewRequest(http.MethodGet, routepath.AppEvents+tc.query, nil)).Body.String()
			if !strings.Contains(body, tc.want) || strings.Contains(body, tc.skip) {
				t.Fatalf("want %q without %q", tc.want, tc.skip)
			}
		})
	}
}

func TestListUnavailable(t *testing.T) {
	t.Parallel()

	rr := serve(newTestMux(nil), httptest.NewRequest(http.MethodGet, routepath.AppEvents, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}

func TestDeleteRedirectKeepsScope(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{deleteMsg: "Event deleted"}
	req := htmx(httptest.NewRequest(http.MethodPost, routepath.AppEventDelete("e1"), strings.NewReader("scope=mine")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := serve(newTestMux(gw), req)
	if got := rr.Header().Get("HX-Redirect"); got != routepath.AppEvents+"?scope=mine" {
		t.Fatalf("HX-Redirect = %q", got)
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "e1" {
		t.Fatalf("deleted = %v", gw.deleted)
	}
}

func TestDeleteDialogCarriesScope(t *testing.T) {
	t.Parallel()

	rr := serve(newTestMux(&fakeGateway{}), htmx(httptest.NewRequest(http.MethodGet, routepath.AppEventDelete("e1")+"?scope=mine", nil)))
	body := rr.Body.String()
	if rr.Code != http.StatusOK || !strings.Contains(body, `name="scope" value="mine"`) {
		t.Fatalf("dialog = %d %s", rr.Code, body)
	}
}

func TestDeleteFailureKeepsDialogOpen(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{deleteErr: &backend.Error{Status: http.StatusNotFound, Message: "Event not found"}}
	rr := serve(newTestMux(gw), htmx(httptest.NewRequest(http.MethodPost, routepath.AppEventDelete("e9"), nil)))
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), "Event not found") {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&fakeGateway{all: sampleEvents()})
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, routepath.AppEvents, http.StatusOK},
		{http.MethodGet, routepath.EventsPrefix, http.StatusOK},
		{http.MethodGet, routepath.AppEventDelete("e1"), http.StatusOK},
		{http.MethodGet, routepath.EventsPrefix + "e1", http.StatusNotFound},
		{http.MethodPost, routepath.AppEvents, http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		if rr := serve(mux, httptest.NewRequest(tc.method, tc.path, nil)); rr.Code != tc.want {
			t.Errorf("%s %s = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestModule(t *testing.T) {
	t.Parallel()

	if New(NewBackendGateway(nil), nil, modulehandler.NewTestBase()).Healthy() {
		t.Fatal("unavailable gateway reported healthy")
	}
	mount, err := New(&fakeGateway{}, nil, modulehandler.NewTestBase()).Mount()
	if err != nil || mount.Prefix != routepath.EventsPrefix {
		t.Fatalf("mount = %+v err = %v", mount, err)
	}
}
