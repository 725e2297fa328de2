package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arenahq/arena/internal/services/web/platform/fetcher"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
	"github.com/google/uuid"
)

func newTestMux(stats StatsProvider) *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(stats, fetcher.NewRegistry[Stats](8), modulehandler.NewTestBase()))
	return mux
}

func userRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("HX-Request", "true")
	return req.WithContext(session.WithSession(req.Context(), storage.Session{ID: "s", UserID: "admin-1", AccessToken: "t"}))
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(NewPlaceholderStats(), fetcher.NewRegistry[Stats](1), modulehandler.NewTestBase()))
}

func TestRegisterRoutesDashboardPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := newTestMux(NewPlaceholderStats())
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "app dashboard get", method: http.MethodGet, path: routepath.AppDashboard, wantStatus: http.StatusOK},
		{name: "app dashboard head", method: http.MethodHead, path: routepath.AppDashboard, wantStatus: http.StatusOK},
		{name: "dashboard prefix get", method: http.MethodGet, path: routepath.DashboardPrefix, wantStatus: http.StatusOK},
		{name: "stats panel", method: http.MethodGet, path: routepath.AppDashboardStats, wantStatus: http.StatusOK},
		{name: "dashboard unknown subpath", method: http.MethodGet, path: routepath.DashboardPrefix + "other", wantStatus: http.StatusNotFound},
		{name: "dashboard post rejected", method: http.MethodPost, path: routepath.DashboardPrefix, wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" {
				if got := rr.Header().Get("Allow"); got != tc.wantAllow {
					t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
				}
			}
		})
	}
}

func TestIndexRendersPendingPanelThatLoadsItself(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(NewPlaceholderStats()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.AppDashboard, nil))
	body := rr.Body.String()
	for _, want := range []string{`id="dashboard-stats"`, `data-status="pending"`, `hx-get="/app/dashboard/stats?panel=`, `hx-trigger="load"`} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard body missing %s", want)
		}
	}
}

func TestStatsPanelRendersCards(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(Compose(NewLiveStats(fakeCounts{news: 7}), NewPlaceholderStats())).ServeHTTP(rr, userRequest(routepath.AppDashboardStats))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-status="success"`) || !strings.Contains(body, ">7<") || !strings.Contains(body, "stat-card sample") {
		t.Fatalf("stats body = %s", body)
	}
}

func TestStatsPanelRendersErrorState(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestMux(NewLiveStats(nil)).ServeHTTP(rr, userRequest(routepath.AppDashboardStats))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, `data-status="error"`) || !strings.Contains(body, `role="alert"`) {
		t.Fatalf("stats body = %s", body)
	}
}

func TestSupersededStatsLoadAnswersNoContent(t *testing.T) {
	t.Parallel()

	provider := newBlockingProvider(Stats{Cards: []StatCard{{Key: "web.dashboard.stat.news", Value: 1}}})
	mux := newTestMux(provider)
	path := statsURL(uuid.NewString())

	stale := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, userRequest(path))
		stale <- rr
	}()
	<-provider.started

	fresh := httptest.NewRecorder()
	mux.ServeHTTP(fresh, userRequest(path))
	if fresh.Code != http.StatusOK {
		t.Fatalf("fresh status = %d, want 200", fresh.Code)
	}
	if rr := <-stale; rr.Code != http.StatusNoContent {
		t.Fatalf("stale status = %d, want 204", rr.Code)
	}
}

func TestStatsPanelsInTwoTabsBothLoad(t *testing.T) {
	t.Parallel()

	provider := newBlockingProvider(Stats{Cards: []StatCard{{Key: "web.dashboard.stat.news", Value: 3}}})
	mux := newTestMux(provider)

	tabA := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, userRequest(statsURL(uuid.NewString())))
		tabA <- rr
	}()
	<-provider.started

	tabB := httptest.NewRecorder()
	mux.ServeHTTP(tabB, userRequest(statsURL(uuid.NewString())))
	if tabB.Code != http.StatusOK || !strings.Contains(tabB.Body.String(), `data-status="success"`) {
		t.Fatalf("tab B status = %d body = %s", tabB.Code, tabB.Body.String())
	}

	close(provider.release)
	rr := <-tabA
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `data-status="success"`) {
		t.Fatalf("tab A status = %d body = %s", rr.Code, rr.Body.String())
	}
}

func TestStatsPanelKeepsItsIDForRetry(t *testing.T) {
	t.Parallel()

	panel := uuid.NewString()
	rr := httptest.NewRecorder()
	newTestMux(NewLiveStats(nil)).ServeHTTP(rr, userRequest(statsURL(panel)))
	if body := rr.Body.String(); !strings.Contains(body, "panel="+panel) {
		t.Fatalf("retry button lost panel id: %s", body)
	}
}

func TestModuleMount(t *testing.T) {
	t.Parallel()

	m := New(nil, modulehandler.NewTestBase())
	if m.ID() != "dashboard" || m.Healthy() {
		t.Fatalf("id = %q healthy = %v", m.ID(), m.Healthy())
	}
	mount, err := m.Mount()
	if err != nil || mount.Prefix != routepath.DashboardPrefix {
		t.Fatalf("mount = %+v err = %v", mount, err)
	}
}
