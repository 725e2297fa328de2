package public

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
	"github.com/arenahq/arena/internal/services/web/platform/sessioncookie"
	"github.com/arenahq/arena/internal/services/web/routepath"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
)

func newTestMux(gw Gateway, signer Signer) *http.ServeMux {
	mux := http.NewServeMux()
	base := modulehandler.NewBase(session.ResolveViewer, nil, flash.Writer{})
	registerRoutes(mux, newHandlers(newService(gw), signer, base, requestmeta.SchemePolicy{}))
	return mux
}

func serve(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHomeShowsThreeNewestHeadlines(t *testing.T) {
	t.Parallel()

	rr := serve(newTestMux(&fakeGateway{headlines: testHeadlines()}, &fakeSigner{}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	newest := strings.Index(body, "Newest Story")
	second := strings.Index(body, "Second Story")
	middle := strings.Index(body, "Middle Story")
	if newest < 0 || second < 0 || middle < 0 || !(newest < second && second < middle) {
		t.Fatalf("headline order wrong: %d %d %d", newest, second, middle)
	}
	if strings.Contains(body, "Oldest Story") {
		t.Fatal("home shows more than three headlines")
	}
}

func TestHomeRendersWhenNewsUnavailable(t *testing.T) {
	t.Parallel()

	rr := serve(newTestMux(nil, &fakeSigner{}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rr := serve(newTestMux(nil, &fakeSigner{}), httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
}

func TestLoginPageCarriesNext(t *testing.T) {
	t.Parallel()

	rr := serve(newTestMux(&fakeGateway{}, &fakeSigner{}), httptest.NewRequest(http.MethodGet, "/login?next=%2Fshop%2Fcheckout", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `name="next" value="/shop/checkout"`) {
		t.Fatalf("login form missing next field")
	}
}

func TestLoginPageRedirectsSignedInViewer(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = req.WithContext(session.WithSession(req.Context(), storage.Session{ID: "s", UserID: "u", AccessToken: "t", Role: session.RoleAdmin}))
	rr := serve(newTestMux(&fakeGateway{}, &fakeSigner{}), req)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != routepath.AppDashboard {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestLoginSubmitValidatesBeforeBackend(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	rr := serve(newTestMux(gw, &fakeSigner{}), postForm(routepath.Login, url.Values{"email": {"not-an-email"}}))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	if gw.loginCalls != 0 {
		t.Fatalf("login calls = %d, want 0", gw.loginCalls)
	}
	if !strings.Contains(rr.Body.String(), `aria-invalid="true"`) {
		t.Fatal("field errors not rendered inline")
	}
}

func TestLoginSubmitShowsBackendMessage(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{loginErr: &backend.Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"}}
	signer := &fakeSigner{}
	rr := serve(newTestMux(gw, signer), postForm(routepath.Login, url.Values{"email": {"ana@example.com"}, "password": {"wrong"}}))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid credentials") {
		t.Fatal("backend message not shown")
	}
	if len(signer.signedIn) != 0 {
		t.Fatal("failed login started a session")
	}
}

func TestLoginSubmitSignsInAndRedirects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role string
		next string
		want string
	}{
		{name: "next wins", role: session.RoleAdmin, next: "/shop/checkout", want: "/shop/checkout"},
		{name: "admin default", role: session.RoleAdmin, want: routepath.AppDashboard},
		{name: "member default", role: "member", want: routepath.Root},
		{name: "external next ignored", role: "member", next: "https://evil.example/", want: routepath.Root},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gw := &fakeGateway{identity: session.Identity{UserID: "7", Username: "ana", Role: tc.role, Token: "tok"}}
			signer := &fakeSigner{}
			form := url.Values{"email": {"ana@example.com"}, "password": {"secret"}, "next": {tc.next}}
			rr := serve(newTestMux(gw, signer), postForm(routepath.Login, form))
			if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != tc.want {
				t.Fatalf("status = %d location = %q, want %q", rr.Code, rr.Header().Get("Location"), tc.want)
			}
			if len(signer.signedIn) != 1 || signer.signedIn[0].Token != "tok" {
				t.Fatalf("signed in = %+v", signer.signedIn)
			}
		})
	}
}

func TestLogoutRequiresSameOrigin(t *testing.T) {
	t.Parallel()

	signer := &fakeSigner{}
	mux := newTestMux(&fakeGateway{}, signer)

	cross := httptest.NewRequest(http.MethodPost, "http://example.com/logout", nil)
	cross.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "sess-1"})
	cross.Header.Set("Origin", "https://evil.example")
	if rr := serve(mux, cross); rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin status = %d, want 403", rr.Code)
	}
	if signer.signOuts != 0 {
		t.Fatal("cross-origin logout signed out")
	}

	same := httptest.NewRequest(http.MethodPost, "http://example.com/logout", nil)
	same.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "sess-1"})
	same.Header.Set("Origin", "http://example.com")
	rr := serve(mux, same)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != routepath.Root {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
	if signer.signOuts != 1 {
		t.Fatalf("sign outs = %d, want 1", signer.signOuts)
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&fakeGateway{headlines: testHeadlines()}, &fakeSigner{})
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/login", http.StatusOK},
		{http.MethodGet, "/up", http.StatusOK},
		{http.MethodGet, "/logout", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := serve(mux, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Errorf("%s %s = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestMountRequiresSigner(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, nil, modulehandler.NewTestBase(), requestmeta.SchemePolicy{}).Mount(); err == nil {
		t.Fatal("expected error without signer")
	}
	mount, err := New(&fakeGateway{}, &fakeSigner{}, modulehandler.NewTestBase(), requestmeta.SchemePolicy{}).Mount()
	if err != nil || mount.Prefix != routepath.Root {
		t.Fatalf("mount = %+v err = %v", mount, err)
	}
}
