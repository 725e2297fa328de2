package adminnews

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

func newTestMux(gw NewsGateway) *http.ServeMux {
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

func TestListPaginatesNewestFirst(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&fakeGateway{items: manyItems(25)})
	first := serve(mux, httptest.NewRequest(http.MethodGet, routepath.AppNews, nil)).Body.String()
	if !strings.Contains(first, "Article 25") || strings.Contains(first, "Article 15") {
		t.Fatalf("first page did not start with the newest articles")
	}
	third := serve(mux, httptest.NewRequest(http.MethodGet, routepath.AppNews+"?page=3", nil)).Body.String()
	if !strings.Contains(third, "Article 01") || strings.Contains(third, "Article 11") {
		t.Fatalf("third page wrong")
	}
}

func TestListFilterFormNeverCarriesPage(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&fakeGateway{items: manyItems(25)})
	body := serve(mux, httptest.NewRequest(http.MethodGet, routepath.AppNews+"?page=3&category=Community", nil)).Body.String()
	form := body[strings.Index(body, `class="list-filters"`):]
	form = form[:strings.Index(form, "</form>")]
	if strings.Contains(form, `name="page"`) {
		t.Fatalf("filter form carries the page parameter: %s", form)
	}
}

func TestListFilteredToNothingShowsNoMatch(t *testing.T) {
	t.Parallel()

	rr := serve(newTestMux(&fakeGateway{items: manyItems(3)}), httptest.NewRequest(http.MethodGet, routepath.AppNews+"?q=zzz", nil))
	if rr.Code != http.StatusOK || strings.Contains(rr.Body.String(), "<table") {
		t.Fatalf("status = %d, body has table", rr.Code)
	}
}

func TestDeleteDialogRendersOnlyOnRequest(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&fakeGateway{items: manyItems(2)})
	list := serve(mux, httptest.NewRequest(http.MethodGet, routepath.AppNews, nil)).Body.String()
	if strings.Contains(list, "<dialog") {
		t.Fatal("list page opened a dialog on its own")
	}
	rr := serve(mux, htmx(httptest.NewRequest(http.MethodGet, routepath.AppNewsDelete("2"), nil)))
	body := rr.Body.String()
	if rr.Code != http.StatusOK || !strings.HasPrefix(body, "<dialog") || !strings.Contains(body, `action="/app/news/2/delete"`) {
		t.Fatalf("dialog = %d %s", rr.Code, body)
	}
}

func TestDeleteSuccessFlashesAndRedirects(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{items: manyItems(2), deleteMsg: "News deleted"}
	rr := serve(newTestMux(gw), htmx(httptest.NewRequest(http.MethodPost, routepath.AppNewsDelete("2"), nil)))
	if rr.Header().Get("HX-Redirect") != routepath.AppNews {
		t.Fatalf("HX-Redirect = %q", rr.Header().Get("HX-Redirect"))
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "2" {
		t.Fatalf("deleted = %v", gw.deleted)
	}
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		next.AddCookie(cookie)
	}
	if notice, ok := flash.ReadAndClear(httptest.NewRecorder(), next); !ok || notice.Message != "News deleted" {
		t.Fatalf("notice = %+v ok = %v", notice, ok)
	}
}

func TestDeleteFailureKeepsDialogOpen(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{deleteErr: &backend.Error{Status: http.StatusForbidden, Message: "Admins only"}}
	rr := serve(newTestMux(gw), htmx(httptest.NewRequest(http.MethodPost, routepath.AppNewsDelete("2"), nil)))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
	if rr.Header().Get("HX-Retarget") != "#"+confirm.DefaultDialogID || !strings.Contains(rr.Body.String(), "Admins only") {
		t.Fatalf("failure did not re-render the dialog")
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&fakeGateway{items: manyItems(1)})
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, routepath.AppNews, http.StatusOK},
		{http.MethodGet, routepath.AdminNewsPrefix, http.StatusOK},
		{http.MethodGet, routepath.AppNewsDelete("1"), http.StatusOK},
		{http.MethodGet, routepath.AdminNewsPrefix + "1/other", http.StatusNotFound},
		{http.MethodPost, routepath.AppNews, http.StatusMethodNotAllowed},
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
	if err != nil || mount.Prefix != routepath.AdminNewsPrefix {
		t.Fatalf("mount = %+v err = %v", mount, err)
	}
}
