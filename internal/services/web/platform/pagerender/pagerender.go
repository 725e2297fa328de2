// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/arenahq/arena/internal/services/web/module"
	flashnotice "github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	webi18n "github.com/arenahq/arena/internal/services/web/platform/i18n"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

// RequestResolver resolves viewer and language state from a request.
// This decouples platform rendering from module handler types.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// WriteModulePage writes a page. HTMX requests receive only the main-content
// fragment; full requests receive the layout with any pending flash toast.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = webtemplates.Empty()
	}

	var resolveLanguage webi18n.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent(fragment).Render(ctx, &buf); err != nil {
			return err
		}
		writeHTML(w, statusCode, buf.Bytes())
		return nil
	}

	viewer := module.Viewer{}
	if resolver != nil {
		viewer = resolver.ResolveRequestViewer(r)
	}
	pageCtx := webtemplates.PageContext{
		Title:  page.Title,
		Lang:   lang,
		Loc:    loc,
		Viewer: viewer,
		Toast:  resolveFlashToast(w, r, loc),
	}
	if r != nil && r.URL != nil {
		pageCtx.CurrentPath = r.URL.Path
		pageCtx.CurrentQuery = r.URL.RawQuery
	}
	if err := webtemplates.Layout(pageCtx, fragment).Render(ctx, &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

// WriteFragment writes a component without any wrapper. Used for partial
// swaps such as dialogs and lazily loaded panels.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = webtemplates.Empty()
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

func writeHTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(notice.Message)
	if message == "" && notice.Key != "" {
		message = strings.TrimSpace(loc.Sprintf(notice.Key))
	}
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
