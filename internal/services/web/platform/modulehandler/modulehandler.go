// Package modulehandler provides a composable base for web module handlers.
//
// Every module shares the same handler scaffold for viewer resolution,
// localization, page rendering, flash notices and error handling. Modules
// embed Base rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	webi18n "github.com/arenahq/arena/internal/services/web/platform/i18n"
	"github.com/arenahq/arena/internal/services/web/platform/pagerender"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	resolveViewer   module.ResolveViewer
	resolveLanguage module.ResolveLanguage
	flash           flash.Writer
}

// NewBase builds a handler base from explicit resolver functions.
func NewBase(resolveViewer module.ResolveViewer, resolveLanguage module.ResolveLanguage, flashWriter flash.Writer) Base {
	return Base{
		resolveViewer:   resolveViewer,
		resolveLanguage: resolveLanguage,
		flash:           flashWriter,
	}
}

// NewTestBase builds a handler base with no-op resolvers suitable for tests
// that do not exercise viewer state.
func NewTestBase() Base {
	return Base{
		resolveViewer:   func(*http.Request) module.Viewer { return module.Viewer{} },
		resolveLanguage: func(*http.Request) string { return "" },
	}
}

// ResolveRequestViewer resolves chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil || r == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// ResolveRequestLanguage returns an explicit language preference.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil || r == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string) {
	var resolve webi18n.ResolveLanguage
	if b.resolveLanguage != nil {
		resolve = webi18n.ResolveLanguage(b.resolveLanguage)
	}
	return webi18n.ResolveLocalizer(w, r, resolve)
}

// WritePage renders a module page (HTMX-aware) with the given title and fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a partial component such as a dialog or panel.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// FlashAndRedirect stores notice and redirects (HTMX-aware) to location.
func (b Base) FlashAndRedirect(w http.ResponseWriter, r *http.Request, notice flash.Notice, location string) {
	b.flash.Write(w, r, notice)
	httpx.WriteRedirect(w, r, location)
}
