// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/arenahq/arena/internal/services/web/module"
	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	webi18n "github.com/arenahq/arena/internal/services/web/platform/i18n"
	"github.com/arenahq/arena/internal/services/web/platform/pagerender"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusForbidden ||
		statusCode == http.StatusNotFound ||
		statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message: backend-provided text
// first, then the localized key, then the generic status text.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if message := apperrors.Message(err); message != "" {
		return message
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
		if localized := strings.TrimSpace(loc.Sprintf(kindKey(apperrors.KindOf(err)))); localized != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// kindKey returns the generic localized message key for an error kind.
func kindKey(kind apperrors.Kind) string {
	if kind == "" {
		kind = apperrors.KindUnknown
	}
	return "error.kind." + string(kind)
}

// WriteAppError writes a localized app error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	writeAppError(w, r, statusCode, "", resolver)
}

func writeAppError(w http.ResponseWriter, r *http.Request, statusCode int, detail string, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	var resolveLanguage webi18n.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(nil, r, resolveLanguage)
	err := pagerender.WriteModulePage(w, r, resolver, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, detail, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response. Page-level
// statuses render the app error page; other statuses write the public message
// as text so HTMX callers can surface it inline.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		detail := ""
		if statusCode == http.StatusForbidden {
			detail = apperrors.Message(err)
		}
		writeAppError(w, r, statusCode, detail, resolver)
		return
	}
	var resolveLanguage webi18n.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(nil, r, resolveLanguage)
	if httpx.IsHTMXRequest(r) {
		httpx.Retarget(w, "#toast", "outerHTML")
		_ = pagerender.WriteFragment(w, r, statusCode, webtemplates.ToastView(&webtemplates.Toast{
			Kind:    "error",
			Message: PublicMessage(loc, err),
		}))
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// ViewerOnly adapts a viewer resolver into a RequestResolver.
type ViewerOnly module.ResolveViewer

// ResolveRequestViewer implements RequestResolver.
func (v ViewerOnly) ResolveRequestViewer(r *http.Request) module.Viewer {
	if v == nil {
		return module.Viewer{}
	}
	return v(r)
}

// ResolveRequestLanguage implements RequestResolver.
func (ViewerOnly) ResolveRequestLanguage(*http.Request) string { return "" }
