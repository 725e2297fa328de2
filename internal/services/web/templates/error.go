package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey    = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey   = "web.error.page_title_server_error"
	appErrorPageTitleUnavailableKey = "web.error.page_title_unavailable"
	appErrorPageTitleForbiddenKey   = "web.error.page_title_forbidden"
	appErrorMessageNotFoundKey      = "web.error.message_not_found"
	appErrorMessageServerErrKey     = "web.error.message_server_error"
	appErrorMessageUnavailableKey   = "web.error.message_unavailable"
	appErrorMessageForbiddenKey     = "web.error.message_forbidden"
	appErrorBackToHomeTextKey       = "web.error.action_back_home"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, appErrorPageTitleNotFoundKey)
	case http.StatusForbidden:
		return T(loc, appErrorPageTitleForbiddenKey)
	case http.StatusServiceUnavailable:
		return T(loc, appErrorPageTitleUnavailableKey)
	default:
		return T(loc, appErrorPageTitleServerErrKey)
	}
}

// AppErrorState renders the error page body for statusCode. detail, when
// set, replaces the generic message.
func AppErrorState(statusCode int, detail string, loc Localizer) templ.Component {
	message := detail
	if message == "" {
		message = appErrorMessage(statusCode, loc)
	}
	return El("section", As("class", "app-error", "data-status", http.StatusText(normalizeAppErrorStatus(statusCode))),
		El("h1", nil, Text(AppErrorPageTitle(statusCode, loc))),
		El("p", nil, Text(message)),
		El("a", As("href", routepath.Root, "class", "button"), Text(T(loc, appErrorBackToHomeTextKey))),
	)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, appErrorMessageNotFoundKey)
	case http.StatusForbidden:
		return T(loc, appErrorMessageForbiddenKey)
	case http.StatusServiceUnavailable:
		return T(loc, appErrorMessageUnavailableKey)
	default:
		return T(loc, appErrorMessageServerErrKey)
	}
}

func normalizeAppErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusForbidden:
		return statusCode
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
