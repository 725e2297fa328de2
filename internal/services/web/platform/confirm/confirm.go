package confirm

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	webi18n "github.com/arenahq/arena/internal/services/web/platform/i18n"
	"github.com/arenahq/arena/internal/services/web/platform/weberror"
)

// Responder is the module handler surface confirm flows render through.
type Responder interface {
	PageLocalizer(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string)
	WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component)
	WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component)
	FlashAndRedirect(w http.ResponseWriter, r *http.Request, notice flash.Notice, location string)
}

// Action describes one confirmable mutation.
type Action struct {
	// Key identifies the target, e.g. "coupon:delete:42".
	Key    string
	Dialog Dialog
	// Run performs the mutation and returns the backend's message, if any.
	Run func(context.Context) (string, error)
	// SuccessKey is the flash key used when the backend sends no message.
	SuccessKey string
	Redirect   string
}

// ServeDialog renders the confirm dialog. HTMX requests receive the bare
// dialog for the modal slot; full page loads get it inside the layout.
func (r *Runner) ServeDialog(w http.ResponseWriter, req *http.Request, resp Responder, action Action) {
	dialog := action.Dialog
	dialog.Busy = r.Busy(action.Key)
	if httpx.IsHTMXRequest(req) {
		resp.WriteFragment(w, req, http.StatusOK, View(dialog))
		return
	}
	resp.WritePage(w, req, dialog.Title, http.StatusOK, View(dialog))
}

// ServeConfirm runs the action. On success it flashes the backend message
// and redirects; on failure it re-renders the dialog with the error and
// re-enabled buttons, using the status mapped from the error.
func (r *Runner) ServeConfirm(w http.ResponseWriter, req *http.Request, resp Responder, action Action) {
	message, _, err := r.Run(req.Context(), action.Key, action.Run)
	if err == nil {
		resp.FlashAndRedirect(w, req, flash.NoticeSuccess(action.SuccessKey).WithMessage(message), action.Redirect)
		return
	}

	loc, _ := resp.PageLocalizer(w, req)
	dialog := action.Dialog
	dialog.Busy = false
	dialog.Error = weberror.PublicMessage(loc, err)
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if httpx.IsHTMXRequest(req) {
		id := dialog.ID
		if id == "" {
			id = DefaultDialogID
		}
		httpx.Retarget(w, "#"+id, "outerHTML")
		resp.WriteFragment(w, req, statusCode, View(dialog))
		return
	}
	resp.WritePage(w, req, dialog.Title, statusCode, View(dialog))
}
