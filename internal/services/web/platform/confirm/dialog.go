package confirm

import (
	"maps"
	"slices"

	"github.com/a-h/templ"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

// DefaultDialogID is the element id of the confirm dialog.
const DefaultDialogID = "confirm-dialog"

// Dialog is the confirm dialog view model.
type Dialog struct {
	ID           string
	Title        string
	Body         string
	Action       string
	ConfirmLabel string
	BusyLabel    string
	CancelLabel  string
	Cancel       string
	Error        string
	Busy         bool
	Fields       map[string]string
}

// NewDialog returns a dialog with the shared localized button copy. Callers
// override ConfirmLabel for actions that are not deletions.
func NewDialog(loc webtemplates.Localizer, title, body, action, cancel string) Dialog {
	return Dialog{
		Title:        title,
		Body:         body,
		Action:       action,
		Cancel:       cancel,
		ConfirmLabel: webtemplates.T(loc, "web.confirm.delete"),
		BusyLabel:    webtemplates.T(loc, "web.confirm.busy"),
		CancelLabel:  webtemplates.T(loc, "web.confirm.cancel"),
	}
}

// View renders the dialog. While busy the confirm button shows the busy label
// and every button is disabled; hx-disabled-elt disables them in the browser
// as soon as the POST starts.
func View(d Dialog) templ.Component {
	id := d.ID
	if id == "" {
		id = DefaultDialogID
	}
	cancelID := id + "-cancel"
	confirmID := id + "-confirm"

	confirmLabel := d.ConfirmLabel
	confirmAttrs := webtemplates.As("id", confirmID, "type", "submit", "class", "button danger")
	cancelAttrs := webtemplates.As("id", cancelID, "type", "button", "class", "button", "onclick", "this.closest('dialog').remove()")
	if d.Busy {
		if d.BusyLabel != "" {
			confirmLabel = d.BusyLabel
		}
		confirmAttrs = append(confirmAttrs, webtemplates.A("aria-busy", "true"), webtemplates.Flag("disabled"))
		cancelAttrs = append(cancelAttrs, webtemplates.Flag("disabled"))
	}

	hidden := make([]templ.Component, 0, len(d.Fields))
	for _, name := range slices.Sorted(maps.Keys(d.Fields)) {
		hidden = append(hidden, webtemplates.HiddenInput(name, d.Fields[name]))
	}

	cancel := webtemplates.El("button", cancelAttrs, webtemplates.Text(d.CancelLabel))
	if d.Cancel != "" {
		cancel = webtemplates.El("a", webtemplates.As("id", cancelID, "class", "button", "href", d.Cancel, "hx-get", d.Cancel, "hx-target", "#"+id, "hx-swap", "delete"), webtemplates.Text(d.CancelLabel))
	}

	return webtemplates.El("dialog", webtemplates.As(
		"id", id,
		"class", "confirm-dialog",
		"open", "open",
		"aria-modal", "true",
		"aria-labelledby", id+"-title",
	),
		webtemplates.El("form", webtemplates.As(
			"method", "post",
			"action", d.Action,
			"hx-post", d.Action,
			"hx-target", "#"+id,
			"hx-swap", "outerHTML",
			"hx-disabled-elt", "#"+cancelID+", #"+confirmID,
		),
			webtemplates.El("h2", webtemplates.As("id", id+"-title"), webtemplates.Text(d.Title)),
			webtemplates.El("p", nil, webtemplates.Text(d.Body)),
			webtemplates.When(d.Error != "", webtemplates.El("p", webtemplates.As("class", "dialog-error", "role", "alert"), webtemplates.Text(d.Error))),
			webtemplates.Group(hidden...),
			webtemplates.El("div", webtemplates.As("class", "dialog-actions"),
				cancel,
				webtemplates.El("button", confirmAttrs, webtemplates.Text(confirmLabel)),
			),
		),
	)
}
