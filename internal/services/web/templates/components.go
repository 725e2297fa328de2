package templates

import (
	"strconv"

	"github.com/a-h/templ"
)

// FormField describes one labelled form input.
type FormField struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Error    string
	Required bool
	Attrs    []Attr
}

// Field renders a labelled input with its inline error.
func Field(field FormField) templ.Component {
	inputType := field.Type
	if inputType == "" {
		inputType = "text"
	}
	id := "field-" + field.Name
	attrs := As("id", id, "name", field.Name, "type", inputType, "value", field.Value)
	if field.Required {
		attrs = append(attrs, Flag("required"))
	}
	if field.Error != "" {
		attrs = append(attrs, A("aria-invalid", "true"), A("aria-describedby", id+"-error"))
	}
	attrs = append(attrs, field.Attrs...)
	return El("div", As("class", "field"),
		El("label", As("for", id), Text(field.Label)),
		El("input", attrs),
		When(field.Error != "", El("p", As("id", id+"-error", "class", "field-error"), Text(field.Error))),
	)
}

// HiddenInput renders a hidden form value.
func HiddenInput(name, value string) templ.Component {
	return El("input", As("type", "hidden", "name", name, "value", value))
}

// EmptyMessage renders an empty list notice.
func EmptyMessage(message string) templ.Component {
	return El("p", As("class", "empty-state"), Text(message))
}

// ErrorBanner renders an inline error region.
func ErrorBanner(message string) templ.Component {
	if message == "" {
		return nil
	}
	return El("div", As("class", "error-banner", "role", "alert"), Text(message))
}

// PageLink is one entry in a pagination bar. Page zero marks a gap. Rel
// marks the previous/next arrows, which show Label instead of the number.
type PageLink struct {
	Page    int
	URL     string
	Current bool
	Rel     string
	Label   string
}

// Pagination renders a pagination bar. It renders nothing for a single page.
func Pagination(links []PageLink, loc Localizer) templ.Component {
	if len(links) <= 1 {
		return nil
	}
	return El("nav", As("class", "pagination", "aria-label", T(loc, "web.list.pagination")),
		Each(links, func(link PageLink) templ.Component {
			if link.Page == 0 {
				return El("span", As("class", "ellipsis"), Text("…"))
			}
			label := strconv.Itoa(link.Page)
			if link.Current {
				return El("span", As("class", "current", "aria-current", "page"), Text(label))
			}
			attrs := As("href", link.URL, "hx-get", link.URL, "hx-target", "#"+MainID, "hx-push-url", "true")
			if link.Rel != "" {
				attrs = append(attrs, As("rel", link.Rel, "class", "page-"+link.Rel)...)
				label = link.Label
			}
			return El("a", attrs, Text(label))
		}),
	)
}

// ButtonLink renders a link styled as a button.
func ButtonLink(href, label string) templ.Component {
	return El("a", As("class", "button", "href", href), Text(label))
}

// ModalTrigger renders a link that loads a confirm dialog into the modal host.
// Without HTMX the link opens the dialog as a full page.
func ModalTrigger(href, label string) templ.Component {
	return El("a", As(
		"class", "button danger",
		"href", href,
		"hx-get", href,
		"hx-target", "#"+ModalID,
		"hx-swap", "innerHTML",
	), Text(label))
}
