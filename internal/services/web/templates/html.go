package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute. Boolean attributes render without a value.
type Attr struct {
	Name    string
	Value   string
	Boolean bool
}

// A builds a valued attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Flag builds a boolean attribute such as disabled or required.
func Flag(name string) Attr {
	return Attr{Name: name, Boolean: true}
}

// As builds valued attributes from name/value pairs.
func As(pairs ...string) []Attr {
	attrs := make([]Attr, 0, len(pairs)/2)
	for idx := 0; idx+1 < len(pairs); idx += 2 {
		attrs = append(attrs, A(pairs[idx], pairs[idx+1]))
	}
	return attrs
}

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true,
}

// urlAttributes are sanitized with templ.URL before escaping, so a
// backend-supplied javascript: or data: URL renders as
// templ.FailedSanitizationURL.
var urlAttributes = map[string]bool{
	"href": true, "src": true, "action": true, "formaction": true,
	"poster": true, "cite": true, "hx-get": true, "hx-post": true,
}

// El renders one element with escaped attributes and the given children.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var open strings.Builder
		open.WriteString("<")
		open.WriteString(tag)
		for _, attr := range attrs {
			if attr.Name == "" {
				continue
			}
			open.WriteString(" ")
			open.WriteString(attr.Name)
			if attr.Boolean {
				continue
			}
			value := attr.Value
			if urlAttributes[strings.ToLower(attr.Name)] {
				value = string(templ.URL(value))
			}
			open.WriteString(`="`)
			open.WriteString(templ.EscapeString(value))
			open.WriteString(`"`)
		}
		open.WriteString(">")
		if _, err := io.WriteString(w, open.String()); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders escaped text.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

// Group renders children in order.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// When renders c only when cond holds.
func When(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}

// Each renders fn for every item.
func Each[T any](items []T, fn func(T) templ.Component) templ.Component {
	children := make([]templ.Component, 0, len(items))
	for _, item := range items {
		children = append(children, fn(item))
	}
	return Group(children...)
}

// Empty renders nothing.
func Empty() templ.Component {
	return Group()
}
