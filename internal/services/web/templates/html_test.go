package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestElEscapesTextAndAttributes(t *testing.T) {
	t.Parallel()

	got := render(t, El("a", As("href", `/x?a=1&b="2"`), Text("<b>hi</b>")))
	want := `<a href="/x?a=1&amp;b=&#34;2&#34;">&lt;b&gt;hi&lt;/b&gt;</a>`
	if got != want {
		t.Fatalf("El() = %q, want %q", got, want)
	}
}

func TestElSanitizesURLAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		el   templ.Component
		want string
	}{
		{
			name: "javascript src",
			el:   El("img", As("src", "javascript:alert(1)", "alt", "javascript:ok")),
			want: `<img src="about:invalid#TemplFailedSanitizationURL" alt="javascript:ok">`,
		},
		{
			name: "data href",
			el:   El("a", As("HREF", " data:text/html,x")),
			want: `<a HREF="about:invalid#TemplFailedSanitizationURL"></a>`,
		},
		{
			name: "https src kept",
			el:   El("img", As("src", "https://cdn.example.com/a.png")),
			want: `<img src="https://cdn.example.com/a.png">`,
		},
		{
			name: "relative action kept",
			el:   El("form", As("action", "/shop/cart/add")),
			want: `<form action="/shop/cart/add"></form>`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := render(t, tc.el); got != tc.want {
				t.Fatalf("El() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestElVoidAndBooleanAttributes(t *testing.T) {
	t.Parallel()

	got := render(t, El("input", append(As("name", "qty"), Flag("required")), Text("ignored")))
	if got != `<input name="qty" required>` {
		t.Fatalf("El(input) = %q", got)
	}
}

func TestWhenAndEach(t *testing.T) {
	t.Parallel()

	got := render(t, Group(
		When(false, Text("hidden")),
		Each([]string{"a", "b"}, func(s string) templ.Component { return El("li", nil, Text(s)) }),
		When(true, Text("!")),
	))
	if got != "<li>a</li><li>b</li>!" {
		t.Fatalf("Group() = %q", got)
	}
}
