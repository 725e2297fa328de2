package templates

import (
	"github.com/a-h/templ"
	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/routepath"
)

// htmxScript is the pinned HTMX build loaded by every full page.
const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets error responses swap so re-rendered dialogs and error
// toasts reach the page. 204 stays a no-op.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"[45]..","swap":true,"error":true}]}`

// stylesheet is served by the static asset handler.
const stylesheet = "/static/app.css"

// MainID is the element HTMX fragments replace.
const MainID = "main"

// ModalID hosts confirm dialogs loaded on demand.
const ModalID = "modal"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Viewer       module.Viewer
	Toast        *Toast
}

// Toast is a one-time notice rendered at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// Layout renders a full HTML document around body.
func Layout(page PageContext, body templ.Component) templ.Component {
	appName := T(page.Loc, "core.app_name")
	title := appName
	if page.Title != "" {
		title = page.Title + " · " + appName
	}
	lang := page.Lang
	if lang == "" {
		lang = "en-US"
	}
	return Group(
		templ.Raw("<!DOCTYPE html>"),
		El("html", As("lang", lang),
			El("head", nil,
				El("meta", As("charset", "utf-8")),
				El("meta", As("name", "viewport", "content", "width=device-width, initial-scale=1")),
				El("meta", As("name", "description", "content", T(page.Loc, "core.meta_description"))),
				El("title", nil, Text(title)),
				El("meta", As("name", "htmx-config", "content", htmxConfig)),
				El("link", As("rel", "stylesheet", "href", stylesheet)),
				El("script", As("src", htmxScript, "defer", "defer")),
			),
			El("body", As("hx-boost", "true"),
				navigation(page, appName),
				ToastView(page.Toast),
				El("main", As("id", MainID), body),
				El("div", As("id", ModalID)),
				footer(page),
			),
		),
	)
}

// MainContent renders the fragment swapped into the main element by HTMX.
func MainContent(body templ.Component) templ.Component {
	return El("div", As("class", "page-fragment"), body)
}

// ToastView renders a toast, or nothing when toast is nil.
func ToastView(toast *Toast) templ.Component {
	if toast == nil || toast.Message == "" {
		return El("div", As("id", "toast"))
	}
	return El("div", As("id", "toast", "class", "toast toast-"+toast.Kind, "role", "status"), Text(toast.Message))
}

func navigation(page PageContext, appName string) templ.Component {
	link := func(path, key string) templ.Component {
		attrs := As("href", path)
		if page.CurrentPath == path {
			attrs = append(attrs, A("aria-current", "page"))
		}
		return El("li", nil, El("a", attrs, Text(T(page.Loc, key))))
	}
	viewer := page.Viewer
	return El("nav", As("class", "site-nav"),
		El("a", As("class", "brand", "href", routepath.Root), Text(appName)),
		El("ul", nil,
			link(routepath.Root, "core.nav.home"),
			link(routepath.NewsPrefix, "core.nav.news"),
			link(routepath.ShopPrefix, "core.nav.shop"),
			link(routepath.ShopCart, "core.nav.cart"),
			When(viewer.IsAdmin, Group(
				link(routepath.AppDashboard, "core.nav.dashboard"),
				link(routepath.AppNews, "core.nav.admin_news"),
				link(routepath.AppEvents, "core.nav.events"),
				link(routepath.AppCoupons, "core.nav.coupons"),
			)),
		),
		accountMenu(page),
	)
}

func accountMenu(page PageContext) templ.Component {
	if !page.Viewer.SignedIn {
		return El("a", As("class", "account", "href", routepath.LoginWithNext(page.CurrentPath)), Text(T(page.Loc, "core.nav.login")))
	}
	return El("form", As("class", "account", "method", "post", "action", routepath.Logout),
		El("span", As("class", "viewer-name"), Text(page.Viewer.DisplayName)),
		El("button", As("type", "submit"), Text(T(page.Loc, "core.nav.logout"))),
	)
}

func footer(page PageContext) templ.Component {
	return El("footer", nil,
		El("span", nil, Text(T(page.Loc, "core.language.label"))),
		Each(LanguageOptions(page), func(option LanguageOption) templ.Component {
			attrs := As("href", option.URL, "hreflang", option.Tag)
			if option.Active {
				attrs = append(attrs, A("aria-current", "true"))
			}
			return El("a", attrs, Text(option.Label))
		}),
	)
}
