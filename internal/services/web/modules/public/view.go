package public

import (
	"github.com/a-h/templ"
	module "github.com/arenahq/arena/internal/services/web/module"
	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

type homePage struct {
	Headlines   []Headline
	Unavailable bool
	Viewer      module.Viewer
}

type loginPage struct {
	Email       string
	Next        string
	Error       string
	FieldErrors formvalidate.FieldErrors
}

func homeView(page homePage, loc webtemplates.Localizer) templ.Component {
	var news templ.Component
	switch {
	case page.Unavailable:
		news = webtemplates.EmptyMessage(webtemplates.T(loc, "web.home.news_unavailable"))
	case len(page.Headlines) == 0:
		news = webtemplates.EmptyMessage(webtemplates.T(loc, "web.news.empty"))
	default:
		news = webtemplates.El("ul", webtemplates.As("class", "headlines"),
			webtemplates.Each(page.Headlines, func(headline Headline) templ.Component {
				key := headline.Slug
				if key == "" {
					key = headline.ID
				}
				return webtemplates.El("li", nil,
					webtemplates.El("a", webtemplates.As("href", routepath.News(key)), webtemplates.Text(headline.Title)),
					webtemplates.When(headline.Summary != "", webtemplates.El("p", nil, webtemplates.Text(headline.Summary))),
				)
			}),
		)
	}
	return webtemplates.El("section", webtemplates.As("class", "home"),
		webtemplates.El("header", webtemplates.As("class", "hero"),
			webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.home.heading"))),
			webtemplates.El("p", nil, webtemplates.Text(webtemplates.T(loc, "web.home.tagline"))),
			webtemplates.Group(
				webtemplates.ButtonLink(routepath.ShopPrefix, webtemplates.T(loc, "web.home.shop_cta")),
				webtemplates.When(!page.Viewer.SignedIn, webtemplates.ButtonLink(routepath.Login, webtemplates.T(loc, "core.nav.login"))),
			),
		),
		webtemplates.El("section", webtemplates.As("class", "latest-news"),
			webtemplates.El("h2", nil, webtemplates.Text(webtemplates.T(loc, "web.home.latest_news"))),
			news,
			webtemplates.El("a", webtemplates.As("href", routepath.NewsPrefix), webtemplates.Text(webtemplates.T(loc, "web.home.all_news"))),
		),
	)
}

func loginView(page loginPage, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "auth"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.auth.title"))),
		webtemplates.ErrorBanner(page.Error),
		webtemplates.El("form", webtemplates.As("method", "post", "action", routepath.Login),
			webtemplates.When(page.Next != "", webtemplates.HiddenInput(routepath.NextQueryKey, page.Next)),
			webtemplates.Field(webtemplates.FormField{
				Name:     "email",
				Label:    webtemplates.T(loc, "web.auth.email"),
				Type:     "email",
				Value:    page.Email,
				Error:    page.FieldErrors.Message(loc, "email"),
				Required: true,
				Attrs:    webtemplates.As("autocomplete", "email"),
			}),
			webtemplates.Field(webtemplates.FormField{
				Name:     "password",
				Label:    webtemplates.T(loc, "web.auth.password"),
				Type:     "password",
				Error:    page.FieldErrors.Message(loc, "password"),
				Required: true,
				Attrs:    webtemplates.As("autocomplete", "current-password"),
			}),
			webtemplates.El("button", webtemplates.As("type", "submit", "class", "button primary"), webtemplates.Text(webtemplates.T(loc, "web.auth.submit"))),
		),
	)
}
