package dashboard

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/platform/fetcher"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

const (
	statsPanelID = "dashboard-stats"
	panelParam   = "panel"
)

func dashboardView(name, panel string, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "dashboard"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.dashboard.title"))),
		webtemplates.When(name != "", webtemplates.El("p", nil, webtemplates.Text(webtemplates.T(loc, "web.dashboard.welcome", name)))),
		statsPanel(fetcher.Resource[Stats]{Status: fetcher.StatusPending}, panel, "", loc),
		webtemplates.El("nav", webtemplates.As("class", "dashboard-links"),
			webtemplates.ButtonLink(routepath.AppNews, webtemplates.T(loc, "core.nav.admin_news")),
			webtemplates.ButtonLink(routepath.AppEvents, webtemplates.T(loc, "core.nav.events")),
			webtemplates.ButtonLink(routepath.AppCoupons, webtemplates.T(loc, "core.nav.coupons")),
		),
	)
}

// statsPanel renders the panel in its pending, success or error state. The
// pending panel loads itself once it is on the page; the retry button reloads
// the same panel.
func statsPanel(resource fetcher.Resource[Stats], panel, errMessage string, loc webtemplates.Localizer) templ.Component {
	switch resource.Status {
	case fetcher.StatusSuccess:
		return webtemplates.El("section", webtemplates.As("id", statsPanelID, "class", "stats-panel", "data-status", string(resource.Status)),
			webtemplates.El("ul", webtemplates.As("class", "stat-cards"),
				webtemplates.Each(resource.Data.Cards, func(card StatCard) templ.Component {
					return statCard(card, loc)
				}),
			),
		)
	case fetcher.StatusError:
		return webtemplates.El("section", webtemplates.As("id", statsPanelID, "class", "stats-panel", "data-status", string(resource.Status)),
			webtemplates.El("p", webtemplates.As("class", "toast error", "role", "alert"), webtemplates.Text(errMessage)),
			webtemplates.El("button", webtemplates.As(
				"type", "button",
				"class", "button",
				"hx-get", statsURL(panel),
				"hx-target", "#"+statsPanelID,
				"hx-swap", "outerHTML",
			), webtemplates.Text(webtemplates.T(loc, "web.dashboard.retry"))),
		)
	default:
		return webtemplates.El("section", webtemplates.As(
			"id", statsPanelID,
			"class", "stats-panel",
			"data-status", string(fetcher.StatusPending),
			"aria-busy", "true",
			"hx-get", statsURL(panel),
			"hx-trigger", "load",
			"hx-swap", "outerHTML",
		), webtemplates.El("p", nil, webtemplates.Text(webtemplates.T(loc, "web.dashboard.loading"))))
	}
}

func statCard(card StatCard, loc webtemplates.Localizer) templ.Component {
	class := "stat-card"
	if card.Sample {
		class += " sample"
	}
	return webtemplates.El("li", webtemplates.As("class", class),
		webtemplates.El("span", webtemplates.As("class", "stat-value"), webtemplates.Text(strconv.Itoa(card.Value))),
		webtemplates.El("span", webtemplates.As("class", "stat-label"), webtemplates.Text(webtemplates.T(loc, card.Key))),
		webtemplates.When(card.Sample, webtemplates.El("small", webtemplates.As("class", "stat-sample"), webtemplates.Text(webtemplates.T(loc, "web.dashboard.sample")))),
	)
}
