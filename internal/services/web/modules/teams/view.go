package teams

import (
	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

func heading(team Team) templ.Component {
	title := team.Name
	if team.Tag != "" {
		title = "[" + team.Tag + "] " + team.Name
	}
	return webtemplates.El("h1", nil, webtemplates.Text(title))
}

func teamView(team Team, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "team"),
		heading(team),
		webtemplates.When(team.Game != "", webtemplates.El("p", webtemplates.As("class", "team-game"), webtemplates.Text(team.Game))),
		webtemplates.El("h2", nil, webtemplates.Text(webtemplates.T(loc, "web.teams.members", len(team.Members)))),
		webtemplates.When(len(team.Members) == 0, webtemplates.EmptyMessage(webtemplates.T(loc, "web.teams.no_members"))),
		webtemplates.When(len(team.Members) > 0, webtemplates.El("ul", webtemplates.As("class", "roster"),
			webtemplates.Each(team.Members, func(m Member) templ.Component {
				return webtemplates.El("li", nil,
					webtemplates.Text(m.Username),
					webtemplates.When(team.IsOwner(m.ID), webtemplates.El("span", webtemplates.As("class", "badge"), webtemplates.Text(webtemplates.T(loc, "web.teams.owner")))),
					webtemplates.When(m.Role != "" && !team.IsOwner(m.ID), webtemplates.El("span", webtemplates.As("class", "role"), webtemplates.Text(m.Role))),
				)
			}),
		)),
	)
}

// rosterView lists members with a kick action for everyone but the owner.
func rosterView(team Team, loc webtemplates.Localizer) templ.Component {
	return webtemplates.El("section", webtemplates.As("class", "team-roster"),
		heading(team),
		webtemplates.El("a", webtemplates.As("href", routepath.Team(team.ID)), webtemplates.Text(webtemplates.T(loc, "web.teams.public_page"))),
		webtemplates.When(len(team.Members) == 0, webtemplates.EmptyMessage(webtemplates.T(loc, "web.teams.no_members"))),
		webtemplates.When(len(team.Members) > 0, webtemplates.El("table", webtemplates.As("class", "data-table"),
			webtemplates.El("thead", nil, webtemplates.El("tr", nil,
				webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, "web.teams.col_member"))),
				webtemplates.El("th", nil, webtemplates.Text(webtemplates.T(loc, "web.teams.col_role"))),
				webtemplates.El("th", nil),
			)),
			webtemplates.El("tbody", nil, webtemplates.Each(team.Members, func(m Member) templ.Component {
				role := m.Role
				if team.IsOwner(m.ID) {
					role = webtemplates.T(loc, "web.teams.owner")
				}
				return webtemplates.El("tr", nil,
					webtemplates.El("td", nil, webtemplates.Text(m.Username)),
					webtemplates.El("td", nil, webtemplates.Text(role)),
					webtemplates.El("td", nil, webtemplates.When(!team.IsOwner(m.ID),
						webtemplates.ModalTrigger(routepath.AppTeamKick(team.ID, m.ID), webtemplates.T(loc, "web.teams.kick")),
					)),
				)
			})),
		)),
	)
}
