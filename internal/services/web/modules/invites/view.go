package invites

import (
	"github.com/a-h/templ"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

func inviteView(inviteID string, signedIn bool, loc webtemplates.Localizer) templ.Component {
	var actions templ.Component
	if signedIn {
		actions = webtemplates.El("div", webtemplates.As("class", "invite-actions"),
			responseForm(routepath.InviteAccept(inviteID), "button primary", webtemplates.T(loc, "web.invites.accept")),
			responseForm(routepath.InviteDecline(inviteID), "button", webtemplates.T(loc, "web.invites.decline")),
		)
	} else {
		actions = webtemplates.El("p", nil,
			webtemplates.El("a", webtemplates.As("href", routepath.LoginWithNext(routepath.Invite(inviteID))), webtemplates.Text(webtemplates.T(loc, "web.invites.sign_in"))),
		)
	}
	return webtemplates.El("section", webtemplates.As("class", "invite"),
		webtemplates.El("h1", nil, webtemplates.Text(webtemplates.T(loc, "web.invites.title"))),
		webtemplates.El("p", nil, webtemplates.Text(webtemplates.T(loc, "web.invites.body"))),
		actions,
	)
}

func responseForm(action, class, label string) templ.Component {
	return webtemplates.El("form", webtemplates.As("method", "post", "action", action, "hx-post", action, "hx-disabled-elt", ".invite-actions button"),
		webtemplates.El("button", webtemplates.As("type", "submit", "class", class), webtemplates.Text(label)),
	)
}
