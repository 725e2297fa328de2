package teams

import (
	"context"
	"net/http"

	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/routepath"
	webtemplates "github.com/arenahq/arena/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
	runner  *confirm.Runner
}

func newHandlers(s service, runner *confirm.Runner, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s, runner: runner}
}

func (h handlers) handleTeam(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	team, err := h.service.team(r.Context(), r.PathValue("teamID"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, team.Name, http.StatusOK, teamView(team, loc))
}

func (h handlers) handleRoster(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	team, err := h.service.team(r.Context(), r.PathValue("teamID"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.teams.roster_title", team.Name), http.StatusOK, rosterView(team, loc))
}

func (h handlers) handleKickDialog(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeDialog(w, r, h, h.kickAction(w, r))
}

func (h handlers) handleKick(w http.ResponseWriter, r *http.Request) {
	h.runner.ServeConfirm(w, r, h, h.kickAction(w, r))
}

func (h handlers) kickAction(w http.ResponseWriter, r *http.Request) confirm.Action {
	loc, _ := h.PageLocalizer(w, r)
	teamID := r.PathValue("teamID")
	memberID := r.PathValue("memberID")
	roster := routepath.AppTeam(teamID)
	dialog := confirm.NewDialog(loc,
		webtemplates.T(loc, "web.teams.kick_title"),
		webtemplates.T(loc, "web.teams.kick_body"),
		routepath.AppTeamKick(teamID, memberID),
		roster,
	)
	dialog.ConfirmLabel = webtemplates.T(loc, "web.teams.kick")
	return confirm.Action{
		Key:    "team:kick:" + teamID + ":" + memberID,
		Dialog: dialog,
		Run: func(ctx context.Context) (string, error) {
			return h.service.kick(ctx, teamID, memberID)
		},
		SuccessKey: "web.teams.notice_kicked",
		Redirect:   roster,
	}
}
