package teams

import (
	"net/http"

	"github.com/arenahq/arena/internal/services/web/routepath"
)

func registerPublicRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.TeamPattern, h.handleTeam)
	mux.HandleFunc(http.MethodGet+" "+routepath.TeamsPrefix+"{rest...}", h.WriteNotFound)
}

func registerRosterRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppTeamPattern, h.handleRoster)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppTeamKickPattern, h.handleKickDialog)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppTeamKickPattern, h.handleKick)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppTeamsPrefix+"{rest...}", h.WriteNotFound)
}
