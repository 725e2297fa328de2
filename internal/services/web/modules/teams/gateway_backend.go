package teams

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

type backendGateway struct {
	client *backend.Client
}

// NewBackendGateway returns a TeamsGateway backed by the REST client. A nil
// client yields the degraded gateway.
func NewBackendGateway(client *backend.Client) TeamsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

func (g backendGateway) GetTeam(ctx context.Context, teamID string) (Team, error) {
	t, err := g.client.GetTeam(ctx, teamID)
	if backend.IsNotFound(err) {
		return Team{}, apperrors.EK(apperrors.KindNotFound, "web.teams.error.not_found", "")
	}
	if err != nil {
		return Team{}, err
	}
	members := make([]Member, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, Member{ID: m.ID.String(), Username: m.Username, Role: m.Role})
	}
	return Team{
		ID:      t.ID.String(),
		Name:    t.Name,
		Tag:     t.Tag,
		Game:    t.Game,
		OwnerID: t.OwnerID.String(),
		Members: members,
	}, nil
}

func (g backendGateway) KickTeamMember(ctx context.Context, teamID, memberID string) (string, error) {
	return g.client.KickTeamMember(ctx, teamID, memberID)
}
