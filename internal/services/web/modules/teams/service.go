package teams

import (
	"context"
	"slices"
	"strings"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

// Member is one roster entry.
type Member struct {
	ID       string
	Username string
	Role     string
}

// Team is a team profile with its roster.
type Team struct {
	ID      string
	Name    string
	Tag     string
	Game    string
	OwnerID string
	Members []Member
}

// IsOwner reports whether memberID owns the team.
func (t Team) IsOwner(memberID string) bool {
	return t.OwnerID != "" && t.OwnerID == memberID
}

// TeamsGateway reads teams and removes members.
type TeamsGateway interface {
	GetTeam(ctx context.Context, teamID string) (Team, error)
	KickTeamMember(ctx context.Context, teamID, memberID string) (string, error)
}

type service struct {
	gateway TeamsGateway
}

func newService(gateway TeamsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// team returns the team with the owner first and the rest by username.
func (s service) team(ctx context.Context, teamID string) (Team, error) {
	if strings.TrimSpace(teamID) == "" {
		return Team{}, apperrors.EK(apperrors.KindNotFound, "web.teams.error.not_found", "team id is required")
	}
	team, err := s.gateway.GetTeam(ctx, teamID)
	if err != nil {
		return Team{}, err
	}
	slices.SortStableFunc(team.Members, func(a, b Member) int {
		switch {
		case team.IsOwner(a.ID) && !team.IsOwner(b.ID):
			return -1
		case team.IsOwner(b.ID) && !team.IsOwner(a.ID):
			return 1
		}
		return strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username))
	})
	return team, nil
}

func (s service) kick(ctx context.Context, teamID, memberID string) (string, error) {
	if strings.TrimSpace(teamID) == "" || strings.TrimSpace(memberID) == "" {
		return "", apperrors.EK(apperrors.KindInvalidInput, "web.teams.error.not_found", "team and member ids are required")
	}
	return s.gateway.KickTeamMember(ctx, teamID, memberID)
}
