package teams

import (
	"context"
	"sync"
)

type fakeGateway struct {
	mu      sync.Mutex
	team    Team
	getErr  error
	kickMsg string
	kickErr error
	kicked  [][2]string
}

var _ TeamsGateway = (*fakeGateway)(nil)

func (f *fakeGateway) GetTeam(_ context.Context, teamID string) (Team, error) {
	if f.getErr != nil {
		return Team{}, f.getErr
	}
	team := f.team
	team.ID = teamID
	team.Members = append([]Member(nil), f.team.Members...)
	return team, nil
}

func (f *fakeGateway) KickTeamMember(_ context.Context, teamID, memberID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kicked = append(f.kicked, [2]string{teamID, memberID})
	if f.kickErr != nil {
		return "", f.kickErr
	}
	return f.kickMsg, nil
}

func sampleTeam() Team {
	return Team{
		ID:      "t1",
		Name:    "Night Owls",
		Tag:     "NO",
		Game:    "Valorant",
		OwnerID: "u2",
		Members: []Member{
			{ID: "u3", Username: "zed", Role: "player"},
			{ID: "u1", Username: "amy", Role: "coach"},
			{ID: "u2", Username: "max", Role: "captain"},
		},
	}
}
