package invites

import (
	"context"
	"strings"

	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

// Response is the caller's answer to a team invite.
type Response string

const (
	ResponseAccept  Response = "accept"
	ResponseDecline Response = "decline"
)

// InviteGateway answers team invites.
type InviteGateway interface {
	RespondInvite(ctx context.Context, inviteID string, accept bool) (string, error)
}

type service struct {
	gateway InviteGateway
	runner  *confirm.Runner
}

func newService(gateway InviteGateway, runner *confirm.Runner) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if runner == nil {
		runner = confirm.NewRunner()
	}
	return service{gateway: gateway, runner: runner}
}

// respond sends one answer. Repeated submissions of the same answer while
// one is in flight share its result.
func (s service) respond(ctx context.Context, inviteID string, response Response) (string, error) {
	inviteID = strings.TrimSpace(inviteID)
	if inviteID == "" {
		return "", apperrors.EK(apperrors.KindInvalidInput, "web.invites.error.missing", "invite id is required")
	}
	key := "invite:" + inviteID + ":" + string(response)
	message, _, err := s.runner.Run(ctx, key, func(ctx context.Context) (string, error) {
		return s.gateway.RespondInvite(ctx, inviteID, response == ResponseAccept)
	})
	return message, err
}
