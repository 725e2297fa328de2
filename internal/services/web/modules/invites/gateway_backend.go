package invites

import "github.com/arenahq/arena/internal/services/web/integration/backend"

// NewBackendGateway returns an InviteGateway backed by the REST client. A nil
// client yields the degraded gateway.
func NewBackendGateway(client *backend.Client) InviteGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return client
}
