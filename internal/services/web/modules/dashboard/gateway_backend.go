package dashboard

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
)

type backendGateway struct {
	client *backend.Client
}

// NewBackendGateway returns a CountsGateway backed by the REST client. A nil
// client yields the degraded gateway.
func NewBackendGateway(client *backend.Client) CountsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

func (g backendGateway) CountNews(ctx context.Context) (int, error) {
	items, err := g.client.ListNews(ctx)
	return len(items), err
}

func (g backendGateway) CountEvents(ctx context.Context) (int, error) {
	items, err := g.client.ListDraftedEvents(ctx, false)
	return len(items), err
}

func (g backendGateway) CountCoupons(ctx context.Context) (int, error) {
	items, err := g.client.ListCoupons(ctx)
	return len(items), err
}

func (g backendGateway) CountProducts(ctx context.Context) (int, error) {
	items, err := g.client.ListProducts(ctx)
	return len(items), err
}
