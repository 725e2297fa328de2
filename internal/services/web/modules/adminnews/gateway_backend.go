package adminnews

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
)

type backendGateway struct {
	client *backend.Client
}

// NewBackendGateway returns a NewsGateway backed by the REST client. A nil
// client yields the degraded gateway.
func NewBackendGateway(client *backend.Client) NewsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

func (g backendGateway) ListNews(ctx context.Context) ([]Item, error) {
	news, err := g.client.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(news))
	for _, n := range news {
		items = append(items, Item{
			ID:        n.ID.String(),
			Title:     n.Title,
			Slug:      n.Slug,
			Category:  n.Category,
			Author:    n.Author,
			Likes:     n.Likes,
			CreatedAt: n.CreatedAt.Time,
		})
	}
	return items, nil
}

func (g backendGateway) DeleteNews(ctx context.Context, newsID string) (string, error) {
	return g.client.DeleteNews(ctx, newsID)
}
