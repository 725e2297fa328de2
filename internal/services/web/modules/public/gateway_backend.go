package public

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
	"github.com/arenahq/arena/internal/services/web/session"
)

type backendGateway struct {
	client *backend.Client
}

// NewBackendGateway returns a Gateway backed by the REST client. A nil client
// yields the degraded gateway.
func NewBackendGateway(client *backend.Client) Gateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

func (g backendGateway) ListNews(ctx context.Context) ([]Headline, error) {
	items, err := g.client.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	headlines := make([]Headline, 0, len(items))
	for _, item := range items {
		headlines = append(headlines, Headline{
			ID:        item.ID.String(),
			Title:     item.Title,
			Slug:      item.Slug,
			Summary:   item.Summary,
			CreatedAt: item.CreatedAt.Time,
		})
	}
	return headlines, nil
}

func (g backendGateway) Login(ctx context.Context, email, password string) (session.Identity, error) {
	result, err := g.client.Login(ctx, email, password)
	if err != nil {
		return session.Identity{}, err
	}
	return session.Identity{
		UserID:   result.User.ID.String(),
		Username: result.User.Username,
		Email:    result.User.Email,
		Role:     result.User.Role,
		Token:    result.Token,
	}, nil
}
