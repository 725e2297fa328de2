package news

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
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

func (g backendGateway) ListNews(ctx context.Context) ([]Article, error) {
	items, err := g.client.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	articles := make([]Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, articleFromDTO(item))
	}
	return articles, nil
}

func (g backendGateway) GetArticle(ctx context.Context, slug string) (Article, error) {
	item, err := g.client.GetNews(ctx, backend.NewsLookup{Slug: slug})
	if backend.IsNotFound(err) {
		return Article{}, apperrors.EK(apperrors.KindNotFound, "web.news.error.not_found", "")
	}
	if err != nil {
		return Article{}, err
	}
	return articleFromDTO(item), nil
}

func (g backendGateway) SetLike(ctx context.Context, newsID string, like bool) (string, error) {
	return g.client.SetNewsLike(ctx, newsID, like)
}

func articleFromDTO(item backend.NewsItem) Article {
	return Article{
		ID:         item.ID.String(),
		Title:      item.Title,
		Slug:       item.Slug,
		Summary:    item.Summary,
		Content:    item.Content,
		Category:   item.Category,
		Author:     item.Author,
		CoverImage: item.CoverImage,
		Likes:      item.Likes,
		LikedByMe:  item.LikedByMe,
		CreatedAt:  item.CreatedAt.Time,
	}
}
