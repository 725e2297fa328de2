package adminnews

import (
	"context"
	"slices"
	"strings"
	"time"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

// Item is one article row in the admin list.
type Item struct {
	ID        string
	Title     string
	Slug      string
	Category  string
	Author    string
	Likes     int
	CreatedAt time.Time
}

// NewsGateway lists and deletes articles.
type NewsGateway interface {
	ListNews(context.Context) ([]Item, error)
	DeleteNews(ctx context.Context, newsID string) (string, error)
}

type service struct {
	gateway NewsGateway
}

func newService(gateway NewsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listNews(ctx context.Context) ([]Item, error) {
	items, err := s.gateway.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return sorted, nil
}

func (s service) deleteNews(ctx context.Context, newsID string) (string, error) {
	newsID = strings.TrimSpace(newsID)
	if newsID == "" {
		return "", apperrors.EK(apperrors.KindInvalidInput, "web.news.error.not_found", "news id is required")
	}
	return s.gateway.DeleteNews(ctx, newsID)
}

func categories(items []Item) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		key := strings.ToLower(item.Category)
		if item.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item.Category)
	}
	return out
}
