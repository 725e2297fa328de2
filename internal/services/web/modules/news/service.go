package news

import (
	"context"
	"slices"
	"strings"
	"time"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

// Article is one news article as shown on the feed and detail pages.
type Article struct {
	ID         string
	Title      string
	Slug       string
	Summary    string
	Content    string
	Category   string
	Author     string
	CoverImage string
	Likes      int
	LikedByMe  bool
	CreatedAt  time.Time
}

// Path returns the article's detail route key, preferring the slug.
func (a Article) Path() string {
	if a.Slug != "" {
		return a.Slug
	}
	return a.ID
}

// NewsGateway loads articles and records likes.
type NewsGateway interface {
	ListNews(context.Context) ([]Article, error)
	GetArticle(context.Context, string) (Article, error)
	SetLike(context.Context, string, bool) (string, error)
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

// listNews returns articles newest first.
func (s service) listNews(ctx context.Context) ([]Article, error) {
	articles, err := s.gateway.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(articles)
	slices.SortStableFunc(sorted, func(a, b Article) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return sorted, nil
}

func (s service) article(ctx context.Context, slug string) (Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Article{}, apperrors.EK(apperrors.KindNotFound, "web.news.error.not_found", "article not found")
	}
	return s.gateway.GetArticle(ctx, slug)
}

func (s service) setLike(ctx context.Context, newsID string, like bool) (string, error) {
	newsID = strings.TrimSpace(newsID)
	if newsID == "" {
		return "", apperrors.EK(apperrors.KindInvalidInput, "web.news.error.not_found", "news id is required")
	}
	return s.gateway.SetLike(ctx, newsID, like)
}

// categories returns the distinct article categories in first-seen order.
func categories(articles []Article) []string {
	seen := make(map[string]bool, len(articles))
	var out []string
	for _, article := range articles {
		key := strings.ToLower(article.Category)
		if article.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, article.Category)
	}
	return out
}
