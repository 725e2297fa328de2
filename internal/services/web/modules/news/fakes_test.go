package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
)

// fakeGateway implements NewsGateway with configurable results and call
// tracking.
type fakeGateway struct {
	mu        sync.Mutex
	articles  []Article
	listErr   error
	likeMsg   string
	likeErr   error
	likeCalls []string
}

var _ NewsGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListNews(context.Context) ([]Article, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.articles, nil
}

func (f *fakeGateway) GetArticle(_ context.Context, slug string) (Article, error) {
	for _, article := range f.articles {
		if article.Slug == slug || article.ID == slug {
			return article, nil
		}
	}
	return Article{}, apperrors.E(apperrors.KindNotFound, "article not found")
}

func (f *fakeGateway) SetLike(_ context.Context, newsID string, like bool) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	verb := "unlike"
	if like {
		verb = "like"
	}
	f.likeCalls = append(f.likeCalls, verb+":"+newsID)
	if f.likeErr != nil {
		return "", f.likeErr
	}
	return f.likeMsg, nil
}

func day(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func testArticles() []Article {
	return []Article{
		{ID: "1", Title: "Spring Finals Recap", Slug: "spring-finals", Summary: "A tense final.", Category: "Tournaments", Author: "Ada", CreatedAt: day("2024-03-10T18:00:00Z"), Likes: 4},
		{ID: "2", Title: "New Arena Opens", Slug: "new-arena", Summary: "Doors open in Lagos.", Category: "Community", Author: "Bola", CreatedAt: day("2024-04-02T09:00:00Z")},
		{ID: "3", Title: "Patch Notes", Slug: "patch-notes", Summary: "Balance changes.", Category: "Games", Author: "Ada", CreatedAt: day("2024-01-15T12:00:00Z")},
	}
}

func signedInSession() storage.Session {
	return storage.Session{ID: "sess-1", UserID: "user-1", Username: "ana", AccessToken: "token-1"}
}

func newRequest(method, target string, body string, sess *storage.Session) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if sess != nil {
		req = req.WithContext(session.WithSession(req.Context(), *sess))
	}
	return req
}
