package public

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/storage"
)

// fakeGateway implements Gateway with configurable results and call tracking.
type fakeGateway struct {
	mu         sync.Mutex
	headlines  []Headline
	newsErr    error
	identity   session.Identity
	loginErr   error
	loginCalls int
}

var _ Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListNews(context.Context) ([]Headline, error) {
	if f.newsErr != nil {
		return nil, f.newsErr
	}
	return f.headlines, nil
}

func (f *fakeGateway) Login(_ context.Context, email, _ string) (session.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	if f.loginErr != nil {
		return session.Identity{}, f.loginErr
	}
	identity := f.identity
	if identity.Email == "" {
		identity.Email = email
	}
	return identity, nil
}

// fakeSigner records sign-in and sign-out calls.
type fakeSigner struct {
	mu        sync.Mutex
	signedIn  []session.Identity
	signOuts  int
	signInErr error
}

var _ Signer = (*fakeSigner)(nil)

func (f *fakeSigner) SignIn(_ http.ResponseWriter, _ *http.Request, identity session.Identity) (storage.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signInErr != nil {
		return storage.Session{}, f.signInErr
	}
	f.signedIn = append(f.signedIn, identity)
	return storage.Session{ID: "sess-new", UserID: identity.UserID, AccessToken: identity.Token}, nil
}

func (f *fakeSigner) SignOut(http.ResponseWriter, *http.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOuts++
	return nil
}

func at(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func testHeadlines() []Headline {
	return []Headline{
		{ID: "1", Title: "Oldest Story", Slug: "oldest", CreatedAt: at("2024-01-01")},
		{ID: "2", Title: "Newest Story", Slug: "newest", CreatedAt: at("2024-05-01")},
		{ID: "3", Title: "Middle Story", Slug: "middle", CreatedAt: at("2024-03-01")},
		{ID: "4", Title: "Second Story", Slug: "second", CreatedAt: at("2024-04-01")},
	}
}
