package public

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
	"github.com/arenahq/arena/internal/services/web/session"
)

// homeHeadlines is the number of articles featured on the home page.
const homeHeadlines = 3

// Headline is a news teaser shown on the home page.
type Headline struct {
	ID        string
	Title     string
	Slug      string
	Summary   string
	CreatedAt time.Time
}

// Gateway loads home page content and exchanges credentials.
type Gateway interface {
	ListNews(context.Context) ([]Headline, error)
	Login(ctx context.Context, email, password string) (session.Identity, error)
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// latestNews returns the newest headlines, at most homeHeadlines.
func (s service) latestNews(ctx context.Context) ([]Headline, error) {
	headlines, err := s.gateway.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(headlines)
	slices.SortStableFunc(sorted, func(a, b Headline) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(sorted) > homeHeadlines {
		sorted = sorted[:homeHeadlines]
	}
	return sorted, nil
}

// login validates the form before calling the backend. Field problems are
// returned without contacting it.
func (s service) login(ctx context.Context, form LoginForm) (session.Identity, formvalidate.FieldErrors, error) {
	form.Email = strings.TrimSpace(form.Email)
	if problems := formvalidate.Struct(form); problems != nil {
		return session.Identity{}, problems, nil
	}
	identity, err := s.gateway.Login(ctx, form.Email, form.Password)
	return identity, nil, err
}

func (service) healthBody() string {
	return "ok"
}
