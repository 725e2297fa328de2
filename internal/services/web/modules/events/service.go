package events

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

// Scope selects which drafted events are listed.
type Scope string

const (
	ScopeAll  Scope = "all"
	ScopeMine Scope = "mine"
)

// ParseScope reads a scope value, defaulting to ScopeAll.
func ParseScope(value string) Scope {
	if Scope(strings.ToLower(strings.TrimSpace(value))) == ScopeMine {
		return ScopeMine
	}
	return ScopeAll
}

// Event is one drafted event row.
type Event struct {
	ID        string
	Name      string
	Game      string
	Category  string
	Location  string
	Status    string
	Organizer string
	StartDate time.Time
}

// EventsGateway lists and deletes drafted events.
type EventsGateway interface {
	ListDraftedEvents(ctx context.Context, mine bool) ([]Event, error)
	DeleteEvent(ctx context.Context, eventID string) (string, error)
}

type service struct {
	gateway EventsGateway
}

func newService(gateway EventsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listEvents(ctx context.Context, scope Scope) ([]Event, error) {
	return s.gateway.ListDraftedEvents(ctx, scope == ScopeMine)
}

func (s service) deleteEvent(ctx context.Context, eventID string) (string, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return "", apperrors.EK(apperrors.KindInvalidInput, "web.events.error.missing", "event id is required")
	}
	return s.gateway.DeleteEvent(ctx, eventID)
}

func categories(events []Event) []string {
	seen := make(map[string]bool, len(events))
	var out []string
	for _, event := range events {
		key := strings.ToLower(event.Category)
		if event.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, event.Category)
	}
	return out
}
