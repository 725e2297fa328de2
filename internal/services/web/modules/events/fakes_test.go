package events

import (
	"context"
	"sync"
	"time"
)

type fakeGateway struct {
	mu        sync.Mutex
	all       []Event
	mine      []Event
	listErr   error
	deleteMsg string
	deleteErr error
	deleted   []string
	scopes    []bool
}

var _ EventsGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListDraftedEvents(_ context.Context, mine bool) ([]Event, error) {
	f.mu.Lock()
	f.scopes = append(f.scopes, mine)
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	if mine {
		return f.mine, nil
	}
	return f.all, nil
}

func (f *fakeGateway) DeleteEvent(_ context.Context, eventID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, eventID)
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return f.deleteMsg, nil
}

func sampleEvents() []Event {
	return []Event{
		{ID: "e1", Name: "Spring Cup", Game: "Valorant", Category: "Tournament", Organizer: "ada", StartDate: time.Date(2024, 4, 2, 18, 0, 0, 0, time.UTC)},
		{ID: "e2", Name: "Friday Scrims", Game: "Dota 2", Category: "Scrim", Organizer: "lin", StartDate: time.Date(2024, 4, 5, 20, 0, 0, 0, time.UTC)},
	}
}
