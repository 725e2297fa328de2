package events

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
)

type backendGateway struct {
	client *backend.Client
}

// NewBackendGateway returns an EventsGateway backed by the REST client. A nil
// client yields the degraded gateway.
func NewBackendGateway(client *backend.Client) EventsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

func (g backendGateway) ListDraftedEvents(ctx context.Context, mine bool) ([]Event, error) {
	drafted, err := g.client.ListDraftedEvents(ctx, mine)
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(drafted))
	for _, e := range drafted {
		events = append(events, Event{
			ID:        e.ID.String(),
			Name:      e.Name,
			Game:      e.Game,
			Category:  e.Category,
			Location:  e.Location,
			Status:    e.Status,
			Organizer: e.Organizer,
			StartDate: e.StartDate.Time,
		})
	}
	return events, nil
}

func (g backendGateway) DeleteEvent(ctx context.Context, eventID string) (string, error) {
	return g.client.DeleteEvent(ctx, eventID)
}
