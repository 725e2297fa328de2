package adminnews

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// fakeGateway implements NewsGateway with configurable results and call
// tracking.
type fakeGateway struct {
	mu        sync.Mutex
	items     []Item
	listErr   error
	deleteMsg string
	deleteErr error
	deleted   []string
}

var _ NewsGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListNews(context.Context) ([]Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeGateway) DeleteNews(_ context.Context, newsID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, newsID)
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return f.deleteMsg, nil
}

// manyItems returns n articles, one per day, newest last.
func manyItems(n int) []Item {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	items := make([]Item, 0, n)
	for i := range n {
		category := "Community"
		if i%2 == 0 {
			category = "Tournaments"
		}
		items = append(items, Item{
			ID:        fmt.Sprint(i + 1),
			Title:     fmt.Sprintf("Article %02d", i+1),
			Category:  category,
			Author:    "Ada",
			CreatedAt: start.AddDate(0, 0, i),
		})
	}
	return items
}
