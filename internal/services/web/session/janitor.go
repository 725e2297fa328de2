package session

import (
	"context"
	"log"
	"time"

	"github.com/arenahq/arena/internal/services/web/storage"
)

// Janitor periodically purges expired sessions.
type Janitor struct {
	Store    storage.Store
	Interval time.Duration
	Now      func() time.Time
}

// Run purges once immediately and then every Interval until ctx ends.
func (j Janitor) Run(ctx context.Context) {
	if j.Store == nil || j.Interval <= 0 {
		return
	}
	now := j.Now
	if now == nil {
		now = time.Now
	}
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()
	for {
		j.sweep(ctx, now())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (j Janitor) sweep(ctx context.Context, at time.Time) {
	purged, err := j.Store.PurgeExpired(ctx, at)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("session janitor failed err=%v", err)
		}
		return
	}
	if purged > 0 {
		log.Printf("session janitor purged=%d", purged)
	}
}
