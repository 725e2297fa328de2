package dashboard

import (
	"context"
	"sync"
)

// fakeCounts implements CountsGateway with fixed counts or a shared error.
type fakeCounts struct {
	news, events, coupons, products int
	err                             error
}

var _ CountsGateway = fakeCounts{}

func (f fakeCounts) CountNews(context.Context) (int, error)     { return f.news, f.err }
func (f fakeCounts) CountEvents(context.Context) (int, error)   { return f.events, f.err }
func (f fakeCounts) CountCoupons(context.Context) (int, error)  { return f.coupons, f.err }
func (f fakeCounts) CountProducts(context.Context) (int, error) { return f.products, f.err }

// fakeProvider returns stats. When blockFirst is set, the first call waits
// until its context ends or release is closed.
type fakeProvider struct {
	mu         sync.Mutex
	stats      Stats
	blockFirst bool
	calls      int
	started    chan struct{}
	release    chan struct{}
}

func newBlockingProvider(stats Stats) *fakeProvider {
	return &fakeProvider{stats: stats, blockFirst: true, started: make(chan struct{}), release: make(chan struct{})}
}

func (f *fakeProvider) Stats(ctx context.Context) (Stats, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	f.mu.Unlock()
	if first && f.blockFirst {
		close(f.started)
		select {
		case <-ctx.Done():
			return Stats{}, ctx.Err()
		case <-f.release:
		}
	}
	return f.stats, nil
}
