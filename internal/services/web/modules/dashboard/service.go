package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// StatCard is one figure on the dashboard stats panel. Sample cards carry
// illustrative values and are labelled as such.
type StatCard struct {
	Key    string
	Value  int
	Sample bool
}

// Stats is the content of the dashboard stats panel.
type Stats struct {
	Cards []StatCard
}

// StatsProvider supplies dashboard statistics.
type StatsProvider interface {
	Stats(context.Context) (Stats, error)
}

// CountsGateway counts the backend collections shown on the dashboard.
type CountsGateway interface {
	CountNews(context.Context) (int, error)
	CountEvents(context.Context) (int, error)
	CountCoupons(context.Context) (int, error)
	CountProducts(context.Context) (int, error)
}

// liveStats reads real counts from the backend, concurrently.
type liveStats struct {
	gateway CountsGateway
}

// NewLiveStats returns a provider backed by backend counts. A nil gateway
// yields the degraded gateway.
func NewLiveStats(gateway CountsGateway) StatsProvider {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return liveStats{gateway: gateway}
}

func (p liveStats) Stats(ctx context.Context) (Stats, error) {
	counters := []struct {
		key   string
		count func(context.Context) (int, error)
	}{
		{"web.dashboard.stat.news", p.gateway.CountNews},
		{"web.dashboard.stat.events", p.gateway.CountEvents},
		{"web.dashboard.stat.coupons", p.gateway.CountCoupons},
		{"web.dashboard.stat.products", p.gateway.CountProducts},
	}
	cards := make([]StatCard, len(counters))
	group, ctx := errgroup.WithContext(ctx)
	for i, counter := range counters {
		group.Go(func() error {
			n, err := counter.count(ctx)
			if err != nil {
				return err
			}
			cards[i] = StatCard{Key: counter.key, Value: n}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Stats{}, err
	}
	return Stats{Cards: cards}, nil
}

// placeholderStats serves fixed sample figures for areas the backend does
// not report yet.
type placeholderStats struct{}

// NewPlaceholderStats returns a provider of labelled sample figures.
func NewPlaceholderStats() StatsProvider {
	return placeholderStats{}
}

func (placeholderStats) Stats(context.Context) (Stats, error) {
	return Stats{Cards: []StatCard{
		{Key: "web.dashboard.stat.awards", Value: 12, Sample: true},
		{Key: "web.dashboard.stat.teams", Value: 48, Sample: true},
	}}, nil
}

// composite concatenates the cards of several providers in order.
type composite []StatsProvider

// Compose returns a provider that shows every provider's cards in order.
// Any provider failing fails the whole panel.
func Compose(providers ...StatsProvider) StatsProvider {
	out := make(composite, 0, len(providers))
	for _, provider := range providers {
		if provider != nil {
			out = append(out, provider)
		}
	}
	return out
}

func (c composite) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	for _, provider := range c {
		part, err := provider.Stats(ctx)
		if err != nil {
			return Stats{}, err
		}
		stats.Cards = append(stats.Cards, part.Cards...)
	}
	return stats, nil
}
