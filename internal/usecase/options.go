package usecase

import (
	"context"
	"io"
	"log"
	"time"

	"skillmatrix/internal/metrics"
)

const defaultCacheTTL = 10 * time.Minute

// hooks carries the optional collaborators shared by every usecase: read
// model cache, change feed, metrics and logger. All of them may be absent.
type hooks struct {
	cache    Cache
	cacheTTL time.Duration
	events   EventPublisher
	metrics  *metrics.Metrics
	logger   *log.Logger
	now      func() time.Time
}

type Option func(*hooks)

func WithCache(c Cache, ttl time.Duration) Option {
	return func(h *hooks) {
		h.cache = c
		if ttl > 0 {
			h.cacheTTL = ttl
		}
	}
}

func WithEvents(p EventPublisher) Option {
	return func(h *hooks) { h.events = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *hooks) { h.metrics = m }
}

func WithLogger(l *log.Logger) Option {
	return func(h *hooks) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithClock overrides the time source used for event timestamps and
// default verification dates.
func WithClock(now func() time.Time) Option {
	return func(h *hooks) {
		if now != nil {
			h.now = now
		}
	}
}

func newHooks(opts []Option) hooks {
	h := hooks{
		cacheTTL: defaultCacheTTL,
		logger:   log.New(io.Discard, "", 0),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// cached loads key into out. It reports false on a miss or when no cache is
// configured; cache failures are logged and treated as misses.
func (h hooks) cached(ctx context.Context, key string, out any) bool {
	if h.cache == nil {
		return false
	}
	hit, err := h.cache.GetJSON(ctx, key, out)
	switch {
	case err != nil:
		h.metrics.IncCacheLookup("error")
		h.logger.Printf("[Cache] get failed | key=%s err=%v", key, err)
		return false
	case hit:
		h.metrics.IncCacheLookup("hit")
		return true
	default:
		h.metrics.IncCacheLookup("miss")
		return false
	}
}

func (h hooks) remember(ctx context.Context, key string, value any) {
	if h.cache == nil {
		return
	}
	if err := h.cache.SetJSON(ctx, key, value, h.cacheTTL); err != nil {
		h.logger.Printf("[Cache] set failed | key=%s err=%v", key, err)
	}
}

// changed drops every cached read model and publishes the given events.
// Person skill changes alter both people and skill views, so both prefixes
// go regardless of which entity moved.
func (h hooks) changed(ctx context.Context, events ...Event) {
	if h.cache != nil {
		for _, pattern := range []string{peopleCachePattern, skillsCachePattern} {
			if err := h.cache.DeleteByPattern(ctx, pattern); err != nil {
				h.logger.Printf("[Cache] invalidate failed | pattern=%s err=%v", pattern, err)
			}
		}
	}
	if h.events == nil {
		return
	}
	for _, evt := range events {
		if evt.OccurredAt.IsZero() {
			evt.OccurredAt = h.now().UTC()
		}
		h.events.Publish(ctx, evt)
	}
}
