package pricing

import (
	"sync"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

// QuoteCache holds the latest trusted snapshot for a bounded time window.
// One instance per process, injected where needed; the clock is injectable
// for tests.
type QuoteCache struct {
	mu       sync.RWMutex
	quote    domain.PriceQuote
	storedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func NewQuoteCache(ttl time.Duration) *QuoteCache {
	return NewQuoteCacheWithClock(ttl, time.Now)
}

func NewQuoteCacheWithClock(ttl time.Duration, now func() time.Time) *QuoteCache {
	return &QuoteCache{
		ttl: ttl,
		now: now,
	}
}

func (c *QuoteCache) Get() (domain.PriceQuote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.storedAt.IsZero() || c.now().Sub(c.storedAt) > c.ttl {
		return domain.PriceQuote{}, false
	}
	return c.quote, true
}

func (c *QuoteCache) Set(quote domain.PriceQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quote = quote
	c.storedAt = c.now()
}
