package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// PlanCache keeps the last computed plan for a short while so repeated HTTP
// queries do not re-read the archive each time.
type PlanCache struct {
	loader Loader
	opts   Options
	ttl    time.Duration

	mu    sync.RWMutex
	plan  *Plan
	built time.Time
	sf    singleflight.Group

	now func() time.Time
}

// NewPlanCache creates a cache over l. A zero ttl disables caching.
func NewPlanCache(l Loader, opts Options, ttl time.Duration) *PlanCache {
	return &PlanCache{
		loader: l,
		opts:   opts,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *PlanCache) expired() bool {
	if c.plan == nil || c.ttl == 0 {
		return true
	}
	return c.now().Sub(c.built) > c.ttl
}

// Get returns the cached plan, or builds a new one if it is missing or stale.
// Concurrent callers share a single build.
func (c *PlanCache) Get(ctx context.Context) (*Plan, error) {
	c.mu.RLock()
	if !c.expired() {
		plan := c.plan
		c.mu.RUnlock()
		return plan, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("plan", func() (interface{}, error) {
		c.mu.RLock()
		if !c.expired() {
			plan := c.plan
			c.mu.RUnlock()
			return plan, nil
		}
		c.mu.RUnlock()

		plan, _, err := Reconcile(ctx, c.loader, c.opts)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.plan = plan
		c.built = c.now()
		c.mu.Unlock()

		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Plan), nil
}

// Invalidate drops the cached plan; the next Get rebuilds it.
func (c *PlanCache) Invalidate() {
	c.mu.Lock()
	c.plan = nil
	c.mu.Unlock()
}
