// Package ratelimit throttles requests per (caller, route class) with a
// sliding window of request timestamps. State is process local.
package ratelimit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

const (
	DefaultClass = "default"
	// entries idle for staleFactor windows are evicted
	staleFactor          = 5
	defaultEvictInterval = 5 * time.Minute
)

type Class struct {
	Name   string
	Prefix string
	Limit  int
	Window time.Duration
}

var DefaultClasses = []Class{
	{Name: "password-reset", Prefix: "/api/password-reset", Limit: 3, Window: time.Minute},
	{Name: "bills", Prefix: "/api/bills", Limit: 30, Window: time.Minute},
	{Name: "payments", Prefix: "/api/payments", Limit: 10, Window: time.Minute},
	{Name: "customers", Prefix: "/api/customers", Limit: 60, Window: time.Minute},
}

var DefaultFallback = Class{Name: DefaultClass, Limit: 100, Window: time.Minute}

// Decision describes the state of a window after a request was counted.
type Decision struct {
	Class     string
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type window struct {
	mu   sync.Mutex
	hits []time.Time
	last time.Time
	span time.Duration
	dead bool
}

type Limiter struct {
	classes       []Class
	fallback      Class
	windows       sync.Map
	evictInterval time.Duration
	stop          chan struct{}
	stopOnce      sync.Once
	evictor       sync.WaitGroup
	now           func() time.Time
}

func New(classes []Class, fallback Class, evictInterval time.Duration) (*Limiter, error) {
	if fallback.Name == "" {
		fallback.Name = DefaultClass
	}
	for _, c := range append([]Class{fallback}, classes...) {
		if err := c.validate(); err != nil {
			return nil, err
		}
	}
	sorted := make([]Class, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	if evictInterval <= 0 {
		evictInterval = defaultEvictInterval
	}
	return &Limiter{
		classes:       sorted,
		fallback:      fallback,
		evictInterval: evictInterval,
		stop:          make(chan struct{}),
		now:           time.Now,
	}, nil
}

func (c Class) validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("rate limit class %q: limit must be positive, got %d", c.Name, c.Limit)
	}
	if c.Window <= 0 {
		return fmt.Errorf("rate limit class %q: window must be positive, got %s", c.Name, c.Window)
	}
	return nil
}

// Classify picks the class with the longest prefix matching path on a
// segment boundary, or the fallback class.
func (l *Limiter) Classify(path string) Class {
	for _, c := range l.classes {
		if path == c.Prefix || strings.HasPrefix(path, strings.TrimSuffix(c.Prefix, "/")+"/") {
			return c
		}
	}
	return l.fallback
}

// Allow counts a request from identity to path. A rejected request is not
// counted and yields a domain.RateLimitError.
func (l *Limiter) Allow(identity, path string) (Decision, error) {
	class := l.Classify(path)
	now := l.now()

	w := l.acquire(identity+"|"+class.Name, class.Window)
	defer w.mu.Unlock()

	cutoff := now.Add(-class.Window)
	kept := w.hits[:0]
	for _, h := range w.hits {
		if h.After(cutoff) {
			kept = append(kept, h)
		}
	}
	w.hits = kept
	w.last = now

	d := Decision{Class: class.Name, Limit: class.Limit}
	if len(w.hits) >= class.Limit {
		d.ResetAt = w.hits[0].Add(class.Window)
		return d, domain.RateLimitError{Class: class.Name, Limit: class.Limit, ResetAt: d.ResetAt}
	}

	w.hits = append(w.hits, now)
	d.Remaining = class.Limit - len(w.hits)
	d.ResetAt = w.hits[0].Add(class.Window)
	return d, nil
}

// acquire returns the locked window for key. A window removed by eviction
// while we waited for its lock is replaced by a fresh one.
func (l *Limiter) acquire(key string, span time.Duration) *window {
	for {
		v, _ := l.windows.LoadOrStore(key, &window{span: span})
		w := v.(*window)
		w.mu.Lock()
		if !w.dead {
			return w
		}
		w.mu.Unlock()
	}
}

// Start runs periodic eviction until ctx is done or Stop is called.
func (l *Limiter) Start(ctx context.Context) {
	l.evictor.Add(1)
	go func() {
		defer l.evictor.Done()
		ticker := time.NewTicker(l.evictInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.stop:
				return
			case <-ticker.C:
				if n := l.evict(l.now()); n > 0 {
					zap.L().Debug("rate limit windows evicted", zap.Int("count", n))
				}
			}
		}
	}()
}

func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
	l.evictor.Wait()
}

func (l *Limiter) evict(now time.Time) int {
	evicted := 0
	l.windows.Range(func(key, value any) bool {
		w := value.(*window)
		w.mu.Lock()
		if now.Sub(w.last) > staleFactor*w.span {
			w.dead = true
			l.windows.CompareAndDelete(key, w)
			evicted++
		}
		w.mu.Unlock()
		return true
	})
	return evicted
}
