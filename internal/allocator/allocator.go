// Package allocator hands out human-readable sequential identifiers such as
// MTR-KHI-000042 or APP-2024-000007.
//
// Uniqueness never relies on the max scan alone: the caller's claim must hit a
// unique constraint, and a conflicting claim is retried with exponential
// backoff against a fresh scan. Allocations in one process are additionally
// serialized per partition so they do not fight each other.
package allocator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

const (
	defaultMaxRetries = 5
	defaultBaseDelay  = 10 * time.Millisecond
	maxDelay          = time.Second
)

type Scheme struct {
	Prefix string
	Width  int
}

var (
	MeterNumber       = Scheme{Prefix: "MTR", Width: 6}
	ApplicationNumber = Scheme{Prefix: "APP", Width: 6}
	ResetNumber       = Scheme{Prefix: "PWRST", Width: 6}
	AccountNumber     = Scheme{Prefix: "ELX", Width: 6}
)

// Like returns the SQL LIKE pattern selecting the identifiers of a partition.
func (s Scheme) Like(partition string) string {
	return s.Prefix + "-" + partition + "-%"
}

func (s Scheme) Format(partition string, seq int) string {
	return fmt.Sprintf("%s-%s-%0*d", s.Prefix, partition, s.Width, seq)
}

func (s Scheme) pattern(partition string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s-%s-(\d{%d})$`, regexp.QuoteMeta(s.Prefix), regexp.QuoteMeta(partition), s.Width))
}

// NextSequence returns max+1 over the well-formed identifiers of partition.
// Anything that does not match PREFIX-PARTITION-NNNNNN is ignored.
func (s Scheme) NextSequence(partition string, existing []string) int {
	re := s.pattern(partition)
	highest := 0
	for _, id := range existing {
		m := re.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

func (s Scheme) capacity() int {
	return int(math.Pow10(s.Width)) - 1
}

// ListFunc returns the stored identifiers matching a LIKE pattern.
type ListFunc func(ctx context.Context, like string) ([]string, error)

// A pending-request conflict is about the row, not the identifier.
func isTaken(err error) bool {
	return errors.Is(err, domain.ErrConflict) && !errors.Is(err, domain.ErrPendingExists)
}

// ClaimFunc persists id. It must return an error wrapping domain.ErrConflict
// when id is already taken.
type ClaimFunc func(ctx context.Context, id string) error

type Allocator struct {
	maxRetries uint64
	baseDelay  time.Duration
	locks      sync.Map
}

func New(maxRetries uint64, baseDelay time.Duration) *Allocator {
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	return &Allocator{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

func (a *Allocator) lock(key string) *sync.Mutex {
	mu, _ := a.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Allocate scans the partition, claims max+1 and retries on conflict. After
// the retry budget is spent it fails with domain.ErrAllocationExhausted.
func (a *Allocator) Allocate(ctx context.Context, scheme Scheme, partition string, list ListFunc, claim ClaimFunc) (string, error) {
	like := scheme.Like(partition)
	mu := a.lock(like)

	backoff := retry.WithMaxRetries(a.maxRetries,
		retry.WithCappedDuration(maxDelay,
			retry.WithJitterPercent(20, retry.NewExponential(a.baseDelay))))

	attempts := 0
	id, err := retry.DoValue(ctx, backoff, func(ctx context.Context) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		attempts++

		existing, err := list(ctx, like)
		if err != nil {
			return "", fmt.Errorf("list identifiers %s: %w", like, err)
		}
		seq := scheme.NextSequence(partition, existing)
		if seq > scheme.capacity() {
			return "", fmt.Errorf("%w: partition %s is full", domain.ErrAllocationExhausted, like)
		}

		candidate := scheme.Format(partition, seq)
		if err := claim(ctx, candidate); err != nil {
			if isTaken(err) {
				zap.L().Debug("identifier taken, retrying", zap.String("candidate", candidate), zap.Int("attempt", attempts))
				return "", retry.RetryableError(err)
			}
			return "", err
		}
		return candidate, nil
	})
	if err != nil {
		if isTaken(err) {
			zap.L().Error("identifier allocation exhausted",
				zap.String("partition", like),
				zap.Int("attempts", attempts),
				zap.Error(err),
			)
			return "", fmt.Errorf("%w: %s after %d attempts: %v", domain.ErrAllocationExhausted, like, attempts, err)
		}
		return "", err
	}
	return id, nil
}
