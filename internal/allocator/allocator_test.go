package allocator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

// memStore mimics a table with a unique index on the identifier column.
type memStore struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newMemStore(seed ...string) *memStore {
	s := &memStore{ids: make(map[string]struct{})}
	for _, id := range seed {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *memStore) list(_ context.Context, like string) ([]string, error) {
	prefix := strings.TrimSuffix(like, "%")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		if strings.HasPrefix(id, prefix) {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *memStore) claim(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		return fmt.Errorf("insert %s: %w", id, domain.ErrConflict)
	}
	s.ids[id] = struct{}{}
	return nil
}

func TestScheme_NextSequence(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		expected int
	}{
		{name: "empty partition", existing: nil, expected: 1},
		{name: "continues after max", existing: []string{"MTR-KHI-000001", "MTR-KHI-000009", "MTR-KHI-000003"}, expected: 10},
		{name: "skips malformed", existing: []string{"MTR-KHI-12", "MTR-KHI-ABCDEF", "MTR-KHI-000004", "MTR-KHI-0000050", "legacy"}, expected: 5},
		{name: "ignores other partitions", existing: []string{"MTR-LHE-000900", "MTR-KHI-000002"}, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeterNumber.NextSequence("KHI", tt.existing))
		})
	}
}

func TestScheme_Format(t *testing.T) {
	assert.Equal(t, "MTR-KHI-000042", MeterNumber.Format("KHI", 42))
	assert.Equal(t, "APP-2024-000007", ApplicationNumber.Format("2024", 7))
	assert.Equal(t, "PWRST-2024-000100", ResetNumber.Format("2024", 100))
	assert.Equal(t, "ELX-2024-%", AccountNumber.Like("2024"))
}

func TestAllocator_ConcurrentAllocationsAreUnique(t *testing.T) {
	const workers = 150

	store := newMemStore("MTR-KHI-000010", "MTR-KHI-broken")
	alloc := New(5, time.Millisecond)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]int)
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := alloc.Allocate(context.Background(), MeterNumber, "KHI", store.list, store.claim)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			seen[id]++
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, seen, workers)
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
	assert.Contains(t, seen, "MTR-KHI-000011")
	assert.Contains(t, seen, fmt.Sprintf("MTR-KHI-%06d", 10+workers))
}

func TestAllocator_IndependentInstancesNeverDuplicate(t *testing.T) {
	store := newMemStore()
	instances := []*Allocator{New(200, time.Millisecond), New(200, time.Millisecond)}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]int)
	)
	for i := 0; i < 100; i++ {
		alloc := instances[i%len(instances)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := alloc.Allocate(context.Background(), ApplicationNumber, "2024", store.list, store.claim)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrAllocationExhausted)
				return
			}
			mu.Lock()
			seen[id]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestAllocator_Allocate(t *testing.T) {
	tests := []struct {
		name        string
		claim       func(calls *int) ClaimFunc
		expectedID  string
		expectedErr error
		calls       int
	}{
		{
			name: "retries after a conflicting claim",
			claim: func(calls *int) ClaimFunc {
				return func(ctx context.Context, id string) error {
					*calls++
					if *calls < 3 {
						return domain.ErrConflict
					}
					return nil
				}
			},
			expectedID: "PWRST-2024-000001",
			calls:      3,
		},
		{
			name: "gives up after the retry budget",
			claim: func(calls *int) ClaimFunc {
				return func(ctx context.Context, id string) error {
					*calls++
					return fmt.Errorf("unique violation: %w", domain.ErrConflict)
				}
			},
			expectedErr: domain.ErrAllocationExhausted,
			calls:       4,
		},
		{
			name: "does not retry other failures",
			claim: func(calls *int) ClaimFunc {
				return func(ctx context.Context, id string) error {
					*calls++
					return domain.ErrStoreUnavailable
				}
			},
			expectedErr: domain.ErrStoreUnavailable,
			calls:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := New(3, time.Millisecond)
			calls := 0
			list := func(ctx context.Context, like string) ([]string, error) { return nil, nil }

			id, err := alloc.Allocate(context.Background(), ResetNumber, "2024", list, tt.claim(&calls))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
			assert.Equal(t, tt.calls, calls)
		})
	}
}

func TestAllocator_ListFailure(t *testing.T) {
	alloc := New(3, time.Millisecond)
	list := func(ctx context.Context, like string) ([]string, error) { return nil, errors.New("connection reset") }
	claim := func(ctx context.Context, id string) error {
		t.Fatal("claim must not be called")
		return nil
	}

	_, err := alloc.Allocate(context.Background(), MeterNumber, "GEN", list, claim)
	assert.ErrorContains(t, err, "connection reset")
}

func TestAllocator_PendingConflictIsNotRetried(t *testing.T) {
	alloc := New(3, time.Millisecond)
	store := newMemStore()
	calls := 0
	claim := func(ctx context.Context, id string) error {
		calls++
		return domain.ErrPendingExists
	}

	_, err := alloc.Allocate(context.Background(), ResetNumber, "2024", store.list, claim)
	assert.ErrorIs(t, err, domain.ErrPendingExists)
	assert.NotErrorIs(t, err, domain.ErrAllocationExhausted)
	assert.Equal(t, 1, calls)
}

func TestZoneCode(t *testing.T) {
	assert.Equal(t, "KHI", ZoneCode("Karachi"))
	assert.Equal(t, "MKS", ZoneCode("  Mirpur   Khas "))
	assert.Equal(t, "LHE", ZoneCode("LAHORE"))
	assert.Equal(t, GenericZone, ZoneCode("Gwadar"))
	assert.Equal(t, GenericZone, ZoneCode(""))
}
