// Package billrun generates bills for every active customer of a billing
// month. Customers are billed independently on a bounded worker pool; one
// customer's failure never affects another's.
package billrun

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gridbill/internal/config"
	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/events"
	"github.com/GlebRadaev/gridbill/internal/period"
	"github.com/GlebRadaev/gridbill/internal/service/billservice"
)

const (
	maxRetries      = 2
	retryInterval   = 50 * time.Millisecond
	maxFailureItems = 10
)

type CustomerLister interface {
	ListActiveIDs(ctx context.Context) ([]int, error)
}

type Biller interface {
	BillCustomer(ctx context.Context, customerID int, month time.Time, status string) (*domain.Bill, error)
}

type Skipped struct {
	NoReading       int `json:"noReading"`
	AlreadyExists   int `json:"alreadyExists"`
	NoTariff        int `json:"noTariff"`
	Inactive        int `json:"inactive"`
	ZeroConsumption int `json:"zeroConsumption"`
}

type Failure struct {
	CustomerID int    `json:"customerId"`
	Reason     string `json:"reason"`
}

// Summary reports the outcome of one run. Failed counts every processed
// customer that did not get a bill; Skipped explains the expected ones.
type Summary struct {
	RunID          string        `json:"runId"`
	BillingMonth   string        `json:"billingMonth"`
	TotalProcessed int           `json:"totalProcessed"`
	BillsGenerated int           `json:"billsGenerated"`
	Failed         int           `json:"failed"`
	Skipped        Skipped       `json:"skipped"`
	Failures       []Failure     `json:"failures,omitempty"`
	Duration       time.Duration `json:"-"`
	DurationMS     int64         `json:"durationMs"`
}

type outcome int

const (
	outcomeGenerated outcome = iota
	outcomeZeroConsumption
	outcomeNoReading
	outcomeAlreadyExists
	outcomeNoTariff
	outcomeInactive
	outcomeError
)

type Service struct {
	customers      CustomerLister
	biller         Biller
	publisher      events.Publisher
	workerPool     WorkerPoolI
	workers        int
	updateInterval time.Duration
	inFlight       sync.Map
	scheduler      sync.WaitGroup
	now            func() time.Time
}

func New(cfg *config.Config, customers CustomerLister, biller Biller, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	return &Service{
		customers:      customers,
		biller:         biller,
		publisher:      publisher,
		workerPool:     NewWorkerPool(cfg.BillWorkers),
		workers:        max(cfg.BillWorkers, 1),
		updateInterval: cfg.BillScheduleInterval,
		now:            time.Now,
	}
}

// Start runs the scheduled bill run for the previous calendar month. A zero
// interval disables the schedule.
func (s *Service) Start(ctx context.Context) {
	if s.updateInterval <= 0 {
		zap.L().Info("Scheduled bill run disabled")
		return
	}
	zap.L().Info("Bill run scheduler started", zap.Duration("interval", s.updateInterval))
	s.scheduler.Add(1)
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	defer s.scheduler.Done()
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping bill run scheduler")
			return
		case <-ticker.C:
			if _, err := s.GenerateBillsForPeriod(ctx, period.Previous(s.now())); err != nil {
				zap.L().Error("Scheduled bill run failed", zap.Error(err))
			}
		}
	}
}

// Stop waits for the scheduler and queued bills to finish. The context given
// to Start must already be canceled.
func (s *Service) Stop() {
	s.scheduler.Wait()
	s.workerPool.Close()
}

// GenerateBillsForPeriod bills every active customer for month. It fails only
// when the customer list cannot be read; per-customer problems end up in the
// summary.
func (s *Service) GenerateBillsForPeriod(ctx context.Context, month time.Time) (*Summary, error) {
	month = period.Month(month)
	started := s.now()
	runID := uuid.NewString()

	ids, err := s.customers.ListActiveIDs(ctx)
	if err != nil {
		zap.L().Error("Failed to list active customers", zap.String("runID", runID), zap.Error(err))
		return nil, err
	}

	summary := &Summary{
		RunID:          runID,
		BillingMonth:   period.Format(month),
		TotalProcessed: len(ids),
	}
	var mu sync.Mutex
	record := func(customerID int, o outcome, err error) {
		mu.Lock()
		defer mu.Unlock()
		summary.add(customerID, o, err)
	}

	// at most one waiting submitter per worker
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, id := range ids {
		id := id
		key := inFlightKey{customerID: id, month: month}
		if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
			record(id, outcomeAlreadyExists, nil)
			continue
		}

		g.Go(func() error {
			done := make(chan struct{})
			err := s.workerPool.AddTask(ctx, func() error {
				defer close(done)
				defer s.inFlight.Delete(key)
				o, err := s.billOne(ctx, id, month)
				record(id, o, err)
				return nil
			})
			if err != nil {
				s.inFlight.Delete(key)
				record(id, outcomeError, err)
				return nil
			}
			<-done
			return nil
		})
	}
	_ = g.Wait()

	summary.Duration = s.now().Sub(started)
	summary.DurationMS = summary.Duration.Milliseconds()
	summary.Failed = summary.TotalProcessed - summary.BillsGenerated

	zap.L().Info("Bulk bill generation completed",
		zap.String("runID", summary.RunID),
		zap.String("billingMonth", summary.BillingMonth),
		zap.Int("totalProcessed", summary.TotalProcessed),
		zap.Int("billsGenerated", summary.BillsGenerated),
		zap.Int("failed", summary.Failed),
		zap.Int("noReading", summary.Skipped.NoReading),
		zap.Int("alreadyExists", summary.Skipped.AlreadyExists),
		zap.Int("noTariff", summary.Skipped.NoTariff),
		zap.Int("inactive", summary.Skipped.Inactive),
		zap.Int("zeroConsumption", summary.Skipped.ZeroConsumption),
		zap.Duration("duration", summary.Duration),
	)
	if err := s.publisher.Publish(ctx, events.New(events.BillRunCompleted, summary)); err != nil {
		zap.L().Warn("Failed to publish bill run event", zap.String("runID", runID), zap.Error(err))
	}
	return summary, nil
}

type inFlightKey struct {
	customerID int
	month      time.Time
}

func (s *Service) billOne(ctx context.Context, customerID int, month time.Time) (outcome, error) {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryInterval))

	var bill *domain.Bill
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		bill, err = s.biller.BillCustomer(ctx, customerID, month, domain.BillIssued)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			zap.L().Warn("Store unavailable, retrying customer", zap.Int("customerID", customerID))
			return retry.RetryableError(err)
		}
		return err
	})
	return classify(bill, err), err
}

func classify(bill *domain.Bill, err error) outcome {
	switch {
	case err == nil && bill.UnitsConsumed.IsZero():
		return outcomeZeroConsumption
	case err == nil:
		return outcomeGenerated
	case errors.Is(err, billservice.ErrNoReading):
		return outcomeNoReading
	case errors.Is(err, domain.ErrConflict):
		return outcomeAlreadyExists
	case errors.Is(err, domain.ErrNoApplicableTariff):
		return outcomeNoTariff
	case errors.Is(err, billservice.ErrCustomerInactive), errors.Is(err, billservice.ErrCustomerNotFound):
		return outcomeInactive
	default:
		return outcomeError
	}
}

func (s *Summary) add(customerID int, o outcome, err error) {
	switch o {
	case outcomeGenerated:
		s.BillsGenerated++
	case outcomeZeroConsumption:
		s.BillsGenerated++
		s.Skipped.ZeroConsumption++
	case outcomeNoReading:
		s.Skipped.NoReading++
	case outcomeAlreadyExists:
		s.Skipped.AlreadyExists++
	case outcomeNoTariff:
		s.Skipped.NoTariff++
	case outcomeInactive:
		s.Skipped.Inactive++
	default:
		zap.L().Error("Failed to bill customer", zap.Int("customerID", customerID), zap.Error(err))
		if len(s.Failures) < maxFailureItems {
			reason := "unknown error"
			if err != nil {
				reason = err.Error()
			}
			s.Failures = append(s.Failures, Failure{CustomerID: customerID, Reason: reason})
		}
	}
}
