package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vyrodovalexey/employee-api/internal/metrics"
	"github.com/vyrodovalexey/employee-api/internal/model"
)

// InstrumentedStore wraps a Store and records Prometheus metrics for every call.
type InstrumentedStore struct {
	next    Store
	metrics *metrics.Metrics

	// sizeMu orders Count+Set pairs so the gauge ends on the latest size.
	sizeMu sync.Mutex
}

// NewInstrumentedStore wraps next. The stored-records gauge is primed from
// the current size so seed records are visible before the first write.
func NewInstrumentedStore(ctx context.Context, next Store, m *metrics.Metrics) (*InstrumentedStore, error) {
	s := &InstrumentedStore{
		next:    next,
		metrics: m,
	}

	if err := s.refreshSize(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// List returns all employees from the wrapped store.
func (s *InstrumentedStore) List(ctx context.Context) ([]model.Employee, error) {
	start := time.Now()
	employees, err := s.next.List(ctx)
	s.observe("list", start, err)
	return employees, err
}

// Get retrieves an employee from the wrapped store.
func (s *InstrumentedStore) Get(ctx context.Context, id int64) (*model.Employee, error) {
	start := time.Now()
	employee, err := s.next.Get(ctx, id)
	s.observe("get", start, err)
	return employee, err
}

// Create adds an employee to the wrapped store.
func (s *InstrumentedStore) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	start := time.Now()
	created, err := s.next.Create(ctx, employee)
	s.observe("create", start, err)
	if err == nil {
		s.metrics.EmployeesCreated.Inc()
		_ = s.refreshSize(ctx)
	}
	return created, err
}

// Update modifies an employee in the wrapped store.
func (s *InstrumentedStore) Update(ctx context.Context, id int64, patch *model.Employee) (*model.Employee, error) {
	start := time.Now()
	updated, err := s.next.Update(ctx, id, patch)
	s.observe("update", start, err)
	return updated, err
}

// Delete removes an employee from the wrapped store.
func (s *InstrumentedStore) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.observe("delete", start, err)
	if err == nil {
		_ = s.refreshSize(ctx)
	}
	return err
}

// Count returns the size of the wrapped store.
func (s *InstrumentedStore) Count(ctx context.Context) (int, error) {
	start := time.Now()
	n, err := s.next.Count(ctx)
	s.observe("count", start, err)
	return n, err
}

// refreshSize sets the stored-records gauge from the wrapped store's size.
func (s *InstrumentedStore) refreshSize(ctx context.Context) error {
	s.sizeMu.Lock()
	defer s.sizeMu.Unlock()

	n, err := s.next.Count(ctx)
	if err != nil {
		return err
	}
	s.metrics.EmployeesStored.Set(float64(n))
	return nil
}

func (s *InstrumentedStore) observe(operation string, start time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	s.metrics.ObserveOperation(operation, outcome, time.Since(start).Seconds())
}
