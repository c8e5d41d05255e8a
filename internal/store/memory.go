package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/vyrodovalexey/employee-api/internal/model"
)

// MemoryStore implements Store with an ordered in-memory slice.
// IDs come from a counter that only moves forward, so deleted IDs are never reused.
type MemoryStore struct {
	mu        sync.RWMutex
	employees []model.Employee
	nextID    int64
}

// NewMemoryStore creates a MemoryStore holding the seed employees (IDs 1 and 2).
func NewMemoryStore() *MemoryStore {
	s := NewEmptyMemoryStore()
	for _, seed := range model.SeedEmployees() {
		s.insert(seed)
	}
	return s
}

// NewEmptyMemoryStore creates a MemoryStore with no records. The first ID it assigns is 1.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{
		employees: make([]model.Employee, 0),
		nextID:    1,
	}
}

// List returns all employees from the store.
func (s *MemoryStore) List(ctx context.Context) ([]model.Employee, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list employees: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	employees := make([]model.Employee, len(s.employees))
	copy(employees, s.employees)

	return employees, nil
}

// Get retrieves an employee by its ID.
func (s *MemoryStore) Get(ctx context.Context, id int64) (*model.Employee, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get employee: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	employee := s.employees[idx]
	return &employee, nil
}

// Create adds a new employee to the store and returns it with its assigned ID.
func (s *MemoryStore) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("create employee: %w", ctx.Err())
	default:
	}

	if employee == nil {
		return nil, fmt.Errorf("create employee: %w", ErrNilEmployee)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.insert(*employee)
	return &created, nil
}

// Update modifies an existing employee in place, keeping its ID and position.
func (s *MemoryStore) Update(ctx context.Context, id int64, patch *model.Employee) (*model.Employee, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("update employee: %w", ctx.Err())
	default:
	}

	if patch == nil {
		return nil, fmt.Errorf("update employee: %w", ErrNilEmployee)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	existing := &s.employees[idx]
	existing.FirstName = patch.FirstName
	existing.LastName = patch.LastName
	existing.Email = patch.Email
	existing.Department = patch.Department

	updated := *existing
	return &updated, nil
}

// Delete removes all employees with the given ID.
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("delete employee: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.employees[:0]
	for _, employee := range s.employees {
		if employee.ID != id {
			kept = append(kept, employee)
		}
	}
	clear(s.employees[len(kept):])
	s.employees = kept

	return nil
}

// Count returns the number of employees in the store.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("count employees: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.employees), nil
}

// insert assigns the next ID and appends. Caller must hold the write lock
// (or own the store exclusively, as constructors do).
func (s *MemoryStore) insert(employee model.Employee) model.Employee {
	employee.ID = s.nextID
	s.nextID++
	s.employees = append(s.employees, employee)
	return employee
}

// indexOf returns the position of the first employee with id, or -1.
func (s *MemoryStore) indexOf(id int64) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}
