// Package store provides data storage interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/vyrodovalexey/employee-api/internal/model"
)

// Store errors.
var (
	ErrNotFound    = errors.New("employee not found")
	ErrNilEmployee = errors.New("employee cannot be nil")
)

// Store defines the interface for employee storage operations.
type Store interface {
	// List returns all employees in insertion order.
	List(ctx context.Context) ([]model.Employee, error)

	// Get retrieves an employee by its ID.
	Get(ctx context.Context, id int64) (*model.Employee, error)

	// Create stores a new employee under the next free ID and returns the stored record.
	// Any ID set on the candidate is ignored.
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)

	// Update overwrites the descriptive fields of an existing employee.
	// It never creates a record.
	Update(ctx context.Context, id int64, patch *model.Employee) (*model.Employee, error)

	// Delete removes every employee with the given ID. A missing ID is not an error.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored employees.
	Count(ctx context.Context) (int, error)
}
