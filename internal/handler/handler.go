// Package handler provides HTTP request handlers for the employee API.
package handler

import "github.com/vyrodovalexey/employee-api/internal/model"

// Service identity reported by the API root and the health check.
const (
	ServiceName = "Employee API"
	Version     = "1.0.0"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Notifier receives employee change events after successful mutations.
type Notifier interface {
	Publish(event model.EmployeeEvent)
}

type nopNotifier struct{}

func (nopNotifier) Publish(model.EmployeeEvent) {}
