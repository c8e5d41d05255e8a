package model

import "time"

// EventType identifies the kind of change an EmployeeEvent describes.
type EventType string

// Employee change event types.
const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// EmployeeEvent is pushed to change-feed subscribers after a successful mutation.
// Employee is nil for deletions.
type EmployeeEvent struct {
	Type      EventType `json:"type"`
	ID        int64     `json:"id"`
	Employee  *Employee `json:"employee,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEmployeeEvent creates an event stamped with the current UTC time.
func NewEmployeeEvent(eventType EventType, id int64, employee *Employee) EmployeeEvent {
	return EmployeeEvent{
		Type:      eventType,
		ID:        id,
		Employee:  employee,
		Timestamp: time.Now().UTC(),
	}
}
