package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEmployee_Validate(t *testing.T) {
	tests := []struct {
		name     string
		employee Employee
		wantErr  error
	}{
		{
			name: "valid employee",
			employee: Employee{
				FirstName:  "Amy",
				LastName:   "Lee",
				Email:      "amy@x.com",
				Department: "Sales",
			},
			wantErr: nil,
		},
		{
			name: "empty department is allowed",
			employee: Employee{
				FirstName: "Amy",
				LastName:  "Lee",
				Email:     "amy@x.com",
			},
			wantErr: nil,
		},
		{
			name:     "empty first name",
			employee: Employee{LastName: "Lee", Email: "amy@x.com"},
			wantErr:  ErrEmptyFirstName,
		},
		{
			name:     "whitespace first name",
			employee: Employee{FirstName: "   ", LastName: "Lee", Email: "amy@x.com"},
			wantErr:  ErrEmptyFirstName,
		},
		{
			name:     "empty last name",
			employee: Employee{FirstName: "Amy", Email: "amy@x.com"},
			wantErr:  ErrEmptyLastName,
		},
		{
			name:     "missing email",
			employee: Employee{FirstName: "Amy", LastName: "Lee"},
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "malformed email",
			employee: Employee{FirstName: "Amy", LastName: "Lee", Email: "not-an-email"},
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "display name form is rejected",
			employee: Employee{FirstName: "Amy", LastName: "Lee", Email: "Amy Lee <amy@x.com>"},
			wantErr:  ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.employee.Validate()

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmployee_ValidateDetails(t *testing.T) {
	tests := []struct {
		name        string
		employee    Employee
		wantDetails string
	}{
		{
			name:        "all required fields missing",
			employee:    Employee{},
			wantDetails: "firstName: required; lastName: required; email: required",
		},
		{
			name:        "blank last name and malformed email",
			employee:    Employee{FirstName: "Amy", LastName: " ", Email: "amy"},
			wantDetails: "lastName: notblank; email: email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.employee.Validate()

			// Assert
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if got := verr.Details(); got != tt.wantDetails {
				t.Errorf("Details() = %q, want %q", got, tt.wantDetails)
			}
		})
	}
}

func TestEmployee_JSONFieldNames(t *testing.T) {
	// Arrange
	employee := Employee{
		ID:         3,
		FirstName:  "Amy",
		LastName:   "Lee",
		Email:      "amy@x.com",
		Department: "Sales",
	}

	// Act
	data, err := json.Marshal(employee)

	// Assert
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"id":3,"firstName":"Amy","lastName":"Lee","email":"amy@x.com","department":"Sales"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestSeedEmployees(t *testing.T) {
	// Act
	seeds := SeedEmployees()

	// Assert
	if len(seeds) != 2 {
		t.Fatalf("SeedEmployees() returned %d records, want 2", len(seeds))
	}
	if seeds[0].FirstName != "John" || seeds[0].Department != "Engineering" {
		t.Errorf("first seed = %+v, want John Doe in Engineering", seeds[0])
	}
	if seeds[1].FirstName != "Jane" || seeds[1].Department != "Marketing" {
		t.Errorf("second seed = %+v, want Jane Smith in Marketing", seeds[1])
	}
	for _, seed := range seeds {
		if seed.ID != 0 {
			t.Errorf("seed %s has preassigned ID %d", seed.FirstName, seed.ID)
		}
	}

	// Returned slices are independent.
	seeds[0].FirstName = "Changed"
	if SeedEmployees()[0].FirstName != "John" {
		t.Error("SeedEmployees() should return a fresh slice on every call")
	}
}

func TestAPIResponse_JSON(t *testing.T) {
	tests := []struct {
		name     string
		response APIResponse
		want     string
	}{
		{
			name:     "with version",
			response: NewAPIResponse("Employee API", "1.0.0"),
			want:     `{"message":"Employee API","version":"1.0.0"}`,
		},
		{
			name:     "without version",
			response: NewMessageResponse("Employee deleted"),
			want:     `{"message":"Employee deleted"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			data, err := json.Marshal(tt.response)

			// Assert
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestNewEmployeeEvent(t *testing.T) {
	// Arrange
	employee := &Employee{ID: 7, FirstName: "Amy"}

	// Act
	created := NewEmployeeEvent(EventCreated, employee.ID, employee)
	deleted := NewEmployeeEvent(EventDeleted, 7, nil)

	// Assert
	if created.Type != EventCreated || created.ID != 7 || created.Employee != employee {
		t.Errorf("created event = %+v", created)
	}
	if created.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
	if created.Timestamp.Location().String() != "UTC" {
		t.Errorf("Timestamp location = %s, want UTC", created.Timestamp.Location())
	}

	data, err := json.Marshal(deleted)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), `"employee"`) {
		t.Errorf("deleted event should omit employee, got %s", data)
	}
}
