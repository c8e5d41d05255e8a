// Package model defines data structures used throughout the application.
package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validation errors for Employee.
var (
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
	ErrInvalidEmail   = errors.New("email is not a valid address")
)

// fieldErrors maps struct fields to the sentinel reported when they fail.
var fieldErrors = map[string]error{
	"FirstName": ErrEmptyFirstName,
	"LastName":  ErrEmptyLastName,
	"Email":     ErrInvalidEmail,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	// Report JSON names so error details match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Employee is a single employee record.
// ID is assigned by the store and never changes once set.
type Employee struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName" validate:"required,notblank"`
	LastName   string `json:"lastName" validate:"required,notblank"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department"`
}

// ValidationError is returned by Validate. It unwraps to the sentinel of the
// first failing field and lists every failed rule.
type ValidationError struct {
	err    error
	Fields []string
}

func (e *ValidationError) Error() string { return e.err.Error() }

func (e *ValidationError) Unwrap() error { return e.err }

// Details joins the failed rules as "field: rule" pairs.
func (e *ValidationError) Details() string {
	return strings.Join(e.Fields, "; ")
}

// Validate checks the descriptive fields of the Employee.
// The store never calls it; the REST handler only does in strict mode.
func (e *Employee) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate employee: %w", err)
	}

	verr := &ValidationError{Fields: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if verr.err == nil {
			verr.err = fieldErrors[fe.StructField()]
		}
		verr.Fields = append(verr.Fields, fe.Field()+": "+fe.Tag())
	}
	if verr.err == nil {
		verr.err = errors.New("employee is invalid")
	}

	return verr
}

// SeedEmployees returns the records present when the service starts.
func SeedEmployees() []Employee {
	return []Employee{
		{
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@example.com",
			Department: "Engineering",
		},
		{
			FirstName:  "Jane",
			LastName:   "Smith",
			Email:      "jane.smith@example.com",
			Department: "Marketing",
		},
	}
}
