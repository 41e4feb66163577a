package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Domain error taxonomy. ErrStudentNotFound is an expected outcome of
// lookups, not a fault; the other three indicate a rejected or failed
// operation.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrWriteFailed      = errors.New("write failed")
	ErrInvalidInput     = errors.New("invalid input")
)

// Student represents one row of the students table. The ID is assigned at
// creation time and never changes afterwards; every other field may be empty.
type Student struct {
	ID            uuid.UUID `json:"student_id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	Department    string    `json:"department"`
	Email         string    `json:"email"`
	AdmissionDate time.Time `json:"admission_date"`
}

// CreateStudentRequest is the payload for registering a new student.
// Email format checking is stricter than the store requires; see DESIGN.md.
type CreateStudentRequest struct {
	Name          string    `json:"name" validate:"required,min=1,max=100"`
	Age           int       `json:"age" validate:"gte=0,lte=150"`
	Gender        string    `json:"gender" validate:"max=20"`
	Department    string    `json:"department" validate:"max=100"`
	Email         string    `json:"email" validate:"omitempty,email"`
	AdmissionDate time.Time `json:"admission_date"`
}
