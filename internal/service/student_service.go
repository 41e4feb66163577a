package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schoolcloud/student-records/internal/model"
	"github.com/schoolcloud/student-records/internal/validator"
)

// StudentStore is the persistence contract the service depends on. The
// Cassandra-backed repository satisfies it; tests substitute an in-memory
// fake.
type StudentStore interface {
	Create(ctx context.Context, s *model.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]model.Student, error)
}

// StudentService handles student business logic.
type StudentService struct {
	store StudentStore
}

// NewStudentService creates a new StudentService.
func NewStudentService(store StudentStore) *StudentService {
	return &StudentService{store: store}
}

// Create validates the request, assigns a fresh identifier and admission
// date, and writes the full record. The generated identifier is returned on
// the stored student; no uniqueness check is made beyond random generation.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	if fields := validator.Struct(req); fields != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, validator.Message(fields))
	}

	admitted := req.AdmissionDate
	if admitted.IsZero() {
		admitted = time.Now()
	}
	// The admission_date column is a plain date; normalize to the UTC
	// calendar date so the model value matches what a read returns.
	year, month, day := admitted.UTC().Date()
	admitted = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	student := &model.Student{
		ID:            uuid.New(),
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		Department:    req.Department,
		Email:         req.Email,
		AdmissionDate: admitted,
	}

	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetByID retrieves a student by identifier. A missing student is reported
// as model.ErrStudentNotFound.
func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return s.store.GetByID(ctx, id)
}

// UpdateEmail changes a student's email address. The new address is only
// checked for presence, not format, matching the record system this
// replaces. Reports model.ErrStudentNotFound for an unknown identifier.
func (s *StudentService) UpdateEmail(ctx context.Context, id uuid.UUID, newEmail string) error {
	if strings.TrimSpace(newEmail) == "" {
		return fmt.Errorf("%w: email must not be empty", model.ErrInvalidInput)
	}
	return s.store.UpdateEmail(ctx, id, newEmail)
}

// Delete removes a student by identifier. Idempotent: deleting an absent
// identifier succeeds.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// ListAll retrieves every student, in no particular order. Returns an empty
// slice (not nil) when the table is empty.
func (s *StudentService) ListAll(ctx context.Context) ([]model.Student, error) {
	students, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}
