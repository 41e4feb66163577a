package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/schoolcloud/student-records/internal/model"
)

// StudentRepository handles student data access against the students table.
// Every method issues exactly one parameterized CQL statement, so the driver
// can prepare and cache the plan and values never touch the query text.
type StudentRepository struct {
	session  *gocql.Session
	keyspace string
}

// NewStudentRepository creates a new StudentRepository. The session is not
// bound to a keyspace, so queries qualify the table explicitly.
func NewStudentRepository(session *gocql.Session, keyspace string) *StudentRepository {
	return &StudentRepository{session: session, keyspace: keyspace}
}

func (r *StudentRepository) table() string {
	return r.keyspace + ".students"
}

// Create inserts a full student row.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.session.Query(
		fmt.Sprintf(`INSERT INTO %s (student_id, name, age, gender, department, email, admission_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`, r.table()),
		gocql.UUID(s.ID), s.Name, s.Age, s.Gender, s.Department, s.Email, s.AdmissionDate,
	).WithContext(ctx).Exec()
	if err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID retrieves a student by primary key. A missing row is reported as
// model.ErrStudentNotFound, never as a driver error.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var (
		sid gocql.UUID
		s   model.Student
	)
	err := r.session.Query(
		fmt.Sprintf(`SELECT student_id, name, age, gender, department, email, admission_date
		 FROM %s WHERE student_id = ?`, r.table()),
		gocql.UUID(id),
	).WithContext(ctx).Scan(&sid, &s.Name, &s.Age, &s.Gender, &s.Department, &s.Email, &s.AdmissionDate)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, model.ErrStudentNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	s.ID = uuid.UUID(sid)
	return &s, nil
}

// UpdateEmail changes the email column of an existing student. The statement
// is a lightweight transaction so that a missing row surfaces as
// model.ErrStudentNotFound instead of Cassandra's silent upsert.
func (r *StudentRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	applied, err := r.session.Query(
		fmt.Sprintf(`UPDATE %s SET email = ? WHERE student_id = ? IF EXISTS`, r.table()),
		email, gocql.UUID(id),
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return translateError(err)
	}
	if !applied {
		return model.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student by primary key. Deleting an absent id succeeds:
// the store writes a tombstone either way and does not report whether the
// row existed.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.session.Query(
		fmt.Sprintf(`DELETE FROM %s WHERE student_id = ?`, r.table()),
		gocql.UUID(id),
	).WithContext(ctx).Exec()
	if err != nil {
		return translateError(err)
	}
	return nil
}

// ListAll retrieves every student row. The result is unordered (the store
// returns rows in partitioner order, not key order) and unpaginated; the
// iterator streams pages from the cluster as it is consumed.
func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	iter := r.session.Query(
		fmt.Sprintf(`SELECT student_id, name, age, gender, department, email, admission_date FROM %s`, r.table()),
	).WithContext(ctx).Iter()

	students := []model.Student{}
	var (
		sid gocql.UUID
		s   model.Student
	)
	for iter.Scan(&sid, &s.Name, &s.Age, &s.Gender, &s.Department, &s.Email, &s.AdmissionDate) {
		s.ID = uuid.UUID(sid)
		students = append(students, s)
		s = model.Student{}
	}
	if err := iter.Close(); err != nil {
		return nil, translateError(err)
	}
	return students, nil
}
