package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/schoolcloud/student-records/internal/model"
	"github.com/schoolcloud/student-records/internal/service"
)

// stubStore satisfies service.StudentStore without a cluster; lookups always
// miss and writes always succeed.
type stubStore struct{}

func (stubStore) Create(context.Context, *model.Student) error { return nil }
func (stubStore) GetByID(context.Context, uuid.UUID) (*model.Student, error) {
	return nil, model.ErrStudentNotFound
}
func (stubStore) UpdateEmail(context.Context, uuid.UUID, string) error { return nil }
func (stubStore) Delete(context.Context, uuid.UUID) error              { return nil }
func (stubStore) ListAll(context.Context) ([]model.Student, error)     { return nil, nil }

func TestPromptSticksAtEOF(t *testing.T) {
	var out strings.Builder
	c := newConsole(strings.NewReader(""), &out)

	for i := 0; i < 3; i++ {
		if got := c.prompt("x: "); got != "" {
			t.Fatalf("prompt after EOF = %q, want empty", got)
		}
	}
	if !c.eof {
		t.Error("console did not record EOF")
	}
}

func TestRunConsoleExitsOnEOF(t *testing.T) {
	var out strings.Builder
	c := newConsole(strings.NewReader(""), &out)

	runConsole(context.Background(), c, service.NewStudentService(stubStore{}))

	if got := strings.Count(out.String(), "Student Records"); got != 1 {
		t.Errorf("menu printed %d times, want 1 (loop must stop at EOF)", got)
	}
	if !strings.Contains(out.String(), "Bye.") {
		t.Error("console did not announce exit on EOF")
	}
}

func TestRunConsoleExitsAfterCommandThenEOF(t *testing.T) {
	var out strings.Builder
	c := newConsole(strings.NewReader("5\n"), &out)

	runConsole(context.Background(), c, service.NewStudentService(stubStore{}))

	if !strings.Contains(out.String(), "Total: 0") {
		t.Errorf("list command did not run; output:\n%s", out.String())
	}
	if got := strings.Count(out.String(), "Student Records"); got != 2 {
		t.Errorf("menu printed %d times, want 2 (once per prompt, then exit)", got)
	}
}

func TestRunConsoleExplicitExit(t *testing.T) {
	var out strings.Builder
	c := newConsole(strings.NewReader("6\n"), &out)

	runConsole(context.Background(), c, service.NewStudentService(stubStore{}))

	if !strings.Contains(out.String(), "Bye.") {
		t.Error("exit choice did not end the session")
	}
}
