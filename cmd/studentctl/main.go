package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schoolcloud/student-records/internal/config"
	"github.com/schoolcloud/student-records/internal/database"
	"github.com/schoolcloud/student-records/internal/logger"
	"github.com/schoolcloud/student-records/internal/model"
	"github.com/schoolcloud/student-records/internal/repository"
	"github.com/schoolcloud/student-records/internal/service"
)

const menu = `
Student Records — Cassandra console
  1) Insert student
  2) Get student by id
  3) Update student email
  4) Delete student
  5) List students
  6) Exit
`

// listDisplayCap bounds console output only; the ListAll operation itself
// is uncapped.
const listDisplayCap = 100

// console wraps stdin reading. Once the scanner is exhausted, eof sticks
// and every later prompt returns "" immediately, so the loop can wind down
// instead of spinning on an empty choice.
type console struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewScanner(in), out: out}
}

func (c *console) prompt(label string) string {
	if c.eof {
		return ""
	}
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	session, err := database.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Cassandra")
	}
	defer session.Close()

	if err := database.EnsureSchema(session, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap schema")
	}

	studentRepo := repository.NewStudentRepository(session, cfg.Keyspace)
	studentService := service.NewStudentService(studentRepo)

	runConsole(context.Background(), newConsole(os.Stdin, os.Stdout), studentService)
}

// runConsole drives the menu until the user exits or input runs out.
func runConsole(ctx context.Context, c *console, svc *service.StudentService) {
	for {
		c.printf("%s", menu)
		choice := c.prompt("Enter choice: ")
		if c.eof {
			c.printf("Bye.\n")
			return
		}

		switch choice {
		case "1":
			insertStudent(ctx, c, svc)
		case "2":
			getStudent(ctx, c, svc)
		case "3":
			updateEmail(ctx, c, svc)
		case "4":
			deleteStudent(ctx, c, svc)
		case "5":
			listStudents(ctx, c, svc)
		case "6", "q", "exit":
			c.printf("Bye.\n")
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func insertStudent(ctx context.Context, c *console, svc *service.StudentService) {
	req := &model.CreateStudentRequest{
		Name:       c.prompt("Name: "),
		Gender:     c.prompt("Gender: "),
		Department: c.prompt("Department: "),
		Email:      c.prompt("Email: "),
	}

	if raw := c.prompt("Age: "); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			c.printf("Age must be a number.\n")
			return
		}
		req.Age = age
	}

	if raw := c.prompt("Admission date (YYYY-MM-DD, blank for today): "); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.printf("Date must look like 2024-08-01.\n")
			return
		}
		req.AdmissionDate = date
	}

	if c.eof {
		return
	}

	student, err := svc.Create(ctx, req)
	if err != nil {
		c.printf("Insert failed: %v\n", err)
		return
	}
	c.printf("Inserted student with id: %s\n", student.ID)
}

func getStudent(ctx context.Context, c *console, svc *service.StudentService) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	student, err := svc.GetByID(ctx, id)
	if errors.Is(err, model.ErrStudentNotFound) {
		c.printf("No record found.\n")
		return
	}
	if err != nil {
		c.printf("Lookup failed: %v\n", err)
		return
	}
	printStudent(c, student)
}

func updateEmail(ctx context.Context, c *console, svc *service.StudentService) {
	id, ok := promptID(c)
	if !ok {
		return
	}
	newEmail := c.prompt("New email: ")
	if c.eof {
		return
	}

	err := svc.UpdateEmail(ctx, id, newEmail)
	if errors.Is(err, model.ErrStudentNotFound) {
		c.printf("No record found.\n")
		return
	}
	if err != nil {
		c.printf("Update failed: %v\n", err)
		return
	}
	c.printf("Updated email.\n")
}

func deleteStudent(ctx context.Context, c *console, svc *service.StudentService) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	if err := svc.Delete(ctx, id); err != nil {
		c.printf("Delete failed: %v\n", err)
		return
	}
	c.printf("Deleted (if existed).\n")
}

func listStudents(ctx context.Context, c *console, svc *service.StudentService) {
	students, err := svc.ListAll(ctx)
	if err != nil {
		c.printf("List failed: %v\n", err)
		return
	}

	shown := 0
	for i := range students {
		if shown == listDisplayCap {
			c.printf("... and %d more\n", len(students)-shown)
			break
		}
		c.printf("------------------------------\n")
		printStudent(c, &students[i])
		shown++
	}
	c.printf("Total: %d\n", len(students))
}

func promptID(c *console) (uuid.UUID, bool) {
	raw := c.prompt("Student id: ")
	if c.eof {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.printf("Invalid UUID format.\n")
		return uuid.UUID{}, false
	}
	return id, true
}

func printStudent(c *console, s *model.Student) {
	c.printf("id             : %s\n", s.ID)
	c.printf("name           : %s\n", s.Name)
	c.printf("age            : %d\n", s.Age)
	c.printf("gender         : %s\n", s.Gender)
	c.printf("department     : %s\n", s.Department)
	c.printf("email          : %s\n", s.Email)
	c.printf("admission date : %s\n", s.AdmissionDate.Format("2006-01-02"))
}
