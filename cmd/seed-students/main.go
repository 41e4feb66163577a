package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/schoolcloud/student-records/internal/config"
	"github.com/schoolcloud/student-records/internal/database"
	"github.com/schoolcloud/student-records/internal/logger"
	"github.com/schoolcloud/student-records/internal/model"
	"github.com/schoolcloud/student-records/internal/repository"
	"github.com/schoolcloud/student-records/internal/service"
)

var names = []string{
	"Asha Verma", "Budi Santoso", "Chen Wei", "Diego Alvarez", "Elena Petrova",
	"Fatima Zahra", "Grace Okafor", "Hiro Tanaka", "Ines Moreau", "Jonas Berg",
	"Kavya Nair", "Liam O'Connor", "Mei Lin", "Noah Fischer", "Olga Ivanova",
	"Priya Sharma", "Quentin Roux", "Rosa Mendes", "Samuel Adeyemi", "Tara Singh",
	"Umar Farouk", "Vera Kovac", "Wen Zhang", "Yusuf Demir", "Zanele Dube",
}

var departments = []string{"CS", "EE", "ME", "CE", "MATH", "PHY", "BIO", "ECON"}

var genders = []string{"F", "M"}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

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

	fmt.Printf("=== Seeding %d Students ===\n", len(names))

	seeded := 0
	for i, name := range names {
		req := &model.CreateStudentRequest{
			Name:       name,
			Age:        17 + rand.Intn(9),
			Gender:     genders[i%len(genders)],
			Department: departments[i%len(departments)],
			Email:      emailFor(name),
			// Spread admissions over the last four years.
			AdmissionDate: time.Now().UTC().AddDate(-rand.Intn(4), 0, -rand.Intn(300)),
		}

		student, err := studentService.Create(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to seed student")
			continue
		}

		seeded++
		if seeded%10 == 0 {
			fmt.Printf("Seeded %d students...\n", seeded)
		}
		log.Debug().Str("id", student.ID.String()).Str("name", name).Msg("student seeded")
	}

	fmt.Printf("Done. Seeded %d/%d students into %s.students.\n", seeded, len(names), cfg.Keyspace)
}

// emailFor derives a plausible address from a name: "Asha Verma" →
// "asha.verma@example.edu".
func emailFor(name string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	local = strings.ReplaceAll(local, "'", "")
	return local + "@example.edu"
}
