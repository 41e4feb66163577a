package database

import (
	"fmt"
	"strings"

	"github.com/gocql/gocql"
	"github.com/rs/zerolog"
	"github.com/schoolcloud/student-records/internal/config"
)

// NewSession connects to the Cassandra cluster and returns a session shared
// by all operations. The session manages its own connection pool, is safe
// for concurrent use, and must be closed by the caller at shutdown.
//
// The session is not bound to a keyspace so that EnsureSchema can create it;
// all queries address tables by qualified name.
func NewSession(cfg *config.Config, log zerolog.Logger) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.NumConns = cfg.NumConns
	cluster.Timeout = cfg.Timeout
	cluster.Consistency = parseConsistency(cfg.Consistency, log)

	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	log.Info().
		Strs("hosts", cfg.Hosts).
		Int("port", cfg.Port).
		Str("consistency", cluster.Consistency.String()).
		Int("num_conns", cfg.NumConns).
		Msg("Cassandra connected")

	return session, nil
}

// EnsureSchema creates the keyspace and the students table if they do not
// exist. Both statements are idempotent, so running this on every startup
// is safe. The replication factor only applies when the keyspace is first
// created; changing it later is a cluster-administration task.
func EnsureSchema(session *gocql.Session, cfg *config.Config, log zerolog.Logger) error {
	keyspaceCQL := fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
		cfg.Keyspace, cfg.ReplicationFactor,
	)
	if err := session.Query(keyspaceCQL).Exec(); err != nil {
		return fmt.Errorf("create keyspace %s: %w", cfg.Keyspace, err)
	}

	tableCQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.students (
		student_id uuid PRIMARY KEY,
		name text,
		age int,
		gender text,
		department text,
		email text,
		admission_date date
	)`, cfg.Keyspace)
	if err := session.Query(tableCQL).Exec(); err != nil {
		return fmt.Errorf("create table %s.students: %w", cfg.Keyspace, err)
	}

	log.Info().
		Str("keyspace", cfg.Keyspace).
		Int("replication_factor", cfg.ReplicationFactor).
		Msg("schema ready")

	return nil
}

// parseConsistency maps a config string to a gocql consistency level,
// falling back to quorum on unknown input.
func parseConsistency(raw string, log zerolog.Logger) gocql.Consistency {
	var c gocql.Consistency
	if err := c.UnmarshalText([]byte(strings.ToUpper(raw))); err != nil {
		log.Warn().Str("consistency", raw).Msg("unknown consistency level, using quorum")
		return gocql.Quorum
	}
	return c
}
