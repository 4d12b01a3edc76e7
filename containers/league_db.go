package containers

import (
	"context"
	"log"
	"time"

	"github.com/HFC06Atyrau/HFC/schema"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	leagueImage    = "postgres:16.3-alpine"
	leagueDB       = "league"
	leagueUser     = "league"
	leaguePassword = "secret"

	// postgres logs readiness twice: once for the init scripts, once for real.
	readyLog         = "database system is ready to accept connections"
	readyOccurrences = 2
	startupTimeout   = 30 * time.Second
)

// LeagueDB is a throwaway postgres with the league schema applied.
type LeagueDB struct {
	container *postgres.PostgresContainer
	connStr   string
}

// NewLeagueDB starts the container and applies schema.sql as an init script.
// It exits the test binary when docker cannot provide the database.
func NewLeagueDB() *LeagueDB {
	ctx, cancel := context.WithTimeout(context.Background(), 2*startupTimeout)
	defer cancel()

	container, err := postgres.Run(ctx, leagueImage,
		postgres.WithDatabase(leagueDB),
		postgres.WithUsername(leagueUser),
		postgres.WithPassword(leaguePassword),
		postgres.WithInitScripts(schema.Path()),
		testcontainers.WithWaitStrategy(
			wait.ForLog(readyLog).
				WithOccurrence(readyOccurrences).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		log.Fatalf("error starting league database: %v", err)
	}

	// sslmode=disable because the container is not configured for TLS
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(context.Background())
		log.Fatalf("error getting league database address: %v", err)
	}

	return &LeagueDB{
		container: container,
		connStr:   connStr,
	}
}

func (c *LeagueDB) Shutdown() {
	if err := c.container.Terminate(context.Background()); err != nil {
		log.Fatalf("error terminating league database: %v", err)
	}
}

func (c *LeagueDB) ConnectionString() string {
	return c.connStr
}
