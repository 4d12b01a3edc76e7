// Package sqlitedb is an embedded implementation of db.DB for running the
// league on a single machine without a postgres server.
package sqlitedb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

type sqliteDB struct {
	db    *gorm.DB
	clock clock.Clock
}

// New opens (or creates) the database file at path and migrates the schema.
func New(ctx context.Context, path string, clock clock.Clock) (db.DB, error) {
	return open(ctx, fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path), clock)
}

// NewInMemory creates a private in-memory database, mostly useful for tests.
func NewInMemory(ctx context.Context, clock clock.Clock) (db.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	return open(ctx, dsn, clock)
}

func open(ctx context.Context, dsn string, clock clock.Clock) (db.DB, error) {
	gdb, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        dsn,
		DriverName: "sqlite",
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer. One connection also keeps every
	// statement inside a transaction on the same connection.
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	err = gdb.WithContext(ctx).AutoMigrate(
		&teamRow{},
		&playerRow{},
		&seasonRow{},
		&tourRow{},
		&tourTeamRow{},
		&matchRow{},
		&playerStatRow{},
		&substitutionRow{},
		&dreamTeamRow{},
		&roleRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("error migrating sqlite schema: %w", err)
	}

	return &sqliteDB{db: gdb, clock: clock}, nil
}

func (s *sqliteDB) now() time.Time {
	return s.clock.Now().UTC()
}

func (s *sqliteDB) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// convertError maps driver errors onto the db package's sentinel errors.
// The modernc driver only exposes constraint failures through the message.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.ErrNotFound
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", db.ErrDuplicate, msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %s", db.ErrNotFound, msg)
	}
	return err
}

// affectedOne turns a write that matched no rows into ErrNotFound.
func affectedOne(res *gorm.DB) error {
	if res.Error != nil {
		return convertError(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
