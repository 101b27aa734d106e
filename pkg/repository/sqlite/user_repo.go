package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// UserDatabase implements user.Database over a local SQLite file.
// The pure-Go driver makes it the default store for local runs and
// the real-store substrate in tests.
type UserDatabase struct {
	db *sql.DB
}

func NewUserDatabase() *UserDatabase {
	return &UserDatabase{}
}

// Connect opens the database at the given path and ensures the schema.
func (d *UserDatabase) Connect(ctx context.Context, uri string) bool {
	db, err := sql.Open("sqlite", uri+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return false
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return false
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
	`); err != nil {
		db.Close()
		return false
	}
	if d.db != nil {
		d.db.Close()
	}
	d.db = db
	return true
}

func (d *UserDatabase) SaveUser(ctx context.Context, name string, age int) bool {
	if d.db == nil {
		return false
	}
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO users (id, name, age, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.NewString(), name, age, time.Now().UTC())
	return err == nil
}

// CountUsers reports how many registrations are stored. Used by
// readiness checks and tests.
func (d *UserDatabase) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// DB exposes the underlying handle for health checks.
func (d *UserDatabase) DB() *sql.DB { return d.db }

// Close closes the database connection, if connected.
func (d *UserDatabase) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
