package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	storage "github.com/caviar95/usersvc/pkg/storage/postgres"
)

// UserDatabase implements user.Database backed by PostgreSQL (pgx).
// Driver errors are collapsed into boolean outcomes at this boundary.
type UserDatabase struct {
	pool *pgxpool.Pool
}

func NewUserDatabase() *UserDatabase {
	return &UserDatabase{}
}

// Connect opens the pgx pool for the given DSN and ensures the schema.
// Reports false on any failure; a second call replaces the pool.
func (d *UserDatabase) Connect(ctx context.Context, uri string) bool {
	pool, err := storage.Connect(ctx, uri)
	if err != nil {
		return false
	}
	if d.pool != nil {
		d.pool.Close()
	}
	d.pool = pool
	return d.ensureSchema(ctx) == nil
}

func (d *UserDatabase) ensureSchema(ctx context.Context) error {
	_, err := d.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			age INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (d *UserDatabase) SaveUser(ctx context.Context, name string, age int) bool {
	if d.pool == nil {
		return false
	}
	_, err := d.pool.Exec(ctx, `
		INSERT INTO users (id, name, age, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), name, age, time.Now().UTC())
	return err == nil
}

// Pool exposes the underlying pool for health checks.
func (d *UserDatabase) Pool() *pgxpool.Pool { return d.pool }

// Close releases the pool, if connected.
func (d *UserDatabase) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}
