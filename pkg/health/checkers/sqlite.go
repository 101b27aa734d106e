package checkers

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLiteChecker pings a database/sql handle with a short deadline.
type SQLiteChecker struct {
	db *sql.DB
}

func NewSQLiteChecker(db *sql.DB) *SQLiteChecker {
	return &SQLiteChecker{db: db}
}

func (c *SQLiteChecker) Name() string { return "sqlite" }

func (c *SQLiteChecker) Check(ctx context.Context) error {
	if c.db == nil {
		return errors.New("sqlite: not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.db.PingContext(ctx)
}
