package user

import "context"

// Database abstracts the persistence collaborator the registration
// service delegates to. Implementations may be Postgres, SQLite,
// in-memory test doubles, etc.
//
// All outcomes are boolean: a false from SaveUser may mean a driver
// error, a constraint violation, or anything else — callers cannot
// tell, and the contract keeps it that way.
type Database interface {
	// Connect establishes the underlying connection for the given URI.
	// The composition root calls this once before serving; the service
	// itself never does.
	Connect(ctx context.Context, uri string) bool

	// SaveUser persists one registration and reports success.
	SaveUser(ctx context.Context, name string, age int) bool
}
