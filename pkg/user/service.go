package user

import "context"

// UserUseCase describes registration behavior.
type UserUseCase interface {
	RegisterUser(ctx context.Context, name string, age int) bool
}

type service struct {
	db Database
}

// NewService returns default implementation of UserUseCase. The service
// holds the Database abstraction only; it never owns or reconnects it.
func NewService(db Database) UserUseCase {
	return &service{db: db}
}

// RegisterUser validates the request and delegates persistence.
// An empty name or negative age is rejected before the database is
// contacted; otherwise SaveUser is called exactly once and its result
// is returned verbatim. No retries.
func (s *service) RegisterUser(ctx context.Context, name string, age int) bool {
	if name == "" || age < 0 {
		return false
	}
	return s.db.SaveUser(ctx, name, age)
}
