package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string                    { return f.name }
func (f fakeChecker) Check(ctx context.Context) error { return f.err }

func TestReady_AllHealthy(t *testing.T) {
	svc := NewService(fakeChecker{name: "a"}, fakeChecker{name: "b"})
	require.NoError(t, svc.Ready(context.Background()))
}

func TestReady_FirstFailureWins(t *testing.T) {
	errA := errors.New("a is down")
	svc := NewService(fakeChecker{name: "a", err: errA}, fakeChecker{name: "b", err: errors.New("b is down")})
	assert.Equal(t, errA, svc.Ready(context.Background()))
}

func TestReport(t *testing.T) {
	svc := NewService(
		fakeChecker{name: "sqlite"},
		fakeChecker{name: "postgres", err: errors.New("connection refused")},
	)
	report := svc.Report(context.Background())
	assert.Equal(t, map[string]string{
		"sqlite":   "ok",
		"postgres": "connection refused",
	}, report)
}
