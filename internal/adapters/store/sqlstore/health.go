package sqlstore

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"
)

const checkerName = "database"

// Name identifies the store in readiness results. Together with HealthCheck
// it lets Store satisfy ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// HealthCheck reports the database as failing while the circuit breaker is
// open and otherwise pings it.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", checkerName)
	case gobreaker.StateClosed, gobreaker.StateHalfOpen:
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", checkerName, err)
	}
	return nil
}
