package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
)

type sessionKey struct{}

// session pins one pooled connection to a request. The connection is taken
// from the pool on first use, so requests that never reach the store do not
// hold one.
type session struct {
	db   *sql.DB
	mu   sync.Mutex
	conn *sql.Conn
}

func (s *session) get(ctx context.Context) (*sql.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		conn, err := s.db.Conn(ctx)
		if err != nil {
			return nil, fmt.Errorf("acquiring session connection: %w", err)
		}
		s.conn = conn
	}
	return s.conn, nil
}

func (s *session) release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// BeginSession attaches a request-scoped session to ctx. Store calls made
// with the returned context share one connection; the returned function
// returns it to the pool and must be called when the request ends.
func (s *Store) BeginSession(ctx context.Context) (context.Context, func()) {
	sess := &session{db: s.db}
	end := func() {
		if err := sess.release(); err != nil {
			s.logger.WarnContext(ctx, "failed to release session connection", slog.Any("error", err))
		}
	}
	return context.WithValue(ctx, sessionKey{}, sess), end
}

// querier returns the session connection attached to ctx, or the pool.
func (s *Store) querier(ctx context.Context) (querier, error) {
	sess, ok := ctx.Value(sessionKey{}).(*session)
	if !ok {
		return s.db, nil
	}
	return sess.get(ctx)
}
