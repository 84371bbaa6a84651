// Package sqlstore implements the list and item store ports on database/sql.
// SQLite (github.com/mattn/go-sqlite3) and MySQL (github.com/go-sql-driver/mysql)
// are supported; both use "?" placeholders so the queries are shared.
//
// Every store call passes through, in order:
//
//	Circuit Breaker → OTEL Span → Session connection (or pool) → SQL
//
// Construction:
//
//	st, err := sqlstore.Open(ctx, cfg.Database, metrics, logger)
//	defer st.Close()
//	lists, items := st.Lists(), st.Items()
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
	"github.com/jsamuelsen11/todo-lists-api/internal/platform/config"
	"github.com/jsamuelsen11/todo-lists-api/internal/platform/telemetry"

	// Register the database/sql drivers selected by config.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

const tracerName = "sqlstore"

// querier is the subset of *sql.DB, *sql.Conn and *sql.Tx used by the stores.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txBeginner is implemented by *sql.DB and *sql.Conn.
type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Store owns the connection pool and the cross-cutting behavior shared by
// ListStore and ItemStore.
type Store struct {
	db      *sql.DB
	driver  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// Open connects to the configured database, waiting for it with exponential
// backoff, and applies the pool settings. Migrations are not run; call
// Migrate when cfg.AutoMigrate is set. If metrics is nil, metric recording
// is skipped.
func Open(ctx context.Context, cfg config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dsn, err := normalizeDSN(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := waitForDB(ctx, db, newRetryPolicy(cfg.ConnectRetry), logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", cfg.Driver, err)
	}

	logger.InfoContext(ctx, "database connected",
		slog.String("driver", cfg.Driver),
		slog.String("dsn", cfg.DSN),
	)

	return newStore(db, cfg.Driver, cfg.CircuitBreaker, metrics, logger), nil
}

func newStore(db *sql.DB, driver string, cb config.CircuitBreakerConfig, metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Store {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "database",
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// A caller giving up is not a database failure.
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		db:      db,
		driver:  driver,
		breaker: breaker,
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
		logger:  logger,
	}
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lists returns the todo list store backed by s.
func (s *Store) Lists() *ListStore {
	return &ListStore{store: s}
}

// Items returns the todo item store backed by s.
func (s *Store) Items() *ItemStore {
	return &ItemStore{store: s}
}

// do runs fn through the circuit breaker inside a client span and records
// store metrics. fn receives the request's session connection when one is
// attached to ctx, or the pool otherwise. An open breaker is reported as
// domain.ErrUnavailable.
func (s *Store) do(ctx context.Context, op string, fn func(ctx context.Context, q querier) error) error {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "db "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.driver),
			attribute.String("db.operation", op),
		),
	)
	defer span.End()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		q, err := s.querier(ctx)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, fn(ctx, q)
	})

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
		err = fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	case err != nil:
		result = "error"
		err = fmt.Errorf("%s: %w", op, err)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.recordMetrics(ctx, op, start, result)

	return err
}

// withTx runs fn inside a transaction on the session connection or the pool.
// The transaction is committed when fn returns nil and rolled back otherwise.
func withTx(ctx context.Context, q querier, fn func(tx *sql.Tx) error) error {
	b, ok := q.(txBeginner)
	if !ok {
		return fmt.Errorf("querier %T cannot begin transactions", q)
	}

	tx, err := b.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// recordMetrics is safe to call with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, result string) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(s.driver),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
