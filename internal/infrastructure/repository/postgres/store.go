package postgres

import (
	"context"
	"database/sql"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/resilience"
)

var errStoreTransient = crerr.New("store transient failure")

// IsTransient reports whether err came from a store round trip that is worth
// retrying (as opposed to a missing configuration or a mapping bug).
func IsTransient(err error) bool {
	return crerr.Is(err, errStoreTransient)
}

// Store wraps the shared sqlx handle. The handle may be nil ("store not
// configured"): every read then yields its empty value and every write is a
// no-op, so upstream resolvers treat a missing store exactly like an empty
// one and fall through to reference data. A circuit breaker guards the
// round trips so a flapping database fails fast into the fallback path.
type Store struct {
	db             *sqlx.DB
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	logger         *logging.Logger
}

func NewStore(db *sqlx.DB, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg = resilience.NormalizeCircuitBreakerConfig(breakerCfg)

	return &Store{
		db:             db,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		logger:         logger,
	}
}

func (s *Store) Configured() bool {
	return s != nil && s.db != nil
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Configured() {
		return nil
	}
	return s.guard(ctx, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

// TableExists resolves the table name through to_regclass; an unconfigured
// store answers false without error.
func (s *Store) TableExists(ctx context.Context, table string) (bool, error) {
	if !s.Configured() {
		return false, nil
	}

	var name sql.NullString
	err := s.guard(ctx, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &name, "SELECT to_regclass($1)", table)
	})
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}

	return name.Valid && name.String != "", nil
}

// RowCount answers 0 for an unconfigured store or a missing table.
func (s *Store) RowCount(ctx context.Context, table string) (int64, error) {
	exists, err := s.TableExists(ctx, table)
	if err != nil || !exists {
		return 0, err
	}

	var count int64
	err = s.guard(ctx, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table)
	})
	if err != nil {
		return 0, fmt.Errorf("count rows in %s: %w", table, err)
	}

	return count, nil
}

// Select fills dest with all rows; an unconfigured store leaves dest empty.
func (s *Store) Select(ctx context.Context, dest any, query string, args ...any) error {
	if !s.Configured() {
		return nil
	}
	return s.guard(ctx, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, dest, query, args...)
	})
}

// Get fetches one row into dest, reporting found=false both for sql.ErrNoRows
// and for an unconfigured store.
func (s *Store) Get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	if !s.Configured() {
		return false, nil
	}

	found := true
	err := s.guard(ctx, func(ctx context.Context) error {
		getErr := s.db.GetContext(ctx, dest, query, args...)
		if getErr == sql.ErrNoRows {
			found = false
			return nil
		}
		return getErr
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// Exec runs a statement; an unconfigured store silently does nothing.
func (s *Store) Exec(ctx context.Context, query string, args ...any) error {
	if !s.Configured() {
		return nil
	}
	return s.guard(ctx, func(ctx context.Context) error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
}

func (s *Store) guard(ctx context.Context, op func(context.Context) error) error {
	if s.circuitEnabled {
		if err := s.breaker.Allow(); err != nil {
			return crerr.Mark(err, errStoreTransient)
		}
	}

	err := op(ctx)
	if s.circuitEnabled {
		if err != nil {
			s.breaker.RecordFailure()
		} else {
			s.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return crerr.Mark(err, errStoreTransient)
	}

	return nil
}
