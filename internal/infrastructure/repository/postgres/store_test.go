package postgres

import (
	"context"
	"testing"

	"github.com/pitchside/matchsight/internal/platform/resilience"
)

func newUnconfiguredStore() *Store {
	return NewStore(nil, resilience.CircuitBreakerConfig{}, nil)
}

func TestStore_NilReceiverReportsUnconfigured(t *testing.T) {
	t.Parallel()

	// app wiring passes a typed-nil *Store into the handler when no
	// database is configured, so the receiver itself may be nil.
	var s *Store
	if s.Configured() {
		t.Fatal("nil store must report unconfigured")
	}
}

func TestStore_UnconfiguredReadsYieldEmptyValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newUnconfiguredStore()

	if s.Configured() {
		t.Fatal("store without a handle must report unconfigured")
	}
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping unconfigured store: %v", err)
	}

	exists, err := s.TableExists(ctx, "teams")
	if err != nil {
		t.Fatalf("table check on unconfigured store: %v", err)
	}
	if exists {
		t.Fatal("unconfigured store must report no tables")
	}

	count, err := s.RowCount(ctx, "teams")
	if err != nil {
		t.Fatalf("row count on unconfigured store: %v", err)
	}
	if count != 0 {
		t.Fatalf("unconfigured store must count 0 rows, got %d", count)
	}

	var rows []teamTableModel
	if err := s.Select(ctx, &rows, "SELECT * FROM teams"); err != nil {
		t.Fatalf("select on unconfigured store: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("select must leave dest empty, got %d rows", len(rows))
	}

	var row teamTableModel
	found, err := s.Get(ctx, &row, "SELECT * FROM teams WHERE id = $1", "csk")
	if err != nil {
		t.Fatalf("get on unconfigured store: %v", err)
	}
	if found {
		t.Fatal("unconfigured store must never find a row")
	}
}

func TestStore_UnconfiguredExecIsNoOp(t *testing.T) {
	t.Parallel()

	s := newUnconfiguredStore()
	if err := s.Exec(context.Background(), "DELETE FROM teams"); err != nil {
		t.Fatalf("exec on unconfigured store: %v", err)
	}
}

func TestStore_RepositoriesDegradeWithoutStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newUnconfiguredStore()

	teams, err := NewTeamRepository(s).List(ctx)
	if err != nil {
		t.Fatalf("list teams without store: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no teams, got %d", len(teams))
	}

	_, found, err := NewMatchRepository(s).GetByID(ctx, "m-1")
	if err != nil {
		t.Fatalf("get match without store: %v", err)
	}
	if found {
		t.Fatal("match lookup without store must report not found")
	}
}
