package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("venues").
		Where(
			LowerEq("name", "Wankhede Stadium"),
			IsNull("deleted_at"),
		).
		OrderBy("name").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT * FROM venues WHERE lower(name) = lower($1) AND deleted_at IS NULL ORDER BY name LIMIT 1"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"Wankhede Stadium"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_InEmptyMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("players").
		Where(In("team_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertBuilder_ConflictSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("matches").
		Columns("id", "team1_id", "team2_id", "venue_id").
		Values("m1", "csk", "mi", "wankhede").
		Suffix("ON CONFLICT (team1_id, team2_id, venue_id) DO UPDATE SET updated_at = ? RETURNING id", "2026-04-01").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "INSERT INTO matches (id, team1_id, team2_id, venue_id) VALUES ($1, $2, $3, $4) " +
		"ON CONFLICT (team1_id, team2_id, venue_id) DO UPDATE SET updated_at = $5 RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 5 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("predictions").
		Set("team1_win_probability", 55).
		Set("team2_win_probability", 40).
		Set("tie_probability", 5).
		Where(Eq("match_id", "m1")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "UPDATE predictions SET team1_win_probability = $1, team2_win_probability = $2, tie_probability = $3 WHERE match_id = $4"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if !reflect.DeepEqual(args, []any{55, 40, 5, "m1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuilderValidation(t *testing.T) {
	t.Parallel()

	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatal("expected error for missing columns")
	}
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
	if _, _, err := InsertInto("teams").Columns("id").Values("a", "b").ToSQL(); err == nil {
		t.Fatal("expected error for mismatched values")
	}
	if _, _, err := Update("teams").Where(Eq("id", "a")).ToSQL(); err == nil {
		t.Fatal("expected error for missing sets")
	}
}
