package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStore_SetGetExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(20 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "teams", []string{"csk", "mi"})
	value, ok := store.Get(ctx, "teams")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if teams, _ := value.([]string); len(teams) != 2 {
		t.Fatalf("unexpected cached value: %v", value)
	}

	time.Sleep(30 * time.Millisecond)
	if _, ok := store.Get(ctx, "teams"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestStore_GetOrLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "venues", nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "venues", loader)
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if value != "venues" {
			t.Fatalf("unexpected value: %v", value)
		}
	}
	if loads != 1 {
		t.Fatalf("expected one load, got=%d", loads)
	}
}

func TestStore_GetOrLoadDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	_, err := store.GetOrLoad(ctx, "players", func(context.Context) (any, error) {
		loads++
		return nil, errors.New("store unavailable")
	})
	if err == nil {
		t.Fatal("expected loader error to surface")
	}

	if _, ok := store.Get(ctx, "players"); ok {
		t.Fatal("error result must not be cached")
	}
	if loads != 1 {
		t.Fatalf("expected one load, got=%d", loads)
	}
}
