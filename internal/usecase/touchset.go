package usecase

import (
	"context"
	"sort"
	"sync"
)

// TouchKind names a reference collection whose rows a request has read or
// written.
type TouchKind string

const (
	TouchTeams   TouchKind = "teams"
	TouchVenues  TouchKind = "venues"
	TouchPlayers TouchKind = "players"
)

// TouchSet accumulates the reference rows touched while serving one request.
// It lives on the request context, so every resolution step can record what
// it used without threading a collector through each call.
type TouchSet struct {
	mu   sync.Mutex
	sets map[TouchKind]map[string]struct{}
}

func NewTouchSet() *TouchSet {
	return &TouchSet{sets: make(map[TouchKind]map[string]struct{})}
}

func (t *TouchSet) Add(kind TouchKind, id string) {
	if t == nil || id == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.sets[kind]
	if !ok {
		set = make(map[string]struct{})
		t.sets[kind] = set
	}
	set[id] = struct{}{}
}

// IDs returns the touched ids of one kind in sorted order.
func (t *TouchSet) IDs(kind TouchKind) []string {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	set := t.sets[kind]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Summary snapshots every non-empty kind.
func (t *TouchSet) Summary() map[TouchKind][]string {
	if t == nil {
		return nil
	}
	out := make(map[TouchKind][]string)
	for _, kind := range []TouchKind{TouchTeams, TouchVenues, TouchPlayers} {
		if ids := t.IDs(kind); len(ids) > 0 {
			out[kind] = ids
		}
	}
	return out
}

func (t *TouchSet) Reset(kinds ...TouchKind) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(kinds) == 0 {
		t.sets = make(map[TouchKind]map[string]struct{})
		return
	}
	for _, kind := range kinds {
		delete(t.sets, kind)
	}
}

type touchSetCtxKey struct{}

// WithTouchSet attaches a fresh TouchSet to the context and returns both.
func WithTouchSet(ctx context.Context) (context.Context, *TouchSet) {
	ts := NewTouchSet()
	return context.WithValue(ctx, touchSetCtxKey{}, ts), ts
}

// TouchSetFrom returns the request's TouchSet, or nil when the caller did
// not install one. A nil TouchSet accepts Add calls as no-ops.
func TouchSetFrom(ctx context.Context) *TouchSet {
	ts, _ := ctx.Value(touchSetCtxKey{}).(*TouchSet)
	return ts
}

func touch(ctx context.Context, kind TouchKind, ids ...string) {
	ts := TouchSetFrom(ctx)
	if ts == nil {
		return
	}
	for _, id := range ids {
		ts.Add(kind, id)
	}
}
