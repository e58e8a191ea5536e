package namematch

import "testing"

func TestBestMatch_Tiers(t *testing.T) {
	t.Parallel()

	candidates := []string{
		"Wankhede Stadium",
		"M. A. Chidambaram Stadium",
		"Eden Gardens",
	}

	t.Run("exact", func(t *testing.T) {
		got, ok := BestMatch("Eden Gardens", candidates, nil)
		if !ok || got.Index != 2 || got.Tier != TierExact {
			t.Fatalf("unexpected result: %+v ok=%v", got, ok)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, ok := BestMatch("wankhede stadium", candidates, nil)
		if !ok || got.Index != 0 || got.Tier != TierCaseInsensitive {
			t.Fatalf("unexpected result: %+v ok=%v", got, ok)
		}
	})

	t.Run("substring input contains candidate", func(t *testing.T) {
		got, ok := BestMatch("the eden gardens kolkata", candidates, nil)
		if !ok || got.Index != 2 || got.Tier != TierSubstring {
			t.Fatalf("unexpected result: %+v ok=%v", got, ok)
		}
	})

	t.Run("substring candidate contains input", func(t *testing.T) {
		got, ok := BestMatch("chidambaram", candidates, nil)
		if !ok || got.Index != 1 || got.Tier != TierSubstring {
			t.Fatalf("unexpected result: %+v ok=%v", got, ok)
		}
	})

	t.Run("no overlap misses", func(t *testing.T) {
		if _, ok := BestMatch("Qwerty Oval", candidates, nil); ok {
			t.Fatal("expected miss for non-overlapping name")
		}
	})
}

func TestBestMatch_AmbiguousTieBreak(t *testing.T) {
	t.Parallel()

	// Both canonical names substring-match the input. The smaller edit
	// distance must win regardless of slice ordering.
	candidates := []string{
		"Chinnaswamy Stadium Annex",
		"Chinnaswamy Stadium",
	}

	got, ok := BestMatch("chinnaswamy", candidates, nil)
	if !ok || got.Index != 1 || got.Tier != TierSubstring {
		t.Fatalf("expected closest candidate, got=%+v ok=%v", got, ok)
	}

	reversed := []string{candidates[1], candidates[0]}
	got, ok = BestMatch("chinnaswamy", reversed, nil)
	if !ok || got.Index != 0 {
		t.Fatalf("tie-break must not depend on ordering, got=%+v ok=%v", got, ok)
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"eden", "", 4},
		{"kitten", "sitting", 3},
		{"wankhede", "wankhede", 0},
		{"garden", "gardens", 1},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Fatalf("Distance(%q,%q)=%d want=%d", tc.a, tc.b, got, tc.want)
		}
	}
}
