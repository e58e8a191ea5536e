package namematch

import "strings"

// Matcher is one tier of the name-resolution chain. Tiers are ordered by
// specificity and the first tier with any hit wins; adding a new tier (for
// example fuzzy edit-distance matching) means appending an implementation
// here, not touching call sites.
type Matcher interface {
	Tier() string
	Match(input, candidate string) bool
}

const (
	TierExact           = "exact"
	TierCaseInsensitive = "case_insensitive"
	TierSubstring       = "substring"
)

type exactMatcher struct{}

func (exactMatcher) Tier() string { return TierExact }

func (exactMatcher) Match(input, candidate string) bool {
	return candidate == input
}

type caseInsensitiveMatcher struct{}

func (caseInsensitiveMatcher) Tier() string { return TierCaseInsensitive }

func (caseInsensitiveMatcher) Match(input, candidate string) bool {
	return strings.EqualFold(candidate, input)
}

type substringMatcher struct{}

func (substringMatcher) Tier() string { return TierSubstring }

func (substringMatcher) Match(input, candidate string) bool {
	a := strings.ToLower(input)
	b := strings.ToLower(candidate)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// DefaultChain is exact, then case-insensitive, then substring in either
// direction. Creation of a new canonical row is the caller's final tier.
func DefaultChain() []Matcher {
	return []Matcher{exactMatcher{}, caseInsensitiveMatcher{}, substringMatcher{}}
}

// Result names the candidate picked by BestMatch and the tier that matched.
type Result struct {
	Index int
	Tier  string
}

// BestMatch resolves input against candidates using the matcher chain.
// Within a tier, ambiguity is broken deterministically: smallest edit
// distance to the input first, then shortest candidate, then lexicographic.
// Store iteration order never decides the winner.
func BestMatch(input string, candidates []string, chain []Matcher) (Result, bool) {
	input = strings.TrimSpace(input)
	if input == "" || len(candidates) == 0 {
		return Result{}, false
	}
	if len(chain) == 0 {
		chain = DefaultChain()
	}

	for _, matcher := range chain {
		best := -1
		bestDistance := 0
		for idx, candidate := range candidates {
			if !matcher.Match(input, strings.TrimSpace(candidate)) {
				continue
			}
			distance := Distance(strings.ToLower(input), strings.ToLower(candidate))
			if best == -1 || lessCandidate(distance, candidates[idx], bestDistance, candidates[best]) {
				best = idx
				bestDistance = distance
			}
		}
		if best >= 0 {
			return Result{Index: best, Tier: matcher.Tier()}, true
		}
	}

	return Result{}, false
}

func lessCandidate(distance int, name string, bestDistance int, bestName string) bool {
	if distance != bestDistance {
		return distance < bestDistance
	}
	if len(name) != len(bestName) {
		return len(name) < len(bestName)
	}
	return name < bestName
}
