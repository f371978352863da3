package stats

import "sort"

// Pair is one (package name, value) ranking entry.
type Pair struct {
	Name  string
	Value float64
}

// rankable returns the (name, value) pairs to rank over: either every
// package in m, or only those named in subset (unknown names in subset
// are silently skipped, matching spec §4.E's "optionally restricted to
// a subset of names" without requiring subset ⊆ domain(m)).
func (m *MetricStats) rankable(subset []string) []Pair {
	var names []string
	if subset == nil {
		names = m.Names()
	} else {
		names = make([]string, 0, len(subset))
		for _, n := range subset {
			if _, ok := m.values[n]; ok {
				names = append(names, n)
			}
		}
	}
	out := make([]Pair, len(names))
	for i, n := range names {
		out[i] = Pair{Name: n, Value: m.values[n]}
	}
	return out
}

// Top returns the k packages with the largest value, tie-broken by
// ascending name. If subset is non-nil, ranking is restricted to that
// subset. Returns fewer than k entries if the domain (or subset) is
// smaller than k.
func (m *MetricStats) Top(k int, subset []string) []Pair {
	pairs := m.rankable(subset)
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Name < pairs[j].Name
	})
	if k > len(pairs) {
		k = len(pairs)
	}
	return pairs[:k]
}

// Bottom returns the k packages with the smallest value, tie-broken by
// ascending name.
func (m *MetricStats) Bottom(k int, subset []string) []Pair {
	pairs := m.rankable(subset)
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value < pairs[j].Value
		}
		return pairs[i].Name < pairs[j].Name
	})
	if k > len(pairs) {
		k = len(pairs)
	}
	return pairs[:k]
}
