package stats

import "sync"

// MetricStats maps package name to a scalar metric value, plus a
// lazily-computed summary. Zero value is not usable; construct with
// New or FromMap.
type MetricStats struct {
	values map[string]float64

	summaryOnce sync.Once
	min, max    float64
	sum         float64
	mean        float64
}

// New constructs a MetricStats from values. The map is copied, so
// later mutation of the caller's map does not affect the result.
func New(values map[string]float64) (*MetricStats, error) {
	cp := make(map[string]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &MetricStats{values: cp}, nil
}

// FromMap is an alias for New, named to match spec §4.E's description
// of "construction from an arbitrary name→number mapping (used by
// external callers to plug in centrality measures)".
func FromMap(values map[string]float64) (*MetricStats, error) { return New(values) }

// Len returns the number of packages covered.
func (m *MetricStats) Len() int { return len(m.values) }

// Get returns the value for name and whether name is present.
func (m *MetricStats) Get(name string) (float64, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Names returns every package name covered, in unspecified order.
func (m *MetricStats) Names() []string {
	out := make([]string, 0, len(m.values))
	for k := range m.values {
		out = append(out, k)
	}
	return out
}

// sameDomain reports whether m and other cover exactly the same set of
// package names.
func (m *MetricStats) sameDomain(other *MetricStats) bool {
	if len(m.values) != len(other.values) {
		return false
	}
	for k := range m.values {
		if _, ok := other.values[k]; !ok {
			return false
		}
	}
	return true
}

func (m *MetricStats) computeSummary() {
	m.summaryOnce.Do(func() {
		first := true
		for _, v := range m.values {
			m.sum += v
			if first {
				m.min, m.max = v, v
				first = false
				continue
			}
			if v < m.min {
				m.min = v
			}
			if v > m.max {
				m.max = v
			}
		}
		if len(m.values) > 0 {
			m.mean = m.sum / float64(len(m.values))
		}
	})
}

// Min returns the smallest value. Zero for an empty MetricStats.
func (m *MetricStats) Min() float64 { m.computeSummary(); return m.min }

// Max returns the largest value. Zero for an empty MetricStats.
func (m *MetricStats) Max() float64 { m.computeSummary(); return m.max }

// Sum returns the sum of all values.
func (m *MetricStats) Sum() float64 { m.computeSummary(); return m.sum }

// Mean returns the arithmetic mean of all values. Zero for an empty
// MetricStats.
func (m *MetricStats) Mean() float64 { m.computeSummary(); return m.mean }
