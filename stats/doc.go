// Package stats holds MetricStats, the value object spec §4.E
// describes: a name→number mapping plus a lazily-computed summary
// (min, max, mean, sum), element-wise and scalar-broadcast arithmetic,
// and top/bottom ranking with deterministic tie-breaking.
//
// MetricStats is immutable once constructed: every arithmetic
// operation returns a new value rather than mutating its receiver,
// mirroring the teacher's preference for non-mutating views
// (core/view.go: "Views do NOT mutate the input Graph").
package stats
