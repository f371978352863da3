package metric

// Observer receives periodic, informational progress reports during a
// sweep. Implementations must return quickly; OnProgress is always
// invoked from a single goroutine, serialized with respect to every
// other call for the same sweep, so it never needs its own locking
// (spec §5: "must not issue user-visible progress callbacks from
// multiple threads simultaneously").
//
// An Observer is never assumed present: every call site nil-checks
// before invoking one, matching the teacher's optional-hook convention
// (dfs.Option's OnVisit/OnExit).
type Observer interface {
	// OnProgress reports that `processed` of `total` SCCs have been
	// swept for the named stage. Called approximately every 1,000
	// SCCs; has no correctness impact.
	OnProgress(stage string, processed, total int)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(stage string, processed, total int)

// OnProgress implements Observer.
func (f ObserverFunc) OnProgress(stage string, processed, total int) { f(stage, processed, total) }
