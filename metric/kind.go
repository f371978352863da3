package metric

import (
	"fmt"
	"sync"

	"github.com/oliviagraph/olivia/bitset"
	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/graph"
)

// Direction selects which condensation adjacency a sweep-based Kind
// accumulates over.
type Direction int

const (
	// Forward sweeps over condensation successors (condOut), computing
	// a descendant closure per SCC. Reach and Impact use this.
	Forward Direction = iota
	// Reverse sweeps over condensation predecessors (condIn),
	// computing an ascendant closure per SCC. Surface uses this.
	Reverse
)

// StepFunc derives a scalar for every member of scc from its already
// fully-accumulated closure (descendant or ascendant set, depending on
// the owning Kind's Direction), including scc itself. This is the
// "step function shape" named in spec §4.D / §9: implementations never
// see other SCCs' partial state, only the finished closure.
type StepFunc func(scc condensation.SCCID, closure bitset.Set, c *condensation.Condensation) float64

// DirectFunc derives a scalar for a single package directly from the
// original graph, with no DAG sweep (DependentsCount, DependenciesCount).
type DirectFunc func(g *graph.Graph, id graph.ID) float64

// Kind is a named metric computation: either sweep-based (Step
// non-nil) or direct (Direct non-nil). Exactly one must be set.
type Kind struct {
	Name      string
	Direction Direction
	Step      StepFunc
	Direct    DirectFunc
}

// IsSweep reports whether k is computed via the DAG sweep rather than
// directly per package.
func (k Kind) IsSweep() bool { return k.Step != nil }

// registry is seeded with the built-in kinds in its own initializer
// rather than in an init function: package-level variables such as
// Reach are initialized (via mustGet) before any init function runs.
var (
	registryMu sync.RWMutex
	registry   = map[string]Kind{
		ReachKind.Name:             ReachKind,
		ImpactKind.Name:            ImpactKind,
		SurfaceKind.Name:           SurfaceKind,
		DependentsCountKind.Name:   DependentsCountKind,
		DependenciesCountKind.Name: DependenciesCountKind,
	}
)

// Register adds kind to the global registry under kind.Name, so
// external callers can plug in custom metric computations that conform
// to the StepFunc/DirectFunc contract (spec §6, "pluggable MetricKind
// identifier"). Re-registering an existing name overwrites it — this
// mirrors the teacher's permissive functional-option style rather than
// erroring, since registration always happens at program init time,
// never concurrently with a running sweep.
func Register(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind.Name] = kind
}

// Get looks up a registered Kind by name.
func Get(name string) (Kind, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	k, ok := registry[name]
	return k, ok
}

// mustGet panics if name is not registered; used only for the
// package's own built-in constants, never on a user-supplied name.
func mustGet(name string) Kind {
	k, ok := Get(name)
	if !ok {
		panic(fmt.Sprintf("metric: built-in kind %q missing from registry", name))
	}
	return k
}
