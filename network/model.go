package network

import (
	"io"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/oliviagraph/olivia/bitset"
	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/coupling"
	"github.com/oliviagraph/olivia/graph"
	"github.com/oliviagraph/olivia/metric"
	"github.com/oliviagraph/olivia/modelio"
	"github.com/oliviagraph/olivia/stats"
	"github.com/oliviagraph/olivia/vulnerability"
)

// Model is the queryable, immutable-graph-backed view of a dependency
// network: the frozen graph, its condensation, and a memoized set of
// whole-network metrics computed lazily on first request.
//
// A Model is safe for concurrent use. Mutating the underlying
// dependency set means building a new Model via New, mirroring
// graph.Graph's own freeze-once contract.
type Model struct {
	g    *graph.Graph
	cond *condensation.Condensation
	obs  metric.Observer

	mu                  sync.RWMutex
	metricCache         map[string]*stats.MetricStats
	reachClosures       []bitset.Set
	closuresOnce        sync.Once
	surfaceClosures     []bitset.Set
	surfaceClosuresOnce sync.Once

	sf singleflight.Group
}

// New builds a Model from g, running SCC condensation once up front.
func New(g *graph.Graph, obs metric.Observer) (*Model, error) {
	cond, err := condensation.Build(g)
	if err != nil {
		return nil, err
	}
	return &Model{
		g:           g,
		cond:        cond,
		obs:         obs,
		metricCache: make(map[string]*stats.MetricStats),
	}, nil
}

// Graph returns the underlying frozen graph.
func (m *Model) Graph() *graph.Graph { return m.g }

// Condensation returns the underlying condensation.
func (m *Model) Condensation() *condensation.Condensation { return m.cond }

// GetMetric returns kind's MetricStats, computing it on first request
// and caching the result for every subsequent call. Concurrent callers
// requesting the same not-yet-cached kind are coalesced via
// singleflight, so the underlying sweep runs exactly once.
func (m *Model) GetMetric(kind metric.Kind) (*stats.MetricStats, error) {
	m.mu.RLock()
	if cached, ok := m.metricCache[kind.Name]; ok {
		m.mu.RUnlock()
		return cached, nil
	}
	m.mu.RUnlock()

	v, err, _ := m.sf.Do(kind.Name, func() (interface{}, error) {
		m.mu.RLock()
		if cached, ok := m.metricCache[kind.Name]; ok {
			m.mu.RUnlock()
			return cached, nil
		}
		m.mu.RUnlock()

		computed, err := metric.Compute(m.g, m.cond, kind, m.obs)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.metricCache[kind.Name] = computed
		m.mu.Unlock()
		return computed, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*stats.MetricStats), nil
}

// reach lazily computes and caches the Forward closures shared by
// coupling queries, independent of the metric cache (which stores
// scalar results, not the intermediate bitsets).
func (m *Model) reach() []bitset.Set {
	m.closuresOnce.Do(func() {
		m.reachClosures = metric.ReachClosures(m.cond, m.obs)
	})
	return m.reachClosures
}

// surface lazily computes and caches the Reverse (ascendant) closures
// TransitiveDependants needs, mirroring reach()'s memoization so repeat
// queries don't re-sweep the condensation every call.
func (m *Model) surface() []bitset.Set {
	m.surfaceClosuresOnce.Do(func() {
		m.surfaceClosures = metric.SurfaceClosures(m.cond, m.obs)
	})
	return m.surfaceClosures
}

func (m *Model) resolve(name string) (graph.ID, error) {
	id, ok := m.g.IDOf(name)
	if !ok {
		return 0, errUnknownPackage(name)
	}
	return id, nil
}

// DirectDependencies returns the names name directly depends on, in
// insertion order.
func (m *Model) DirectDependencies(name string) ([]string, error) {
	id, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	return m.names(m.g.ForwardNeighbors(id)), nil
}

// DirectDependants returns the names that directly depend on name, in
// insertion order.
func (m *Model) DirectDependants(name string) ([]string, error) {
	id, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	return m.names(m.g.ReverseNeighbors(id)), nil
}

// TransitiveDependencies returns every package reachable from name,
// excluding name itself, in ascending id order.
func (m *Model) TransitiveDependencies(name string) ([]string, error) {
	id, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	closures := m.reach()
	ids, err := coupling.TransitiveDependencyIDs(m.cond, closures, id)
	if err != nil {
		return nil, err
	}
	return m.names(ids), nil
}

// TransitiveDependants returns every package that can reach name,
// excluding name itself, in ascending id order.
func (m *Model) TransitiveDependants(name string) ([]string, error) {
	id, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	closures := m.surface()
	vSCC := int(m.cond.SCCOf(id))
	var out []graph.ID
	closures[vSCC].ForEach(func(scc int) {
		for _, member := range m.cond.Members(condensation.SCCID(scc)) {
			if member != id {
				out = append(out, member)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return m.names(out), nil
}

// CouplingInterfaceFrom returns, as names, the subset of v's direct
// dependencies through which u is reachable (spec §4.F).
func (m *Model) CouplingInterfaceFrom(u, v string) ([]string, error) {
	uID, err := m.resolve(u)
	if err != nil {
		return nil, err
	}
	vID, err := m.resolve(v)
	if err != nil {
		return nil, err
	}
	closures := m.reach()
	ids, err := coupling.InterfaceFrom(m.g, m.cond, closures, uID, vID)
	if err != nil {
		return nil, err
	}
	return m.names(ids), nil
}

// TransitiveCoupling returns |CouplingInterfaceFrom(u, v)|.
func (m *Model) TransitiveCoupling(u, v string) (int, error) {
	uID, err := m.resolve(u)
	if err != nil {
		return 0, err
	}
	vID, err := m.resolve(v)
	if err != nil {
		return 0, err
	}
	closures := m.reach()
	return coupling.TransitiveCoupling(m.g, m.cond, closures, uID, vID)
}

// CouplingProfile returns v's full coupling profile: every transitive
// dependency of v mapped to its coupling interface over v.
func (m *Model) CouplingProfile(v string) (map[string][]string, error) {
	vID, err := m.resolve(v)
	if err != nil {
		return nil, err
	}
	closures := m.reach()
	return coupling.CouplingProfile(m.g, m.cond, closures, vID)
}

// FailureVulnerability returns mean(kind) over the whole network.
func (m *Model) FailureVulnerability(kind metric.Kind) (float64, error) {
	return vulnerability.FailureVulnerability(m.g, m.cond, kind, m.obs)
}

// ImmunizationDelta returns the decrease in mean(kind) achieved by
// stripping targets' out-edges, via algo.
func (m *Model) ImmunizationDelta(targets []string, kind metric.Kind, algo vulnerability.Algorithm) (float64, error) {
	return vulnerability.ImmunizationDelta(m.g, m.cond, targets, kind, algo, m.obs)
}

// SCC returns the names sharing name's strongly connected component,
// including name itself, in the order condensation.Members returns them.
func (m *Model) SCC(name string) ([]string, error) {
	id, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	return m.names(m.cond.Members(m.cond.SCCOf(id))), nil
}

// Save persists the Model (graph, condensation, and everything in the
// metric cache so far) to w.
func (m *Model) Save(w io.Writer) error {
	m.mu.RLock()
	cache := make(map[string]*stats.MetricStats, len(m.metricCache))
	for k, v := range m.metricCache {
		cache[k] = v
	}
	m.mu.RUnlock()

	return modelio.Save(w, &modelio.Container{
		Graph:        m.g,
		Condensation: m.cond,
		MetricCache:  cache,
	})
}

// Load reconstructs a Model previously written by Save, restoring its
// metric cache so already-computed metrics don't need recomputation.
func Load(r io.Reader, obs metric.Observer) (*Model, error) {
	container, err := modelio.Load(r)
	if err != nil {
		return nil, err
	}
	cache := container.MetricCache
	if cache == nil {
		cache = make(map[string]*stats.MetricStats)
	}
	return &Model{
		g:           container.Graph,
		cond:        container.Condensation,
		obs:         obs,
		metricCache: cache,
	}, nil
}

func (m *Model) names(ids []graph.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = m.g.NameOf(id)
	}
	return out
}
