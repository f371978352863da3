package ingest

import "github.com/oliviagraph/olivia/graph"

// EdgeSource is the minimal contract an already-materialized external
// directed-graph collaborator must satisfy for spec.md §4.A case (ii):
// "an already-materialized directed graph object from an external
// collaborator". ForEachEdge must call fn once per directed edge; a
// package with no outgoing edges is still represented, via
// ForEachPackage.
type EdgeSource interface {
	ForEachPackage(fn func(name string) error) error
	ForEachEdge(fn func(from, to string) error) error
}

// FromEdgeSource builds a graph.Graph from src, applying the same
// dedup and self-loop-drop normalization as the text-format path.
func FromEdgeSource(src EdgeSource) (*graph.Graph, error) {
	b := graph.NewBuilder()
	if err := src.ForEachPackage(func(name string) error {
		_, err := b.AddPackage(name)
		return err
	}); err != nil {
		return nil, err
	}
	if err := src.ForEachEdge(func(from, to string) error {
		return b.AddDependency(from, to)
	}); err != nil {
		return nil, err
	}
	return b.Freeze()
}
