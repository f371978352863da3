package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/oliviagraph/olivia/ingest"
	"github.com/stretchr/testify/require"
)

func TestParseAdjacencyList_BasicLines(t *testing.T) {
	input := "# comment\n\na\tb\tc\nb\tc\nc\n"
	g, err := ingest.ParseAdjacencyList(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())

	aID, _ := g.IDOf("a")
	require.Len(t, g.ForwardNeighbors(aID), 2)
}

func TestParseAdjacencyList_AutoRegistersDependencyOnlyNames(t *testing.T) {
	input := "a\tb\n"
	g, err := ingest.ParseAdjacencyList(strings.NewReader(input))
	require.NoError(t, err)
	require.True(t, g.Contains("b"))
}

func TestParseAdjacencyList_MalformedEmptyName(t *testing.T) {
	input := "a\tb\n\tc\n"
	_, err := ingest.ParseAdjacencyList(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseAdjacencyList_MalformedEmptyDependency(t *testing.T) {
	input := "a\tb\t\n"
	_, err := ingest.ParseAdjacencyList(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseAdjacencyList_SelfLoopAndDuplicateDropped(t *testing.T) {
	input := "a\ta\tb\tb\n"
	g, err := ingest.ParseAdjacencyList(strings.NewReader(input))
	require.NoError(t, err)
	aID, _ := g.IDOf("a")
	require.Len(t, g.ForwardNeighbors(aID), 1)
}

type fakeSource struct {
	packages []string
	edges    [][2]string
}

func (f fakeSource) ForEachPackage(fn func(name string) error) error {
	for _, p := range f.packages {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

func (f fakeSource) ForEachEdge(fn func(from, to string) error) error {
	for _, e := range f.edges {
		if err := fn(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

func TestFromEdgeSource(t *testing.T) {
	src := fakeSource{
		packages: []string{"x", "y", "z"},
		edges:    [][2]string{{"x", "y"}, {"y", "z"}},
	}
	g, err := ingest.FromEdgeSource(src)
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
}

func TestParseAdjacencyList_GzipCompressed(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte("a\tb\nb\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	gr, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	g, err := ingest.ParseAdjacencyList(gr)
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())
}
