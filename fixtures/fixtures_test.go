package fixtures_test

import (
	"testing"

	"github.com/oliviagraph/olivia/fixtures"
	"github.com/oliviagraph/olivia/graph"
	"github.com/stretchr/testify/require"
)

func TestPath_RejectsTooFewPackages(t *testing.T) {
	_, err := fixtures.Path(1)
	require.Error(t, err)
}

func TestPath_ChainShape(t *testing.T) {
	edges, err := fixtures.Path(5)
	require.NoError(t, err)
	require.Len(t, edges, 4)

	b := graph.NewBuilder()
	require.NoError(t, fixtures.Apply(b, edges))
	g, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, 5, g.Size())

	rootID, _ := g.IDOf("pkg0")
	require.Len(t, g.ForwardNeighbors(rootID), 1)
	sinkID, _ := g.IDOf("pkg4")
	require.Empty(t, g.ForwardNeighbors(sinkID))
}

func TestCyclePlusDependant_Shape(t *testing.T) {
	edges, err := fixtures.CyclePlusDependant(3)
	require.NoError(t, err)

	b := graph.NewBuilder()
	require.NoError(t, fixtures.Apply(b, edges))
	g, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())

	dID, _ := g.IDOf("dependant")
	require.Len(t, g.ForwardNeighbors(dID), 1)
}

func TestStarIn_HubDependsOnEveryLeaf(t *testing.T) {
	edges, err := fixtures.StarIn(10)
	require.NoError(t, err)

	b := graph.NewBuilder()
	require.NoError(t, fixtures.Apply(b, edges))
	g, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, 11, g.Size())

	hubID, _ := g.IDOf("hub")
	require.Len(t, g.ForwardNeighbors(hubID), 10)
	require.Empty(t, g.ReverseNeighbors(hubID))

	leafID, _ := g.IDOf("pkg0")
	require.Empty(t, g.ForwardNeighbors(leafID))
	require.Len(t, g.ReverseNeighbors(leafID), 1)
}

func TestWheel_RingPlusHub(t *testing.T) {
	edges, err := fixtures.Wheel(6)
	require.NoError(t, err)

	b := graph.NewBuilder()
	require.NoError(t, fixtures.Apply(b, edges))
	g, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, 6, g.Size())

	hubID, _ := g.IDOf("hub")
	require.Len(t, g.ForwardNeighbors(hubID), 5)
}
