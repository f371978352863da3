package modelio

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/graph"
	"github.com/oliviagraph/olivia/stats"
)

// Container bundles everything a network.Model needs to resume work
// without recomputation: the frozen graph, its condensation, and any
// metric results already computed and worth keeping warm across a
// restart (spec §6's "persisted model" requirement).
type Container struct {
	Graph        *graph.Graph
	Condensation *condensation.Condensation
	MetricCache  map[string]*stats.MetricStats
}

// Save writes c to w as a gzip-compressed OLV1 stream: a 4-byte magic,
// a version byte, then length-prefixed, CRC32-trailered sections in a
// fixed order (names, forward CSR, reverse CSR, condensation as per-SCC
// members/successors/predecessors/intra-arc-counts/cross-arc-counts,
// metric cache). Section order is part of the format; Load depends on it.
func Save(w io.Writer, c *Container) error {
	gw := gzip.NewWriter(w)

	if _, err := gw.Write(magic[:]); err != nil {
		return err
	}
	if _, err := gw.Write([]byte{formatVersion}); err != nil {
		return err
	}

	sections := []func() ([]byte, error){
		func() ([]byte, error) { return encodeNames(c.Graph), nil },
		func() ([]byte, error) { return encodeForwardCSR(c.Graph), nil },
		func() ([]byte, error) { return encodeReverseCSR(c.Graph), nil },
		func() ([]byte, error) { return encodeCondensation(c.Condensation), nil },
		func() ([]byte, error) { return encodeMetricCache(c.MetricCache), nil },
	}
	for _, build := range sections {
		payload, err := build()
		if err != nil {
			return err
		}
		if err := writeSection(gw, payload); err != nil {
			return err
		}
	}

	return gw.Close()
}

// Load reads back a Container written by Save. It reconstructs the
// Graph via graph.FromCSR (replaying the stored forward and reverse
// adjacency verbatim, rather than re-deriving reverse order from a
// forward-only edge replay) and the Condensation via
// condensation.FromComponents (skipping Tarjan entirely), so a large
// persisted model comes back in time linear in its stored size rather
// than time proportional to rerunning discovery.
func Load(r io.Reader) (*Container, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	var gotMagic [4]byte
	if _, err := io.ReadFull(gr, gotMagic[:]); err != nil {
		return nil, errTruncated("magic")
	}
	if gotMagic != magic {
		return nil, errBadMagic(gotMagic)
	}

	var version [1]byte
	if _, err := io.ReadFull(gr, version[:]); err != nil {
		return nil, errTruncated("version")
	}
	if version[0] != formatVersion {
		return nil, errUnsupportedVersion(version[0])
	}

	namesPayload, err := readSection(gr, "names")
	if err != nil {
		return nil, err
	}
	fwdPayload, err := readSection(gr, "forward-csr")
	if err != nil {
		return nil, err
	}
	revPayload, err := readSection(gr, "reverse-csr")
	if err != nil {
		return nil, err
	}
	condPayload, err := readSection(gr, "condensation")
	if err != nil {
		return nil, err
	}
	cachePayload, err := readSection(gr, "metric-cache")
	if err != nil {
		return nil, err
	}

	names, err := decodeNames(namesPayload)
	if err != nil {
		return nil, err
	}
	forward, err := decodeCSR(fwdPayload, "forward-csr")
	if err != nil {
		return nil, err
	}
	reverse, err := decodeCSR(revPayload, "reverse-csr")
	if err != nil {
		return nil, err
	}
	g, err := graph.FromCSR(names, forward, reverse)
	if err != nil {
		return nil, err
	}

	cond, err := decodeCondensation(condPayload)
	if err != nil {
		return nil, err
	}

	cache, err := decodeMetricCache(cachePayload)
	if err != nil {
		return nil, err
	}

	return &Container{Graph: g, Condensation: cond, MetricCache: cache}, nil
}

func encodeNames(g *graph.Graph) []byte {
	var buf bytes.Buffer
	names := g.Iter()
	binary.Write(&buf, binary.LittleEndian, uint32(len(names)))
	for _, n := range names {
		writeString(&buf, n)
	}
	return buf.Bytes()
}

func decodeNames(payload []byte) ([]string, error) {
	r := bytes.NewReader(payload)
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, errTruncated("names")
	}
	out := make([]string, n)
	for i := range out {
		s, err := readString(r)
		if err != nil {
			return nil, errTruncated("names")
		}
		out[i] = s
	}
	return out, nil
}

func encodeForwardCSR(g *graph.Graph) []byte {
	var buf bytes.Buffer
	n := g.Size()
	binary.Write(&buf, binary.LittleEndian, uint32(n))
	for u := int32(0); u < int32(n); u++ {
		neigh := g.ForwardNeighbors(u)
		binary.Write(&buf, binary.LittleEndian, uint32(len(neigh)))
		binary.Write(&buf, binary.LittleEndian, neigh)
	}
	return buf.Bytes()
}

func encodeReverseCSR(g *graph.Graph) []byte {
	var buf bytes.Buffer
	n := g.Size()
	binary.Write(&buf, binary.LittleEndian, uint32(n))
	for u := int32(0); u < int32(n); u++ {
		neigh := g.ReverseNeighbors(u)
		binary.Write(&buf, binary.LittleEndian, uint32(len(neigh)))
		binary.Write(&buf, binary.LittleEndian, neigh)
	}
	return buf.Bytes()
}

// decodeCSR decodes a forward-csr or reverse-csr section into one
// neighbor slice per package, in id order, preserving the exact
// insertion order Save recorded. section names the section for error
// messages only.
func decodeCSR(payload []byte, section string) ([][]int32, error) {
	r := bytes.NewReader(payload)
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, errTruncated(section)
	}
	out := make([][]int32, n)
	for u := uint32(0); u < n; u++ {
		var deg uint32
		if err := binary.Read(r, binary.LittleEndian, &deg); err != nil {
			return nil, errTruncated(section)
		}
		if deg == 0 {
			continue
		}
		neigh := make([]int32, deg)
		if err := binary.Read(r, binary.LittleEndian, neigh); err != nil {
			return nil, errTruncated(section)
		}
		out[u] = neigh
	}
	return out, nil
}

// encodeCondensation serializes members, condOut, condIn, intraArcs and
// crossArcs in the order condensation.FromComponents expects them;
// nodeSCC is not stored (decodeCondensation rebuilds it from members).
func encodeCondensation(c *condensation.Condensation) []byte {
	var buf bytes.Buffer
	numSCC := c.NumSCCs()
	binary.Write(&buf, binary.LittleEndian, uint32(numSCC))

	// nodeSCC is reconstructed from members rather than stored
	// separately: every member id's scc is implied by which members
	// slice it appears in, so storing it again would be redundant.
	for s := int32(0); s < int32(numSCC); s++ {
		writeInt32Slice(&buf, c.Members(s))
	}
	for s := int32(0); s < int32(numSCC); s++ {
		writeInt32Slice(&buf, c.Successors(s))
	}
	for s := int32(0); s < int32(numSCC); s++ {
		writeInt32Slice(&buf, c.Predecessors(s))
	}
	intra := make([]int64, numSCC)
	for s := int32(0); s < int32(numSCC); s++ {
		intra[s] = c.IntraArcs(s)
	}
	binary.Write(&buf, binary.LittleEndian, intra)

	cross := make([]int64, numSCC)
	for s := int32(0); s < int32(numSCC); s++ {
		cross[s] = c.CrossArcs(s)
	}
	binary.Write(&buf, binary.LittleEndian, cross)

	return buf.Bytes()
}

func decodeCondensation(payload []byte) (*condensation.Condensation, error) {
	r := bytes.NewReader(payload)
	var numSCC uint32
	if err := binary.Read(r, binary.LittleEndian, &numSCC); err != nil {
		return nil, errTruncated("condensation")
	}

	members := make([][]int32, numSCC)
	for s := range members {
		m, err := readInt32Slice(r)
		if err != nil {
			return nil, errTruncated("condensation")
		}
		members[s] = m
	}
	condOut := make([][]int32, numSCC)
	for s := range condOut {
		m, err := readInt32Slice(r)
		if err != nil {
			return nil, errTruncated("condensation")
		}
		condOut[s] = m
	}
	condIn := make([][]int32, numSCC)
	for s := range condIn {
		m, err := readInt32Slice(r)
		if err != nil {
			return nil, errTruncated("condensation")
		}
		condIn[s] = m
	}
	intraArcs := make([]int64, numSCC)
	if numSCC > 0 {
		if err := binary.Read(r, binary.LittleEndian, intraArcs); err != nil {
			return nil, errTruncated("condensation")
		}
	}
	crossArcs := make([]int64, numSCC)
	if numSCC > 0 {
		if err := binary.Read(r, binary.LittleEndian, crossArcs); err != nil {
			return nil, errTruncated("condensation")
		}
	}

	var maxID int32 = -1
	for _, m := range members {
		for _, id := range m {
			if id > maxID {
				maxID = id
			}
		}
	}
	nodeSCC := make([]int32, maxID+1)
	for s, m := range members {
		for _, id := range m {
			nodeSCC[id] = int32(s)
		}
	}

	return condensation.FromComponents(nodeSCC, members, condOut, condIn, intraArcs, crossArcs)
}

func encodeMetricCache(cache map[string]*stats.MetricStats) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(cache)))
	for kind, ms := range cache {
		writeString(&buf, kind)
		names := ms.Names()
		binary.Write(&buf, binary.LittleEndian, uint32(len(names)))
		for _, name := range names {
			writeString(&buf, name)
			v, _ := ms.Get(name)
			binary.Write(&buf, binary.LittleEndian, v)
		}
	}
	return buf.Bytes()
}

func decodeMetricCache(payload []byte) (map[string]*stats.MetricStats, error) {
	r := bytes.NewReader(payload)
	var numKinds uint32
	if err := binary.Read(r, binary.LittleEndian, &numKinds); err != nil {
		return nil, errTruncated("metric-cache")
	}
	out := make(map[string]*stats.MetricStats, numKinds)
	for i := uint32(0); i < numKinds; i++ {
		kind, err := readString(r)
		if err != nil {
			return nil, errTruncated("metric-cache")
		}
		var numValues uint32
		if err := binary.Read(r, binary.LittleEndian, &numValues); err != nil {
			return nil, errTruncated("metric-cache")
		}
		values := make(map[string]float64, numValues)
		for j := uint32(0); j < numValues; j++ {
			name, err := readString(r)
			if err != nil {
				return nil, errTruncated("metric-cache")
			}
			var v float64
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, errTruncated("metric-cache")
			}
			values[name] = v
		}
		ms, err := stats.New(values)
		if err != nil {
			return nil, err
		}
		out[kind] = ms
	}
	return out, nil
}
