package ingest

import (
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/oliviagraph/olivia/graph"
)

// LoadFile builds a graph.Graph from path, transparently decompressing
// a .gz or .bz2 suffix before parsing the adjacency-list format.
func LoadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompressingReader(path, f)
	if err != nil {
		return nil, err
	}
	return ParseAdjacencyList(r)
}

// decompressingReader wraps raw in a decompressor chosen by path's
// suffix. bzip2 has no third-party decoder in active maintenance
// anywhere in the example pack or wider ecosystem worth preferring
// over the standard library's decode-only compress/bzip2, so that is
// used directly here (see DESIGN.md).
func decompressingReader(path string, raw io.Reader) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(raw)
	case strings.HasSuffix(path, ".bz2"):
		return bzip2.NewReader(raw), nil
	default:
		return raw, nil
	}
}
