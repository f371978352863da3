package ingest

import (
	"bufio"
	"io"
	"strings"

	"github.com/oliviagraph/olivia/graph"
)

// ParseAdjacencyList reads the adjacency-list text format of spec.md
// §6 from r: one line per package, `<name>` followed by zero or more
// `\t<dependency-name>` fields. Blank lines and lines starting with
// `#` are ignored. Dependency names never otherwise seen are
// auto-registered (graph.Builder does this).
func ParseAdjacencyList(r io.Reader) (*graph.Graph, error) {
	b := graph.NewBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		name := fields[0]
		if name == "" {
			return nil, errMalformedLine(lineNo, "missing package name")
		}
		if _, err := b.AddPackage(name); err != nil {
			return nil, errMalformedLine(lineNo, err.Error())
		}
		for _, dep := range fields[1:] {
			if dep == "" {
				return nil, errMalformedLine(lineNo, "empty dependency name")
			}
			if err := b.AddDependency(name, dep); err != nil {
				return nil, errMalformedLine(lineNo, err.Error())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Freeze()
}
