// Package ingest builds a graph.Graph from the adjacency-list text
// format described in spec.md §6, optionally transparently
// decompressing .gz (via klauspost/compress/gzip) or .bz2 (via the
// standard library's decode-only compress/bzip2) input, or from an
// already-materialized external collaborator via EdgeSource.
package ingest
