// Package modelio implements the OLV1 serialized model container of
// spec.md §6: a gzip-compressed (github.com/klauspost/compress/gzip)
// stream of fixed-width encoding/binary headers and length-prefixed
// sections, holding the graph, the condensation, and any cached metric
// results. A trailing CRC32 per section catches corruption; a bad
// magic, version, or checksum surfaces olivia.CorruptedModel.
package modelio
