// Package bitset provides compact descendant sets for the OLIVIA network
// engine: a dense word-packed bitset over SCC ids, and a hashed-set
// fallback for SCCs whose descendant sets stay sparse.
//
// The metric engine (package metric) and the coupling engine (package
// coupling) both need, per SCC, "is SCC T in the descendant/ascendant
// set of SCC S" membership tests and set-union accumulation along the
// condensation DAG. Dense bitwise OR is the fast path; on
// super-critical networks the condensation can still produce a handful
// of SCCs whose descendant sets are large fractions of C, so the dense
// path dominates there. On sub-critical networks C≈N and most SCCs
// have tiny descendant sets, where a hashed set avoids the O(C/64)
// dense footprint per node. NewAdaptive selects between the two per SCC based
// on expected density, per spec §5.
package bitset
