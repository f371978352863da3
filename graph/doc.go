// Package graph holds OLIVIA's immutable labeled directed graph: a
// name↔id bimap plus CSR-like forward and reverse adjacency arrays.
//
// Unlike the teacher's core.Graph, which is a live, lock-protected,
// mutable structure meant to be edited across a program's lifetime, a
// graph.Graph here is built once via Builder and frozen; nothing in
// OLIVIA ever mutates a frozen Graph again, matching spec §3's
// "Lifecycles" contract. That lets every downstream package (most
// importantly condensation and metric) read it without any locking.
//
// Multi-edges and self-loops are collapsed by Builder.AddDependency, and
// neighbor iteration order is the insertion order of first-seen edges,
// exactly as spec §4.A requires.
package graph
