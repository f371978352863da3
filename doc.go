// Package olivia analyzes the vulnerability of software package
// dependency networks: directed graphs whose nodes are packages and
// whose arcs point from a package to each package it directly depends
// on.
//
// Given such a network, OLIVIA answers three families of questions:
//
//   - reachability: what does a package depend on, or get depended on
//     by, directly or transitively (package network, package coupling)
//   - cost: what propagation cost each package carries under Reach,
//     Impact, Surface, or simple dependents/dependencies counts
//     (package metric, package stats)
//   - immunization: given a candidate set of packages to treat as
//     defect-free and non-propagating, how much the network-wide
//     expected failure cost drops (package vulnerability)
//
// The engine is organized as a pipeline of small, flat packages:
//
//	graph/         — immutable CSR package graph, name↔id bimap
//	condensation/  — Tarjan SCC + quotient DAG + reverse-topo order
//	network/       — composes graph+condensation, views, metric cache
//	metric/        — Reach/Impact/Surface/*Count sweep over the DAG
//	stats/         — MetricStats arithmetic, ranking, top/bottom
//	coupling/      — transitive coupling and coupling interfaces
//	vulnerability/ — mean-of-metric and immunization delta
//	bitset/        — adaptive descendant-set representation
//	ingest/        — adjacency-list text parser (external collaborator)
//	modelio/       — OLV1 serialized model container
//
// This root package carries only module-level documentation and the
// six error kinds shared across every OLIVIA package (see errors.go);
// it exports no types or functions of its own.
package olivia
