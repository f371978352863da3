// Package network composes graph, condensation, metric, coupling, and
// vulnerability into the single façade spec §6 calls a "Model": the
// object a caller actually holds and queries for a per-package view
// (direct/transitive dependencies and dependants, reach, impact,
// surface, coupling) or whole-network numbers (failure vulnerability,
// immunization delta).
//
// Model caches every metric it computes, keyed by Kind name, and
// coalesces concurrent requests for the same not-yet-cached metric
// with golang.org/x/sync/singleflight, so N goroutines asking for
// "reach" on a cold Model trigger exactly one sweep.
package network
