// Package vulnerability computes failure_vulnerability and
// immunization_delta over a network, grounded on spec.md §4.G.
//
// Two immunization-delta algorithms are offered: network, which
// rebuilds the graph with every target package's out-edges stripped
// and recomputes the metric from scratch (correct for any metric
// kind), and analytic, which reuses the existing condensation and
// resweeps only the SCCs upstream of the target set (Reach only).
// Analytic falls back to network whenever a target package sits inside
// a non-singleton SCC, since removing only that member's out-edges can
// split the SCC in ways a restricted sweep over the unchanged
// condensation cannot represent.
package vulnerability
