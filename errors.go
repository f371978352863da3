package olivia

import "errors"

// The six error kinds named in the OLIVIA engine design. Every
// package-local sentinel in graph, condensation, network, stats,
// coupling, vulnerability, ingest, fixtures, and modelio wraps exactly
// one of these via %w, so errors.Is(err, olivia.NotFound) (etc.) works
// regardless of which package actually raised the error. The one
// exception is graph.ErrAlreadyFrozen, which wraps none of them. Errors
// passed through from the standard library or from gzip decoding are
// returned unwrapped. None of these
// are ever swapped in as sentinel numeric values — see each package's
// own errors.go for the specific conditions that raise them.
var (
	// NotFound indicates a package name is not present in the model.
	// Recoverable at the caller.
	NotFound = errors.New("olivia: package not found")

	// MalformedInput indicates an unparsable adjacency-list ingest file.
	MalformedInput = errors.New("olivia: malformed input")

	// DomainMismatch indicates arithmetic between two MetricStats over
	// different package universes.
	DomainMismatch = errors.New("olivia: metric domain mismatch")

	// UnsupportedMetric indicates the analytic immunization-delta
	// algorithm was requested for a metric kind other than Reach.
	UnsupportedMetric = errors.New("olivia: unsupported metric for requested algorithm")

	// CorruptedModel indicates a serialized model file has the wrong
	// magic, an unsupported version, or a failing section checksum.
	CorruptedModel = errors.New("olivia: corrupted model file")

	// InvariantViolation indicates an internal bug in the engine
	// (e.g. a package left unassigned to any SCC after condensation).
	// Fatal; never swallowed by any public operation.
	InvariantViolation = errors.New("olivia: internal invariant violation")
)
