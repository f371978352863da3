package stats

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

// errDomainMismatch reports that two MetricStats were combined despite
// covering different package universes. Wraps olivia.DomainMismatch.
func errDomainMismatch(reason string) error {
	return fmt.Errorf("stats: %s: %w", reason, olivia.DomainMismatch)
}
