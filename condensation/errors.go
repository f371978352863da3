package condensation

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

// errUnassigned is raised if, after a full Tarjan pass, some package id
// was never assigned to an SCC — an internal bug, never a user-facing
// condition (every package belongs to exactly one SCC by construction).
func errUnassigned(id int32) error {
	return fmt.Errorf("condensation: package id %d left unassigned after Tarjan: %w", id, olivia.InvariantViolation)
}
