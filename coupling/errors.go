package coupling

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

func errClosuresTooShort(scc, have int) error {
	return fmt.Errorf("coupling: closure for scc %d missing (have %d closures): %w", scc, have, olivia.InvariantViolation)
}
