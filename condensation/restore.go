package condensation

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

func errComponentMismatch(reason string) error {
	return fmt.Errorf("condensation: %s: %w", reason, olivia.InvariantViolation)
}

// FromComponents reconstructs a Condensation directly from its already
// computed parts, bypassing Tarjan. Used by package modelio to restore
// a serialized model without re-running SCC discovery on load.
// Callers are responsible for the parts being mutually consistent (as
// they are when round-tripped through modelio); this only checks
// lengths agree.
func FromComponents(nodeSCC []SCCID, members [][]int32, condOut, condIn [][]SCCID, intraArcs, crossArcs []int64) (*Condensation, error) {
	numSCC := len(members)
	if len(condOut) != numSCC || len(condIn) != numSCC || len(intraArcs) != numSCC || len(crossArcs) != numSCC {
		return nil, errComponentMismatch("mismatched component slice lengths")
	}
	return &Condensation{
		nodeSCC:   nodeSCC,
		members:   members,
		condOut:   condOut,
		condIn:    condIn,
		intraArcs: intraArcs,
		crossArcs: crossArcs,
	}, nil
}
