package fixtures

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

func errTooFewPackages(method string, n, min int) error {
	return fmt.Errorf("fixtures: %s: n=%d below minimum %d: %w", method, n, min, olivia.MalformedInput)
}
