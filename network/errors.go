package network

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

func errUnknownPackage(name string) error {
	return fmt.Errorf("network: unknown package %q: %w", name, olivia.NotFound)
}
