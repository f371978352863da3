package ingest

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

func errMalformedLine(lineNo int, reason string) error {
	return fmt.Errorf("ingest: line %d: %s: %w", lineNo, reason, olivia.MalformedInput)
}
