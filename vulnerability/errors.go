package vulnerability

import (
	"fmt"

	"github.com/oliviagraph/olivia"
)

func errUnknownTarget(name string) error {
	return fmt.Errorf("vulnerability: target package %q: %w", name, olivia.NotFound)
}

func errAnalyticMetric(name string) error {
	return fmt.Errorf("vulnerability: analytic algorithm only supports the reach metric, got %q: %w", name, olivia.UnsupportedMetric)
}
