package stats

import "math"

type binOp func(a, b float64) float64

func addOp(a, b float64) float64 { return a + b }
func subOp(a, b float64) float64 { return a - b }
func mulOp(a, b float64) float64 { return a * b }
func divOp(a, b float64) float64 { return a / b }
func powOp(a, b float64) float64 { return math.Pow(a, b) }

// elementwise applies op to every package shared between m and other.
// Both operands must cover exactly the same domain; otherwise
// DomainMismatch is returned (spec §4.E).
func (m *MetricStats) elementwise(other *MetricStats, op binOp) (*MetricStats, error) {
	if !m.sameDomain(other) {
		return nil, errDomainMismatch("element-wise op requires identical package universes")
	}
	out := make(map[string]float64, len(m.values))
	for k, v := range m.values {
		out[k] = op(v, other.values[k])
	}
	return New(out)
}

// broadcast applies op(v, scalar) to every package's value.
func (m *MetricStats) broadcast(scalar float64, op binOp) (*MetricStats, error) {
	out := make(map[string]float64, len(m.values))
	for k, v := range m.values {
		out[k] = op(v, scalar)
	}
	return New(out)
}

// Add returns the element-wise sum of m and other.
func (m *MetricStats) Add(other *MetricStats) (*MetricStats, error) { return m.elementwise(other, addOp) }

// Sub returns the element-wise difference of m and other.
func (m *MetricStats) Sub(other *MetricStats) (*MetricStats, error) { return m.elementwise(other, subOp) }

// Mul returns the element-wise product of m and other.
func (m *MetricStats) Mul(other *MetricStats) (*MetricStats, error) { return m.elementwise(other, mulOp) }

// Div returns the element-wise quotient of m and other.
func (m *MetricStats) Div(other *MetricStats) (*MetricStats, error) { return m.elementwise(other, divOp) }

// Pow returns m raised element-wise to other's powers.
func (m *MetricStats) Pow(other *MetricStats) (*MetricStats, error) { return m.elementwise(other, powOp) }

// AddScalar returns m with scalar added to every value.
func (m *MetricStats) AddScalar(scalar float64) (*MetricStats, error) { return m.broadcast(scalar, addOp) }

// SubScalar returns m with scalar subtracted from every value.
func (m *MetricStats) SubScalar(scalar float64) (*MetricStats, error) { return m.broadcast(scalar, subOp) }

// MulScalar returns m with every value multiplied by scalar.
func (m *MetricStats) MulScalar(scalar float64) (*MetricStats, error) { return m.broadcast(scalar, mulOp) }

// DivScalar returns m with every value divided by scalar.
func (m *MetricStats) DivScalar(scalar float64) (*MetricStats, error) { return m.broadcast(scalar, divOp) }

// PowScalar returns m with every value raised to scalar.
func (m *MetricStats) PowScalar(scalar float64) (*MetricStats, error) { return m.broadcast(scalar, powOp) }
