package fractal

// Defaults shared by the renderer and the hosts.
const (
	DefaultMaxIter         = 255
	DefaultEscapeRadiusSqr = 4.0
)

// EscapeIterations runs the escape-time recurrence z ← z² + c from z = 0 and
// reports how many iterations of the budget were left when |z|² first
// exceeded escapeRadiusSqr, both as a count and normalized to [0,1]. A point
// that exhausts the budget returns (0, 0): presumed inside the set, not
// proven.
//
// Pure function of its inputs. Callers must ensure maxIter ≥ 1; maxIter = 0
// divides by zero, per the no-validation hot-path contract.
func EscapeIterations(c Complex, maxIter int, escapeRadiusSqr float64) (remaining int, normalized float64) {
	var z Complex
	i := maxIter
	for ; i > 0; i-- {
		z = z.Mul(z).Add(c)
		if z.AbsSqr() > escapeRadiusSqr {
			break
		}
	}
	return i, float64(i) / float64(maxIter)
}
