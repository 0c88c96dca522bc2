package fractal

import "testing"

// TestEscapeIterations pins the countdown semantics: remaining starts at
// maxIter, each z ← z²+c pass costs one, and a point that exhausts the
// budget reports 0 (presumed in the set).
func TestEscapeIterations(t *testing.T) {
	tests := []struct {
		name           string
		c              Complex
		maxIter        int
		radiusSqr      float64
		wantRemaining  int
		wantNormalized float64
	}{
		{
			name: "zero never escapes",
			c:    Complex{}, maxIter: 255, radiusSqr: 4,
			wantRemaining: 0, wantNormalized: 0,
		},
		{
			name: "two escapes on the second pass",
			// z1 = 2 (|z|² = 4, not above threshold), z2 = 6 escapes.
			c:    Complex{Re: 2}, maxIter: 255, radiusSqr: 4,
			wantRemaining: 254, wantNormalized: 254.0 / 255.0,
		},
		{
			name: "far point escapes immediately",
			c:    Complex{Re: 3}, maxIter: 255, radiusSqr: 4,
			wantRemaining: 255, wantNormalized: 1,
		},
		{
			name: "minus one cycles forever",
			// Orbit alternates -1, 0, -1, ... — period two inside the set.
			c:    Complex{Re: -1}, maxIter: 255, radiusSqr: 4,
			wantRemaining: 0, wantNormalized: 0,
		},
		{
			name: "tiny budget still escapes",
			c:    Complex{Re: 3}, maxIter: 1, radiusSqr: 4,
			wantRemaining: 1, wantNormalized: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, normalized := EscapeIterations(tt.c, tt.maxIter, tt.radiusSqr)
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %d, want %d", remaining, tt.wantRemaining)
			}
			if normalized != tt.wantNormalized {
				t.Errorf("normalized = %v, want %v", normalized, tt.wantNormalized)
			}
		})
	}
}

// TestEscapeIterationsIdempotent: the evaluator is a pure function, so
// repeated calls with the same inputs agree exactly.
func TestEscapeIterationsIdempotent(t *testing.T) {
	c := Complex{Re: -0.7435, Im: 0.1314}

	r1, n1 := EscapeIterations(c, DefaultMaxIter, DefaultEscapeRadiusSqr)
	r2, n2 := EscapeIterations(c, DefaultMaxIter, DefaultEscapeRadiusSqr)

	if r1 != r2 || n1 != n2 {
		t.Errorf("repeated calls disagree: (%d, %v) vs (%d, %v)", r1, n1, r2, n2)
	}
}
