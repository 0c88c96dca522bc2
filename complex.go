package fractal

// Complex is a point on the complex plane. It is a plain value type with no
// identity; camera bounds and per-pixel iterates are copies, never shared.
type Complex struct {
	Re, Im float64
}

func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func (a Complex) Sub(b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul is the standard complex product.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// AbsSqr returns |a|². The escape test compares squared magnitudes so the
// iteration loop never pays for a square root.
func (a Complex) AbsSqr() float64 {
	return a.Re*a.Re + a.Im*a.Im
}
