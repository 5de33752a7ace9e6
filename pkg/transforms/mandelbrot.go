package transforms

import "github.com/willbeason/mandelbrot/pkg/geometry"

// A Recurrence advances z one step for the parameter c.
type Recurrence interface {
	Next(z, c geometry.Complex) geometry.Complex
}

// Mandelbrot is the quadratic step z*z + c, shifted by C.
// The zero value is the standard Mandelbrot recurrence.
type Mandelbrot struct {
	C geometry.Complex
}

func (m Mandelbrot) Next(z, c geometry.Complex) geometry.Complex {
	return z.Multiply(z).Add(c).Add(m.C)
}

var _ Recurrence = Mandelbrot{}
