package geometry

import (
	"fmt"
	"math"
)

// Complex is a point in the complex plane.
//
// Values are never mutated; every operation returns a new Complex.
type Complex struct {
	Real      float64
	Imaginary float64
}

func New(re, im float64) Complex {
	return Complex{Real: re, Imaginary: im}
}

// Zero is the additive identity.
func Zero() Complex {
	return Complex{}
}

// I is the imaginary unit.
func I() Complex {
	return New(0.0, 1.0)
}

func (a Complex) Add(b Complex) Complex {
	return Complex{
		Real:      a.Real + b.Real,
		Imaginary: a.Imaginary + b.Imaginary,
	}
}

func (a Complex) Multiply(b Complex) Complex {
	return Complex{
		Real:      a.Real*b.Real - a.Imaginary*b.Imaginary,
		Imaginary: a.Real*b.Imaginary + b.Real*a.Imaginary,
	}
}

// Magnitude is the Euclidean norm of the point.
func (a Complex) Magnitude() float64 {
	return math.Sqrt(a.Real*a.Real + a.Imaginary*a.Imaginary)
}

func (a Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", a.Real, a.Imaginary)
}
