package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandelbrot/pkg/geometry"
)

func TestAdd(t *testing.T) {
	tcs := []struct {
		name string
		a, b geometry.Complex
		want geometry.Complex
	}{
		{
			name: "reals",
			a:    geometry.New(2, 0),
			b:    geometry.New(5, 0),
			want: geometry.New(7, 0),
		},
		{
			name: "cancel to zero",
			a:    geometry.New(2, 0),
			b:    geometry.New(-2, 0),
			want: geometry.Zero(),
		},
		{
			name: "complex",
			a:    geometry.New(2, 3),
			b:    geometry.New(4, -4),
			want: geometry.New(6, -1),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Add(tc.b))
		})
	}
}

func TestMultiply(t *testing.T) {
	tcs := []struct {
		name string
		a, b geometry.Complex
		want geometry.Complex
	}{
		{
			name: "reals",
			a:    geometry.New(2, 0),
			b:    geometry.New(5, 0),
			want: geometry.New(10, 0),
		},
		{
			name: "complex",
			a:    geometry.New(2, 3),
			b:    geometry.New(5, 6),
			want: geometry.New(-8, 27),
		},
		{
			name: "i squared",
			a:    geometry.I(),
			b:    geometry.I(),
			want: geometry.New(-1, 0),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Multiply(tc.b))
		})
	}
}

func TestMagnitude(t *testing.T) {
	require.Equal(t, math.Sqrt(13.0), geometry.New(2, 3).Magnitude())
	require.Equal(t, 5.0, geometry.New(-3, 4).Magnitude())
	require.Zero(t, geometry.Zero().Magnitude())
}

func TestOperationsDoNotMutate(t *testing.T) {
	a := geometry.New(2, 3)
	b := geometry.New(5, 6)

	_ = a.Add(b)
	_ = a.Multiply(b)

	require.Equal(t, geometry.New(2, 3), a)
	require.Equal(t, geometry.New(5, 6), b)
}

func TestNaNPropagates(t *testing.T) {
	got := geometry.New(math.NaN(), 0).Multiply(geometry.New(1, 1))

	require.True(t, math.IsNaN(got.Real))
	require.False(t, got.Magnitude() < 2.0)
}

func TestString(t *testing.T) {
	require.Equal(t, "(2-4i)", geometry.New(2, -4).String())
}
