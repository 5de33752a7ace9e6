package mandelbrot

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/raster"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

const (
	// DomainMin and DomainMax bound both axes of the sampled plane.
	DomainMin = -3.0
	DomainMax = 3.0

	// EscapeRadius is the magnitude at or above which a point is not a member.
	EscapeRadius = 2.0
)

var recurrence transforms.Recurrence = transforms.Mandelbrot{}

// InSet reports whether c is classified as a member after exactly iterations
// steps. There is no early bailout: a point that diverges to NaN or Inf is
// still iterated, and fails the final magnitude check.
func InSet(c geometry.Complex, iterations int) bool {
	accum := c

	for i := 0; i < iterations; i++ {
		accum = recurrence.Next(accum, c)
	}

	return accum.Magnitude() < EscapeRadius
}

// A Canvas is a membership bitmap over the fixed domain.
//
// Pixels are stored row-major: pixel (x, y) is pixels[y*width+x].
type Canvas struct {
	width, height int
	pixels        []bool
}

// NewCanvas allocates a canvas with every pixel a non-member.
// Zero dimensions produce an empty canvas; negative dimensions panic.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("negative canvas dimensions %dx%d", width, height))
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

// At reports whether pixel (x, y) is a member.
func (c *Canvas) At(x, y int) bool {
	return c.pixels[y*c.width+x]
}

// Members is the number of member pixels.
func (c *Canvas) Members() int {
	n := 0
	for _, p := range c.pixels {
		if p {
			n++
		}
	}
	return n
}

// Point maps pixel (x, y) to the plane.
//
// The per-pixel step 1/width is scaled by the whole domain span, so x sweeps
// [DomainMin, DomainMax) as it goes from 0 to width.
func (c *Canvas) Point(x, y int) geometry.Complex {
	xStep := 1.0 / float64(c.width)
	yStep := 1.0 / float64(c.height)
	span := DomainMax - DomainMin

	r := DomainMin + (float64(x)*xStep)*span
	i := DomainMin + (float64(y)*yStep)*span

	return geometry.New(r, i)
}

func (c *Canvas) computeRow(y, iterations int) {
	row := c.pixels[y*c.width : (y+1)*c.width]
	for x := range row {
		if InSet(c.Point(x, y), iterations) {
			row[x] = true
		}
	}
}

// Compute evaluates every pixel in order on the calling goroutine.
// Calling it again with the same iterations leaves the bitmap unchanged.
func (c *Canvas) Compute(iterations int) {
	for y := 0; y < c.height; y++ {
		c.computeRow(y, iterations)
	}
}

// ComputeParallel produces the same bitmap as Compute, spreading rows over at
// most workers goroutines. Each row belongs to exactly one goroutine.
// If workers < 1, runtime.NumCPU() is used.
//
// Returns ctx.Err() if ctx is done by the time the workers stop; the bitmap may
// then be only partially evaluated.
func (c *Canvas) ComputeParallel(ctx context.Context, iterations, workers int) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < c.height; y++ {
		if gctx.Err() != nil {
			break
		}

		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.computeRow(y, iterations)
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return err
	}

	return ctx.Err()
}

// Image draws members white and everything else black.
func (c *Canvas) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.width, c.height))

	for i, p := range c.pixels {
		if p {
			img.SetGray(i%c.width, i/c.width, color.Gray{Y: 0xff})
		}
	}

	return img
}

// Render writes the bitmap to path. The extension of path picks the format.
func (c *Canvas) Render(path string) error {
	err := raster.Write(path, c.Image())
	if err != nil {
		return fmt.Errorf("rendering %dx%d canvas: %w", c.width, c.height, err)
	}

	return nil
}
