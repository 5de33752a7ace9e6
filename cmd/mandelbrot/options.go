package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/pflag"
)

const (
	DefaultWidth      = 512
	DefaultHeight     = 512
	DefaultIterations = 10
	DefaultOutput     = "mandelbrot.jpg"
)

var ErrNegativeDimension = errors.New("dimensions must not be negative")

// Options are the settings for a single render.
type Options struct {
	Width      int
	Height     int
	Iterations int
	Output     string

	// Parallel is the number of rows computed at once.
	Parallel int
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Width, "width", DefaultWidth, "image width in pixels")
	fs.IntVar(&o.Height, "height", DefaultHeight, "image height in pixels")
	fs.IntVar(&o.Iterations, "iterations", DefaultIterations, "escape test iteration count")
	fs.StringVarP(&o.Output, "output", "o", DefaultOutput, "destination file; the extension picks jpg, png or gif")
	fs.IntVar(&o.Parallel, "parallel", runtime.NumCPU(), "number of rows to compute concurrently")
}

func (o *Options) Validate() error {
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("%w: got %dx%d", ErrNegativeDimension, o.Width, o.Height)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative: got %d", o.Iterations)
	}
	if o.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1: got %d", o.Parallel)
	}
	if o.Output == "" {
		return errors.New("output must not be empty")
	}

	return nil
}
