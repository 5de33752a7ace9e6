package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
	"github.com/willbeason/mandelbrot/pkg/raster"
)

func mainCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render which points of [-3, 3] x [-3, 3] stay bounded under z*z + c",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}

func runCmd(cmd *cobra.Command, opts *Options) error {
	err := opts.Validate()
	if err != nil {
		return err
	}

	// Fail before computing if the output can't be encoded.
	_, err = raster.EncoderFor(opts.Output)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	canvas := mandelbrot.NewCanvas(opts.Width, opts.Height)

	if opts.Parallel == 1 {
		canvas.Compute(opts.Iterations)
	} else {
		err = canvas.ComputeParallel(cmd.Context(), opts.Iterations, opts.Parallel)
		if err != nil {
			return err
		}
	}

	err = canvas.Render(opts.Output)
	if err != nil {
		return err
	}

	cmd.Printf("wrote %s: %dx%d, %d iterations, %d members\n",
		opts.Output, opts.Width, opts.Height, opts.Iterations, canvas.Members())

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
