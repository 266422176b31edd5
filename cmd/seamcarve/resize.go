package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/seamcarve"
	"github.com/esimov/seamcarve/utils"
	"github.com/spf13/cobra"
)

// resizer shrinks images by removing one seam at a time.
type resizer struct {
	width      int
	height     int
	percentage bool
	debug      bool
	logger     *log.Logger
}

func newResizer(cfg config, logger *log.Logger) *resizer {
	return &resizer{
		width:      cfg.Width,
		height:     cfg.Height,
		percentage: cfg.Percentage,
		debug:      cfg.Debug,
		logger:     logger,
	}
}

// targetSize computes the final dimensions of a w x h image.
// A zero width or height leaves that dimension unchanged.
func (r *resizer) targetSize(w, h int) (int, int, error) {
	nw, nh := r.width, r.height
	if r.percentage {
		nw = w - w*r.width/100
		nh = h - h*r.height/100
	}
	if nw == 0 {
		nw = w
	}
	if nh == 0 {
		nh = h
	}
	if nw > w || nh > h {
		return 0, 0, fmt.Errorf("image enlargement is not supported: %dx%d to %dx%d", w, h, nw, nh)
	}
	return nw, nh, nil
}

// resize removes seams from img until it reaches the target size.
// Vertical and horizontal removals are interleaved when both dimensions shrink.
func (r *resizer) resize(ctx context.Context, img image.Image) (*image.NRGBA, error) {
	pic := seamcarve.NewPicture(img)
	nw, nh, err := r.targetSize(pic.Width(), pic.Height())
	if err != nil {
		return nil, err
	}

	c := seamcarve.NewCarver(pic)
	for pic.Width() > nw || pic.Height() > nh {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := nextDirection(pic.Width()-nw, pic.Height()-nh)
		seam, err := c.FindSeam(dir)
		if err != nil {
			return nil, err
		}
		if r.debug {
			cost, err := seam.Cost(pic, dir)
			if err != nil {
				return nil, err
			}
			r.logger.Debug("removing seam", "direction", dir, "cost", cost,
				"width", pic.Width(), "height", pic.Height())
		}
		if err := pic.RemoveSeam(seam, dir); err != nil {
			return nil, err
		}
	}

	return pic.Image(), nil
}

// nextDirection picks the dimension with the most seams left to remove, columns first.
func nextDirection(cols, rows int) seamcarve.Direction {
	if rows > cols {
		return seamcarve.Horizontal
	}
	return seamcarve.Vertical
}

func (a *app) resizeCommand() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Shrink an image by removing low energy seams",
		Long: `Shrink an image by removing the lowest energy seams one at a time.
The source may be an image file, an URL, "-" for stdin or a directory,
in which case every supported image is resized into the destination directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runResize(cmd.Context(), cmd.ErrOrStderr(), in, out)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in, "in", "i", pipeName, "Source image, directory or URL")
	f.StringVarP(&out, "out", "o", pipeName, "Destination image or directory")
	f.IntVar(&a.flags.Width, "width", 0, "New width")
	f.IntVar(&a.flags.Height, "height", 0, "New height")
	f.BoolVar(&a.flags.Percentage, "perc", false, "Reduce the image by the width and height percentage")
	f.BoolVar(&a.flags.Debug, "debug", false, "Log every removed seam")
	f.IntVar(&a.flags.Workers, "conc", a.flags.Workers, "Number of files to process concurrently")

	return cmd
}

func (a *app) runResize(ctx context.Context, w io.Writer, in, out string) error {
	if a.cfg.Width == 0 && a.cfg.Height == 0 {
		return errors.New("please provide the new width, height or both")
	}

	logger := loggerFromContext(ctx)
	r := newResizer(a.cfg, logger)
	now := time.Now()

	if fi, err := os.Stat(in); err == nil && fi.IsDir() {
		if out == pipeName {
			return errors.New("a source directory needs a destination directory")
		}
		n, err := r.resizeDir(ctx, in, out, a.cfg.Workers)
		logger.Info("directory processed", "dir", in, "resized", n,
			"elapsed", utils.FormatTime(time.Since(now)))
		return err
	}

	err := a.withSpinner(ctx, "resizing image (be patient, it may take a while)...", func() error {
		return r.resizeFile(ctx, in, out)
	})
	if err != nil {
		return err
	}
	printStatus(w, out, time.Since(now))

	return nil
}
