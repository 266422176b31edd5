package main

import (
	"context"
	"image"
	"image/color"
	"math"

	"github.com/esimov/seamcarve"
	"github.com/esimov/seamcarve/utils"
	"github.com/spf13/cobra"
)

func (a *app) energyCommand() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Render the energy map of an image",
		Long:  "Render the energy of every pixel as a grayscale image, normalized to the highest energy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runEnergy(cmd.Context(), in, out)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in, "in", "i", pipeName, "Source image or URL")
	f.StringVarP(&out, "out", "o", pipeName, "Destination image")

	return cmd
}

func (a *app) runEnergy(ctx context.Context, in, out string) error {
	img, err := readImage(ctx, in)
	if err != nil {
		return err
	}

	var res *image.Gray
	err = a.withSpinner(ctx, "computing the energy map...", func() error {
		var err error
		res, err = energyMap(seamcarve.NewPicture(img))
		return err
	})
	if err != nil {
		return err
	}
	if err := writeImage(out, res); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("energy map written", "out", out,
		"width", res.Bounds().Dx(), "height", res.Bounds().Dy())

	return nil
}

// energyMap renders the energy of every pixel of g as a grayscale image.
// The brightest pixels are the ones having the highest energy.
func energyMap(g seamcarve.Grid) (*image.Gray, error) {
	w, h := g.Width(), g.Height()
	energies := make([]float64, w*h)

	var maxEnergy float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e, err := seamcarve.Energy(g, x, y)
			if err != nil {
				return nil, err
			}
			energies[x+y*w] = e
			maxEnergy = utils.Max(maxEnergy, e)
		}
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	if maxEnergy == 0 {
		return dst, nil
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := math.Round(energies[x+y*w] / maxEnergy * 255)
			dst.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return dst, nil
}
