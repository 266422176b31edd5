package main

import (
	"context"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarve"
	"github.com/esimov/seamcarve/utils"
	"github.com/spf13/cobra"
)

func (a *app) seamCommand() *cobra.Command {
	var in, out, dir string
	cmd := &cobra.Command{
		Use:   "seam",
		Short: "Find the lowest energy seam of an image",
		Long: `Find the lowest energy seam of an image and print its indices.
A vertical seam holds one column index per row, a horizontal seam one row index per column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := seamcarve.ParseDirection(dir)
			if err != nil {
				return err
			}
			return a.runSeam(cmd.Context(), cmd.OutOrStdout(), in, out, d)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in, "in", "i", pipeName, "Source image or URL")
	f.StringVarP(&out, "out", "o", "", "Write the image with the seam drawn over it")
	f.StringVarP(&dir, "dir", "d", seamcarve.Vertical.String(), "Seam direction (vertical|horizontal)")
	f.StringVar(&a.flags.SeamColor, "seam-color", a.flags.SeamColor, "Seam color in hex format (#rgb or #rrggbb)")

	return cmd
}

func (a *app) runSeam(ctx context.Context, w io.Writer, in, out string, dir seamcarve.Direction) error {
	img, err := readImage(ctx, in)
	if err != nil {
		return err
	}

	pic := seamcarve.NewPicture(img)
	seam, err := seamcarve.NewCarver(pic).FindSeam(dir)
	if err != nil {
		return err
	}
	cost, err := seam.Cost(pic, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s seam (energy %.2f): %v\n", dir, cost, []int(seam))

	if out == "" {
		return nil
	}
	col, err := utils.HexToRGBA(a.cfg.SeamColor)
	if err != nil {
		return err
	}
	dst := imaging.Clone(pic.Image())
	seamcarve.DrawSeam(dst, seam, dir, col)

	return writeImage(out, dst)
}
