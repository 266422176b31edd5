package seamcarve

import (
	"image"
	"image/color"
)

// DrawSeam paints the pixels of a seam onto dst with the provided color.
// It is meant to visualize the seam before it gets removed.
// Seam points falling outside of dst are skipped.
func DrawSeam(dst *image.NRGBA, seam Seam, dir Direction, col color.Color) {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	b := dst.Bounds()

	for _, p := range seam.Points(dir) {
		pt := image.Pt(b.Min.X+p.X, b.Min.Y+p.Y)
		if !pt.In(b) {
			continue
		}
		dst.SetNRGBA(pt.X, pt.Y, c)
	}
}
