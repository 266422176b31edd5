package seamcarve

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Picture is a mutable image buffer implementing Grid.
// Seams are removed from it in place; the pixels are kept in non-premultiplied RGBA.
type Picture struct {
	img *image.NRGBA
}

var _ Grid = (*Picture)(nil)

// NewPicture copies src into a new Picture with its origin at (0, 0).
func NewPicture(src image.Image) *Picture {
	return &Picture{img: imaging.Clone(src)}
}

// Image returns the current pixels of the picture.
// The returned image is replaced, not modified, by the next seam removal.
func (p *Picture) Image() *image.NRGBA { return p.img }

// Width returns the current width of the picture.
func (p *Picture) Width() int { return p.img.Bounds().Dx() }

// Height returns the current height of the picture.
func (p *Picture) Height() int { return p.img.Bounds().Dy() }

// ColorAt returns the RGB channels of the pixel at column x and row y.
func (p *Picture) ColorAt(x, y int) (r, g, b uint8, err error) {
	if !inBounds(p, x, y) {
		return 0, 0, 0, outOfBounds(x, y, p.Width(), p.Height())
	}
	i := p.img.PixOffset(x, y)
	px := p.img.Pix[i : i+3 : i+3]

	return px[0], px[1], px[2], nil
}

// RemoveVerticalSeam removes one pixel per row, narrowing the picture by one column.
func (p *Picture) RemoveVerticalSeam(seam Seam) error {
	if p.Width() <= 1 {
		return fmt.Errorf("%w: picture is only one pixel wide", ErrInvalidSeam)
	}
	if err := seam.Validate(p, Vertical); err != nil {
		return err
	}

	w, h := p.Width(), p.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w-1, h))
	for y := 0; y < h; y++ {
		src := p.img.Pix[y*p.img.Stride : y*p.img.Stride+w*4]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+(w-1)*4]
		cut := seam[y] * 4
		copy(row[:cut], src[:cut])
		copy(row[cut:], src[cut+4:])
	}
	p.img = dst

	return nil
}

// RemoveHorizontalSeam removes one pixel per column, lowering the picture by one row.
func (p *Picture) RemoveHorizontalSeam(seam Seam) error {
	if p.Height() <= 1 {
		return fmt.Errorf("%w: picture is only one pixel high", ErrInvalidSeam)
	}
	if err := seam.Validate(p, Horizontal); err != nil {
		return err
	}

	w, h := p.Width(), p.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h-1))
	for x := 0; x < w; x++ {
		for y, dy := 0, 0; y < h; y++ {
			if y == seam[x] {
				continue
			}
			si := p.img.PixOffset(x, y)
			di := dst.PixOffset(x, dy)
			copy(dst.Pix[di:di+4], p.img.Pix[si:si+4])
			dy++
		}
	}
	p.img = dst

	return nil
}

// RemoveSeam removes a seam of the given direction.
func (p *Picture) RemoveSeam(seam Seam, dir Direction) error {
	if dir == Vertical {
		return p.RemoveVerticalSeam(seam)
	}
	return p.RemoveHorizontalSeam(seam)
}
