package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarve/utils"
	"golang.org/x/image/bmp"
	"golang.org/x/term"
)

// pipeName indicates that stdin/stdout is being used as file names.
const pipeName = "-"

// Supported files
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

func isValidExtension(ext string) bool {
	return slices.Contains(validExtensions, strings.ToLower(ext))
}

// tempFile is a downloaded image which gets removed once closed.
type tempFile struct {
	*os.File
}

func (f tempFile) Close() error {
	err := f.File.Close()
	if rerr := os.Remove(f.Name()); err == nil {
		err = rerr
	}
	return err
}

// openSource opens the source image, be it a local file, a remote image or the standard input.
func openSource(ctx context.Context, in string) (io.ReadCloser, error) {
	switch {
	case in == pipeName:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	case utils.IsValidUrl(in):
		f, err := utils.DownloadImage(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("failed to load the source image: %w", err)
		}
		return tempFile{f}, nil
	default:
		f, err := os.Open(in)
		if err != nil {
			return nil, fmt.Errorf("unable to open the source file: %w", err)
		}
		return f, nil
	}
}

// readImage decodes the source image, applying the EXIF orientation if present.
func readImage(ctx context.Context, in string) (image.Image, error) {
	src, err := openSource(ctx, in)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return img, nil
}

// writeImage encodes img into the destination file, the format being chosen by its extension.
// The standard output receives a JPEG image. A partially written file is removed on failure.
func writeImage(out string, img image.Image) error {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return encodeImage(os.Stdout, "", img)
	}

	ext := filepath.Ext(out)
	if !isValidExtension(ext) {
		return fmt.Errorf("%v file type not supported", ext)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := encodeImage(f, ext, img); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	return f.Close()
}

// encodeImage encodes an image to a destination of type io.Writer.
func encodeImage(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case "", ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return errors.New("unsupported image format")
	}
}
