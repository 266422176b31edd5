package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// resizeFile resizes a single image, the result being written to out.
func (r *resizer) resizeFile(ctx context.Context, in, out string) error {
	img, err := readImage(ctx, in)
	if err != nil {
		return err
	}
	res, err := r.resize(ctx, img)
	if err != nil {
		return err
	}
	return writeImage(out, res)
}

// resizeDir resizes every supported image found in the src directory tree, with at most
// workers images processed at the same time. The results are written into the dst directory
// at the same relative path they have under src. A failing image does not stop the others;
// all the failures are reported together.
func (r *resizer) resizeDir(ctx context.Context, src, dst string, workers int) (int, error) {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return 0, fmt.Errorf("unable to create the destination directory: %w", err)
	}
	skip, err := filepath.Abs(dst)
	if err != nil {
		return 0, err
	}

	var (
		mu    sync.Mutex
		errs  []error
		count int
	)
	g := new(errgroup.Group)
	g.SetLimit(workers)

	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			// Do not pick up the images produced by this run.
			if abs, err := filepath.Abs(path); err == nil && abs == skip && path != src {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !isValidExtension(filepath.Ext(path)) {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)
		g.Go(func() error {
			err := os.MkdirAll(filepath.Dir(out), 0755)
			if err == nil {
				err = r.resizeFile(ctx, path, out)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.logger.Error("resizing image failed", "file", path, "err", err)
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
				return nil
			}
			r.logger.Info("image resized", "file", path, "out", out)
			count++
			return nil
		})
		return nil
	})
	// The workers never fail the group, every error is collected in errs.
	_ = g.Wait()

	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	return count, errors.Join(errs...)
}
