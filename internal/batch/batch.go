// Package batch expands every image of a scanned directory into variants,
// isolating failures per image.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/bagtoad/imgaug/internal/augment"
	"github.com/bagtoad/imgaug/internal/imageio"
	"github.com/bagtoad/imgaug/internal/output"
	"github.com/bagtoad/imgaug/internal/scanner"
	"golang.org/x/sync/errgroup"
)

// Status describes what happened to one source image.
type Status string

const (
	StatusAugmented Status = "augmented"
	StatusFinal     Status = "final"
	StatusFailed    Status = "failed"
)

// Result holds the outcome for a single source image.
type Result struct {
	Path     string
	Status   Status
	Original string
	Variants []output.WriteResult
	Err      error
}

// Options controls a batch run.
type Options struct {
	// Workers bounds how many images are processed at once. Zero means
	// runtime.NumCPU().
	Workers int
	// Seed selects the random streams. Image i draws from augment.NewRand(Seed, i).
	Seed   uint64
	Config augment.Config
	Logger *slog.Logger
	// Progress is called after each image finishes. Calls are serialized
	// and done increases by one each time.
	Progress func(done, total int)
}

// Run processes paths concurrently and returns one Result per path, in the
// same order. A failing image is recorded in its Result and does not stop
// the others; the returned error is non-nil only if ctx is cancelled.
func Run(ctx context.Context, paths []string, w *output.Writer, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(paths))
	var (
		mu   sync.Mutex
		done int
	)
	finished := func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(paths))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := augment.NewRand(opts.Seed, uint64(i))
			results[i] = processImage(path, w, augment.NewExpander(opts.Config, rng), logger)
			finished()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func processImage(path string, w *output.Writer, e *augment.Expander, logger *slog.Logger) Result {
	result := Result{Path: path}
	fail := func(msg string, err error) Result {
		logger.Warn(msg, "path", path, "error", err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	img, partial, err := imageio.LoadFile(path)
	if err != nil {
		return fail("Skipping unreadable image", err)
	}
	if partial {
		logger.Warn("Image is truncated, using partial decode", "path", path)
	}

	dest, err := w.CopyOriginal(path)
	if err != nil {
		return fail("Cannot copy original", err)
	}
	result.Original = dest

	if scanner.IsFinal(path) {
		logger.Info("Image tagged as final, not augmenting", "path", path)
		result.Status = StatusFinal
		return result
	}

	variants, err := e.Expand(img)
	if err != nil {
		return fail("Augmentation failed", err)
	}

	writes, err := w.WriteVariants(path, variants)
	result.Variants = writes
	if err != nil {
		return fail("Cannot write variants", err)
	}

	logger.Debug("Augmented image", "path", path, "variants", len(writes))
	result.Status = StatusAugmented
	return result
}
