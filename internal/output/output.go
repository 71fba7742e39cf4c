// Package output writes source copies and generated variants into the
// output directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bagtoad/imgaug/internal/augment"
	"github.com/bagtoad/imgaug/internal/imageio"
	"github.com/bagtoad/imgaug/internal/scanner"
)

// WriteResult records what happened to a single generated variant.
type WriteResult struct {
	SourcePath string
	DestPath   string
	Index      int
	Params     augment.Params
}

// Writer places files in Dir. If DryRun is true, paths are computed but
// nothing touches the filesystem.
type Writer struct {
	Dir     string
	Quality int
	DryRun  bool
}

// VariantName returns the file name for variant k of the image at srcPath:
// name_au{k}.jpg.
func VariantName(srcPath string, k int) string {
	return fmt.Sprintf("%s_au%d.jpg", scanner.BaseName(srcPath), k)
}

// Prepare creates the output directory.
func (w *Writer) Prepare() error {
	if w.DryRun {
		return nil
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create output folder %q: %w", w.Dir, err)
	}
	return nil
}

// CopyOriginal copies the source image unmodified into Dir under its own
// name and returns the destination path.
func (w *Writer) CopyOriginal(srcPath string) (string, error) {
	destPath := filepath.Join(w.Dir, filepath.Base(srcPath))
	if w.DryRun {
		return destPath, nil
	}
	if same, err := samePath(srcPath, destPath); err == nil && same {
		return destPath, nil
	}
	if err := imageio.CopyFile(srcPath, destPath); err != nil {
		return "", fmt.Errorf("cannot copy %s to %s: %w", srcPath, destPath, err)
	}
	return destPath, nil
}

// WriteVariants saves each variant as a JPEG named after srcPath and its
// position in the batch. Writing stops at the first failure.
func (w *Writer) WriteVariants(srcPath string, variants []augment.Variant) ([]WriteResult, error) {
	results := make([]WriteResult, 0, len(variants))

	for k, v := range variants {
		destPath := filepath.Join(w.Dir, VariantName(srcPath, k))

		if !w.DryRun {
			if err := imageio.SaveJPEG(v.Image, destPath, w.Quality); err != nil {
				return results, fmt.Errorf("cannot write variant %d of %s: %w", k, srcPath, err)
			}
		}

		results = append(results, WriteResult{
			SourcePath: srcPath,
			DestPath:   destPath,
			Index:      k,
			Params:     v.Params,
		})
	}

	return results, nil
}

// Overlaps reports whether dir is the writer's output directory, so that
// files found there may be variants this writer produced earlier. A missing
// output directory overlaps nothing.
func (w *Writer) Overlaps(dir string) bool {
	same, err := samePath(dir, w.Dir)
	return err == nil && same
}

// samePath reports whether a and b resolve to the same file.
func samePath(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ai, bi), nil
}
