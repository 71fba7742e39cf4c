// Package scanner provides directory scanning, image file filtering and the
// naming policy that decides which images are augmented.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FinalSuffix marks a source image that is copied but never augmented.
const FinalSuffix = "_0"

// generatedPattern matches base names written by the variant writer.
var generatedPattern = regexp.MustCompile(`_au[0-9]+$`)

// SupportedExtensions contains the set of image file extensions we process.
var SupportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
}

// Result holds the output of scanning a directory.
type Result struct {
	ImagePaths     []string
	SkippedCount   int
	GeneratedCount int
}

// Scan walks the given directory (non-recursive) and returns image file paths
// and a count of skipped non-image files.
func Scan(dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	result := &Result{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if SupportedExtensions[ext] {
			result.ImagePaths = append(result.ImagePaths, filepath.Join(dir, entry.Name()))
		} else {
			result.SkippedCount++
		}
	}

	if len(result.ImagePaths) == 0 {
		return nil, fmt.Errorf("no image files found in %s", dir)
	}

	return result, nil
}

// ExcludeGenerated removes images that look like variants written by a
// previous run and returns them. Only call it when the scanned directory is
// also the output directory; elsewhere such names are ordinary inputs.
func (r *Result) ExcludeGenerated() []string {
	var kept, excluded []string
	for _, path := range r.ImagePaths {
		if IsGenerated(path) {
			excluded = append(excluded, path)
		} else {
			kept = append(kept, path)
		}
	}
	r.ImagePaths = kept
	r.GeneratedCount += len(excluded)
	return excluded
}

// BaseName returns the file name of path without directory or extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsFinal reports whether the image at path is tagged as final and must not
// be augmented.
func IsFinal(path string) bool {
	return strings.HasSuffix(BaseName(path), FinalSuffix)
}

// IsGenerated reports whether path names a variant written by a previous run.
func IsGenerated(path string) bool {
	return generatedPattern.MatchString(BaseName(path))
}
