// Package report generates summary reports of an augmentation run.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bagtoad/imgaug/internal/batch"
)

// Counts tallies results by status.
type Counts struct {
	Images    int
	Augmented int
	Final     int
	Failed    int
	Variants  int
}

// Tally counts the results of a run.
func Tally(results []batch.Result) Counts {
	c := Counts{Images: len(results)}
	for _, r := range results {
		switch r.Status {
		case batch.StatusAugmented:
			c.Augmented++
		case batch.StatusFinal:
			c.Final++
		case batch.StatusFailed:
			c.Failed++
		}
		c.Variants += len(r.Variants)
	}
	return c
}

// Print writes a summary report to the given writer.
func Print(w io.Writer, results []batch.Result, skippedNonImage, skippedGenerated int, dryRun bool) {
	c := Tally(results)

	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintln(w, "=== Dry Run Summary ===")
	} else {
		fmt.Fprintln(w, "=== Summary ===")
	}
	fmt.Fprintf(w, "Images found:        %d\n", c.Images)
	fmt.Fprintf(w, "Images augmented:    %d\n", c.Augmented)
	fmt.Fprintf(w, "Images final (_0):   %d\n", c.Final)
	fmt.Fprintf(w, "Images failed:       %d\n", c.Failed)
	if skippedGenerated > 0 {
		fmt.Fprintf(w, "Previous variants:   %d\n", skippedGenerated)
	}
	if skippedNonImage > 0 {
		fmt.Fprintf(w, "Non-image files:     %d\n", skippedNonImage)
	}

	verb := "Wrote"
	if dryRun {
		verb = "Would write"
	}
	fmt.Fprintf(w, "%s %d variants\n", verb, c.Variants)

	if c.Failed == 0 {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, "\nFailures:")
	for _, r := range results {
		if r.Status == batch.StatusFailed {
			fmt.Fprintf(w, "  %s: %v\n", filepath.Base(r.Path), r.Err)
		}
	}
	fmt.Fprintln(w)
}
