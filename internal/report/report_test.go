package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bagtoad/imgaug/internal/batch"
	"github.com/bagtoad/imgaug/internal/output"
)

func sampleResults() []batch.Result {
	return []batch.Result{
		{Path: "/imgs/beach.jpg", Status: batch.StatusAugmented, Variants: make([]output.WriteResult, 20)},
		{Path: "/imgs/cat.png", Status: batch.StatusAugmented, Variants: make([]output.WriteResult, 20)},
		{Path: "/imgs/label_0.jpg", Status: batch.StatusFinal},
		{Path: "/imgs/blur.jpg", Status: batch.StatusFailed, Err: errors.New("cannot decode image")},
	}
}

func TestTally(t *testing.T) {
	c := Tally(sampleResults())
	want := Counts{Images: 4, Augmented: 2, Final: 1, Failed: 1, Variants: 40}
	if c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, sampleResults(), 5, 3, false)

	output := buf.String()

	// Check key parts of the report
	checks := []string{
		"=== Summary ===",
		"Images found:        4",
		"Images augmented:    2",
		"Images final (_0):   1",
		"Images failed:       1",
		"Previous variants:   3",
		"Non-image files:     5",
		"Wrote 40 variants",
		"blur.jpg: cannot decode image",
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("report missing %q\nFull output:\n%s", check, output)
		}
	}
}

func TestPrintReportDryRun(t *testing.T) {
	results := []batch.Result{
		{Path: "/imgs/beach.jpg", Status: batch.StatusAugmented, Variants: make([]output.WriteResult, 20)},
	}

	var buf bytes.Buffer
	Print(&buf, results, 0, 0, true)

	output := buf.String()

	if !strings.Contains(output, "Dry Run Summary") {
		t.Errorf("expected dry run header in output:\n%s", output)
	}
	if !strings.Contains(output, "Would write 20 variants") {
		t.Errorf("expected 'Would write' in dry run output:\n%s", output)
	}
	if strings.Contains(output, "Failures") {
		t.Errorf("unexpected failures section:\n%s", output)
	}
}

func TestPrintReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil, 0, 0, false)

	output := buf.String()
	if !strings.Contains(output, "Wrote 0 variants") {
		t.Errorf("expected empty message in output:\n%s", output)
	}
}
