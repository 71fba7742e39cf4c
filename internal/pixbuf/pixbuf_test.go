package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFromImageRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.RGBA{R: uint8(10 * x), G: uint8(20 * y), B: 200, A: 255})
		}
	}

	a, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if a.Width != 3 || a.Height != 2 {
		t.Fatalf("expected 3x2, got %dx%d", a.Width, a.Height)
	}
	if got := a.At(2, 1, 0); got != 20 {
		t.Errorf("expected R=20 at (2,1), got %v", got)
	}
	if got := a.At(2, 1, 1); got != 20 {
		t.Errorf("expected G=20 at (2,1), got %v", got)
	}

	out := a.ToImage()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := img.RGBAAt(x, y)
			got := out.NRGBAAt(x, y)
			if got.R != want.R || got.G != want.G || got.B != want.B || got.A != 255 {
				t.Errorf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	img.SetNRGBA(5, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	a, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if a.At(0, 0, 0) != 1 || a.At(0, 0, 1) != 2 || a.At(0, 0, 2) != 3 {
		t.Errorf("expected (1,2,3) at origin, got (%v,%v,%v)", a.At(0, 0, 0), a.At(0, 0, 1), a.At(0, 0, 2))
	}
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 10)))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestToImageClamps(t *testing.T) {
	a, err := New(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	copy(a.Pix, []float64{-12.5, 300, 254.9, 0.99, math.NaN(), 128})

	out := a.ToImage()
	got := []uint8{out.Pix[0], out.Pix[1], out.Pix[2], out.Pix[4], out.Pix[5], out.Pix[6]}
	want := []uint8{0, 255, 254, 0, 0, 128}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("channel %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a, _ := New(1, 1)
	b := a.Clone()
	b.Pix[0] = 42
	if a.Pix[0] != 0 {
		t.Error("modifying the clone changed the original")
	}
}

func TestMulRowsAndCols(t *testing.T) {
	a, _ := New(2, 2)
	for i := range a.Pix {
		a.Pix[i] = 10
	}

	rows := a.Clone()
	rows.MulRows([]float64{2, 0.5})
	if rows.At(1, 0, 2) != 20 || rows.At(0, 1, 0) != 5 {
		t.Errorf("MulRows: unexpected values %v", rows.Pix)
	}

	cols := a.Clone()
	cols.MulCols([]float64{3, -1})
	if cols.At(0, 1, 1) != 30 || cols.At(1, 0, 0) != -10 {
		t.Errorf("MulCols: unexpected values %v", cols.Pix)
	}
}
