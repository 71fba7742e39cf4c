// Package pixbuf converts between decoded images and a mutable floating-point
// RGB working buffer used by the augmentation operators.
package pixbuf

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

// Channels is the number of color channels held per pixel (R, G, B).
const Channels = 3

// ErrInvalidDimensions is returned for images or buffers with no pixels.
var ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

// Array is a W×H×3 grid of channel values. Values may leave [0, 255] while
// an operator works on them; ToImage brings them back into range.
type Array struct {
	Width  int
	Height int
	// Pix holds channel values in row-major order: (y*Width+x)*3+c.
	Pix []float64
}

// New allocates a zeroed array of the given size.
func New(width, height int) (*Array, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Array{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*Channels),
	}, nil
}

// FromImage copies the RGB channels of img into a new Array. Alpha is dropped.
func FromImage(img image.Image) (*Array, error) {
	b := img.Bounds()
	a, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, a.Width, a.Height))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	for y := 0; y < a.Height; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := a.Pix[y*a.Width*Channels:]
		for x := 0; x < a.Width; x++ {
			dst[x*Channels+0] = float64(src[x*4+0])
			dst[x*Channels+1] = float64(src[x*4+1])
			dst[x*Channels+2] = float64(src[x*4+2])
		}
	}
	return a, nil
}

// ToImage clamps every value to [0, 255], truncates it toward zero and
// returns an opaque image of the same size.
func (a *Array) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.Width, a.Height))
	for y := 0; y < a.Height; y++ {
		src := a.Pix[y*a.Width*Channels:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < a.Width; x++ {
			dst[x*4+0] = Clamp8(src[x*Channels+0])
			dst[x*4+1] = Clamp8(src[x*Channels+1])
			dst[x*4+2] = Clamp8(src[x*Channels+2])
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	pix := make([]float64, len(a.Pix))
	copy(pix, a.Pix)
	return &Array{Width: a.Width, Height: a.Height, Pix: pix}
}

// At returns the value of channel c at (x, y).
func (a *Array) At(x, y, c int) float64 {
	return a.Pix[(y*a.Width+x)*Channels+c]
}

// MulRows multiplies every channel of row y by scale[y].
func (a *Array) MulRows(scale []float64) {
	stride := a.Width * Channels
	for y, s := range scale[:a.Height] {
		row := a.Pix[y*stride : (y+1)*stride]
		for i := range row {
			row[i] *= s
		}
	}
}

// MulCols multiplies every channel of column x by scale[x].
func (a *Array) MulCols(scale []float64) {
	scale = scale[:a.Width]
	stride := a.Width * Channels
	for y := 0; y < a.Height; y++ {
		row := a.Pix[y*stride : (y+1)*stride]
		for x, s := range scale {
			row[x*Channels+0] *= s
			row[x*Channels+1] *= s
			row[x*Channels+2] *= s
		}
	}
}

// Clamp8 clamps v to [0, 255] and truncates it toward zero. NaN maps to 0.
func Clamp8(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
