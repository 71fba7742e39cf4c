package augment

import (
	"fmt"
	"image"
	"math"

	"github.com/bagtoad/imgaug/internal/pixbuf"
)

// Direction is the axis and sign of a brightness gradient.
type Direction int

const (
	TopToBottom Direction = iota
	BottomToTop
	LeftToRight
	RightToLeft
)

// Directions lists every gradient direction in the order GradualShade
// returns them.
var Directions = [4]Direction{TopToBottom, BottomToTop, LeftToRight, RightToLeft}

func (d Direction) String() string {
	switch d {
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// GradualShade returns four copies of img, each lit by a linear brightness
// ramp along one direction. For an axis of length n the ramp at index i is
// alpha(i) = (n - 2i)/n * maxBrightness; the "forward" directions multiply
// by 1+alpha, the reverse ones by 1-alpha. Results are indexed like
// Directions.
func GradualShade(img image.Image, maxBrightness float64) ([4]image.Image, error) {
	var out [4]image.Image
	if math.IsNaN(maxBrightness) || math.IsInf(maxBrightness, 0) {
		return out, fmt.Errorf("%w: gradual shade: brightness %v", ErrComputation, maxBrightness)
	}
	src, err := pixbuf.FromImage(img)
	if err != nil {
		return out, computationErr("gradual shade", err)
	}

	rowUp, rowDown := ramps(src.Height, maxBrightness)
	colUp, colDown := ramps(src.Width, maxBrightness)

	for i, d := range Directions {
		a := src.Clone()
		switch d {
		case TopToBottom:
			a.MulRows(rowUp)
		case BottomToTop:
			a.MulRows(rowDown)
		case LeftToRight:
			a.MulCols(colUp)
		case RightToLeft:
			a.MulCols(colDown)
		}
		out[i] = a.ToImage()
	}
	return out, nil
}

// ramps returns the per-index multipliers 1+alpha and 1-alpha for an axis
// of length n.
func ramps(n int, maxBrightness float64) (up, down []float64) {
	up = make([]float64, n)
	down = make([]float64, n)
	for i := range n {
		alpha := float64(n-2*i) / float64(n) * maxBrightness
		up[i] = 1 + alpha
		down[i] = 1 - alpha
	}
	return up, down
}
