package augment

import (
	"fmt"
	"image"
	"math"

	"github.com/bagtoad/imgaug/internal/enhance"
)

// JitterFactors holds one factor per enhancement stage. 1.0 leaves the
// attribute unchanged.
type JitterFactors struct {
	Color      float64 `yaml:"color"`
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Sharpness  float64 `yaml:"sharpness"`
}

// ColorJitter applies color, brightness, contrast and sharpness adjustments
// in that order, each stage consuming the previous stage's output.
func ColorJitter(img image.Image, f JitterFactors) (image.Image, error) {
	stages := []struct {
		name   string
		op     func(image.Image, float64) (*image.NRGBA, error)
		factor float64
	}{
		{"color", enhance.Color, f.Color},
		{"brightness", enhance.Brightness, f.Brightness},
		{"contrast", enhance.Contrast, f.Contrast},
		{"sharpness", enhance.Sharpness, f.Sharpness},
	}

	cur := img
	for _, s := range stages {
		if s.factor < 0 || math.IsNaN(s.factor) {
			return nil, fmt.Errorf("%w: color jitter: invalid %s factor %v", ErrComputation, s.name, s.factor)
		}
		next, err := s.op(cur, s.factor)
		if err != nil {
			return nil, computationErr("color jitter "+s.name, err)
		}
		cur = next
	}
	return cur, nil
}
