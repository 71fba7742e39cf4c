package augment

import (
	"fmt"
	"image"
	"math"

	"github.com/bagtoad/imgaug/internal/pixbuf"
)

// AddGaussianNoise adds an independent N(mean, stdDev) sample to every
// channel of every pixel and returns the clamped result.
func AddGaussianNoise(img image.Image, mean, stdDev float64, rng Rand) (image.Image, error) {
	if stdDev < 0 || math.IsNaN(stdDev) || math.IsNaN(mean) {
		return nil, fmt.Errorf("%w: gaussian noise: mean %v, stddev %v", ErrComputation, mean, stdDev)
	}
	a, err := pixbuf.FromImage(img)
	if err != nil {
		return nil, computationErr("gaussian noise", err)
	}
	for i := range a.Pix {
		a.Pix[i] += mean + stdDev*rng.NormFloat64()
	}
	return a.ToImage(), nil
}
