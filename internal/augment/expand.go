package augment

import (
	"fmt"
	"image"
	"math"
)

// rangeResolution is the number of sampling steps per unit in a Range.
const rangeResolution = 10

// Range is the half-open interval [Min, Max), sampled uniformly on a grid of
// 1/rangeResolution.
type Range struct {
	Min float64
	Max float64
}

// Draw returns a uniform sample from r.
func (r Range) Draw(rng Rand) float64 {
	lo := int(math.Round(r.Min * rangeResolution))
	hi := int(math.Round(r.Max * rangeResolution))
	if hi <= lo {
		return r.Min
	}
	return float64(lo+rng.IntN(hi-lo)) / rangeResolution
}

// Config fixes how many variants of each kind are generated and the ranges
// their parameters are drawn from.
type Config struct {
	JitterCount     int
	ColorRange      Range
	BrightnessRange Range
	ContrastRange   Range
	SharpnessRange  Range

	NoiseCount  int
	NoiseMean   float64
	NoiseStdDev float64

	ShadeCount int
	ShadeRange Range
}

// DefaultConfig returns the standard battery: 10 jitter, 2 noise and 2 shade
// calls (8 images), 20 variants in total.
func DefaultConfig() Config {
	return Config{
		JitterCount:     10,
		ColorRange:      Range{0.5, 1.5},
		BrightnessRange: Range{0.5, 1.5},
		ContrastRange:   Range{0.5, 1.5},
		SharpnessRange:  Range{0.0, 3.1},

		NoiseCount:  2,
		NoiseMean:   0,
		NoiseStdDev: 5.0,

		ShadeCount: 2,
		ShadeRange: Range{0.8, 1.1},
	}
}

// BatchSize is the number of variants Expand produces per image.
func (c Config) BatchSize() int {
	return c.JitterCount + c.NoiseCount + len(Directions)*c.ShadeCount
}

// Kind identifies which generator produced a variant.
type Kind string

const (
	KindJitter Kind = "jitter"
	KindNoise  Kind = "noise"
	KindShade  Kind = "shade"
)

// Params records how a variant was produced. Only the fields relevant to
// Kind are set.
type Params struct {
	Kind Kind

	Jitter JitterFactors

	NoiseMean   float64
	NoiseStdDev float64

	ShadeBrightness float64
	Direction       Direction
}

// Variant is one generated image and its parameters.
type Variant struct {
	Image image.Image
	Params
}

// Expander turns one image into a batch of variants. It is not safe for
// concurrent use; give each goroutine its own Expander and Rand.
type Expander struct {
	cfg Config
	rng Rand
}

// NewExpander returns an Expander drawing parameters from rng.
func NewExpander(cfg Config, rng Rand) *Expander {
	return &Expander{cfg: cfg, rng: rng}
}

// Config returns the configuration e was built with.
func (e *Expander) Config() Config {
	return e.cfg
}

// Expand generates all jitter variants, then all noise variants, then all
// shade variants. The first failing generator aborts the expansion.
func (e *Expander) Expand(img image.Image) ([]Variant, error) {
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image has size %dx%d", ErrComputation, b.Dx(), b.Dy())
	}

	variants := make([]Variant, 0, e.cfg.BatchSize())

	for range e.cfg.JitterCount {
		f := JitterFactors{
			Color:      e.cfg.ColorRange.Draw(e.rng),
			Brightness: e.cfg.BrightnessRange.Draw(e.rng),
			Contrast:   e.cfg.ContrastRange.Draw(e.rng),
			Sharpness:  e.cfg.SharpnessRange.Draw(e.rng),
		}
		out, err := ColorJitter(img, f)
		if err != nil {
			return nil, err
		}
		variants = append(variants, Variant{Image: out, Params: Params{Kind: KindJitter, Jitter: f}})
	}

	for range e.cfg.NoiseCount {
		out, err := AddGaussianNoise(img, e.cfg.NoiseMean, e.cfg.NoiseStdDev, e.rng)
		if err != nil {
			return nil, err
		}
		variants = append(variants, Variant{Image: out, Params: Params{
			Kind:        KindNoise,
			NoiseMean:   e.cfg.NoiseMean,
			NoiseStdDev: e.cfg.NoiseStdDev,
		}})
	}

	for range e.cfg.ShadeCount {
		brightness := e.cfg.ShadeRange.Draw(e.rng)
		shaded, err := GradualShade(img, brightness)
		if err != nil {
			return nil, err
		}
		for i, out := range shaded {
			variants = append(variants, Variant{Image: out, Params: Params{
				Kind:            KindShade,
				ShadeBrightness: brightness,
				Direction:       Directions[i],
			}})
		}
	}

	return variants, nil
}
