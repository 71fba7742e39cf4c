// Package manifest records which variants were generated from which source
// image, and with what parameters, as a YAML file next to the output.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bagtoad/imgaug/internal/augment"
	"github.com/bagtoad/imgaug/internal/batch"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest's name inside the output directory.
const FileName = "manifest.yaml"

// Manifest is the top-level document.
type Manifest struct {
	Seed   uint64  `yaml:"seed"`
	Images []Image `yaml:"images"`
}

// Image describes one source image.
type Image struct {
	Source   string    `yaml:"source"`
	Original string    `yaml:"original,omitempty"`
	Status   string    `yaml:"status"`
	Error    string    `yaml:"error,omitempty"`
	Variants []Variant `yaml:"variants,omitempty"`
}

// Variant describes one generated file.
type Variant struct {
	File   string                 `yaml:"file"`
	Kind   string                 `yaml:"kind"`
	Jitter *augment.JitterFactors `yaml:"jitter,omitempty"`
	Noise  *Noise                 `yaml:"noise,omitempty"`
	Shade  *Shade                 `yaml:"shade,omitempty"`
}

// Noise holds Gaussian noise parameters.
type Noise struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
}

// Shade holds gradient shading parameters.
type Shade struct {
	Brightness float64 `yaml:"brightness"`
	Direction  string  `yaml:"direction"`
}

// Build converts batch results into a manifest. File names are stored
// relative to the output directory.
func Build(seed uint64, results []batch.Result) *Manifest {
	m := &Manifest{Seed: seed, Images: make([]Image, 0, len(results))}
	for _, r := range results {
		img := Image{
			Source: r.Path,
			Status: string(r.Status),
		}
		if r.Original != "" {
			img.Original = filepath.Base(r.Original)
		}
		if r.Err != nil {
			img.Error = r.Err.Error()
		}
		for _, w := range r.Variants {
			img.Variants = append(img.Variants, variantEntry(filepath.Base(w.DestPath), w.Params))
		}
		m.Images = append(m.Images, img)
	}
	return m
}

func variantEntry(file string, p augment.Params) Variant {
	v := Variant{File: file, Kind: string(p.Kind)}
	switch p.Kind {
	case augment.KindJitter:
		f := p.Jitter
		v.Jitter = &f
	case augment.KindNoise:
		v.Noise = &Noise{Mean: p.NoiseMean, StdDev: p.NoiseStdDev}
	case augment.KindShade:
		v.Shade = &Shade{Brightness: p.ShadeBrightness, Direction: p.Direction.String()}
	}
	return v
}

// Save writes m as YAML to path.
func Save(m *Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Load reads a manifest previously written by Save.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
