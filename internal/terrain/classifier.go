package terrain

import (
	"github.com/aquilax/go-perlin"
)

// Perlin generator parameters: smoothness, frequency ratio between
// octaves, and octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// DefaultFrequency scales world units into noise space.
const DefaultFrequency = 0.001

// Noise is a 2D coherent noise source returning values in roughly [-1, 1].
type Noise interface {
	Noise2D(x, y float64) float64
}

// NewPerlin returns a seeded Perlin noise source.
func NewPerlin(seed int64) Noise {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
}

// Classifier assigns biomes to world positions.
type Classifier struct {
	noise     Noise
	frequency float64
}

// NewClassifier creates a classifier sampling noise at the given frequency.
// A non-positive frequency falls back to DefaultFrequency.
func NewClassifier(noise Noise, frequency float64) *Classifier {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	return &Classifier{noise: noise, frequency: frequency}
}

// Frequency returns the noise frequency scale.
func (c *Classifier) Frequency() float64 {
	return c.frequency
}

// Classify returns the biome at world position (x, y).
func (c *Classifier) Classify(x, y float64) Biome {
	return BiomeForNoise(c.noise.Noise2D(x*c.frequency, y*c.frequency))
}
