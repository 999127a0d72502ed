package terrain

import (
	"math"
	"testing"
)

// fixedNoise returns a constant sample and records the last query.
type fixedNoise struct {
	value      float64
	lastX      float64
	lastY      float64
	queryCount int
}

func (f *fixedNoise) Noise2D(x, y float64) float64 {
	f.lastX, f.lastY = x, y
	f.queryCount++
	return f.value
}

// gradientNoise returns x in noise space, so a cell's column picks its band.
type gradientNoise struct{}

func (gradientNoise) Noise2D(x, _ float64) float64 { return x }

func TestBiomeForNoise(t *testing.T) {
	tests := []struct {
		n        float64
		expected Biome
	}{
		{-1.0, Desert},
		{-0.6, Desert},
		{-0.5000001, Desert},
		{-0.5, Badlands},
		{-0.2, Badlands},
		{-0.0000001, Badlands},
		{0.0, Grass},
		{0.3, Grass},
		{1.0, Grass},
	}

	for _, tc := range tests {
		if got := BiomeForNoise(tc.n); got != tc.expected {
			t.Errorf("BiomeForNoise(%v) = %v, expected %v", tc.n, got, tc.expected)
		}
	}
}

func TestClassifyUsesFrequency(t *testing.T) {
	noise := &fixedNoise{value: -0.6}
	c := NewClassifier(noise, 0.001)

	if got := c.Classify(2000, 500); got != Desert {
		t.Errorf("Classify() = %v, expected desert", got)
	}
	if math.Abs(noise.lastX-2) > 1e-9 || math.Abs(noise.lastY-0.5) > 1e-9 {
		t.Errorf("noise sampled at (%v, %v), expected (2, 0.5)", noise.lastX, noise.lastY)
	}
	if noise.queryCount != 1 {
		t.Errorf("Classify() sampled noise %d times, expected once", noise.queryCount)
	}
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		name     string
		n        float64
		expected Biome
	}{
		{"desert", -0.6, Desert},
		{"badlands", -0.2, Badlands},
		{"grass", 0.3, Grass},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClassifier(&fixedNoise{value: tc.n}, DefaultFrequency)
			if got := c.Classify(123, 456); got != tc.expected {
				t.Errorf("Classify() with n=%v = %v, expected %v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestClassifyDefaultFrequency(t *testing.T) {
	c := NewClassifier(&fixedNoise{}, 0)
	if c.Frequency() != DefaultFrequency {
		t.Errorf("Frequency() = %v, expected %v", c.Frequency(), DefaultFrequency)
	}
}

func TestPerlinDeterminism(t *testing.T) {
	a := NewClassifier(NewPerlin(12345), DefaultFrequency)
	b := NewClassifier(NewPerlin(12345), DefaultFrequency)

	for y := 0.0; y < 9000; y += 640 {
		for x := 0.0; x < 18000; x += 640 {
			first := a.Classify(x, y)
			if again := a.Classify(x, y); again != first {
				t.Fatalf("Classify(%v, %v) changed between calls: %v then %v", x, y, first, again)
			}
			if other := b.Classify(x, y); other != first {
				t.Fatalf("same seed disagrees at (%v, %v): %v vs %v", x, y, first, other)
			}
		}
	}
}

func TestBiomeString(t *testing.T) {
	for _, b := range Biomes() {
		if b.String() == "unknown" {
			t.Errorf("biome %d has no label", b)
		}
	}
	if Biome(42).String() != "unknown" {
		t.Error("out-of-range biome should be unknown")
	}
}
