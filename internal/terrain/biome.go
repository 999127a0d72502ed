// Package terrain classifies world positions into biomes using coherent
// noise. Classification is pure: the same seed and position always yield the
// same biome.
package terrain

// Biome is the terrain label assigned to a grid cell.
type Biome uint8

const (
	Grass Biome = iota
	Badlands
	Desert
)

// Noise thresholds partitioning [-1, 1] into biome bands.
const (
	DesertBelow   = -0.5 // n < -0.5 is desert
	BadlandsBelow = 0.0  // -0.5 <= n < 0 is badlands, n >= 0 is grass
)

// String returns the biome label.
func (b Biome) String() string {
	switch b {
	case Grass:
		return "grass"
	case Badlands:
		return "badlands"
	case Desert:
		return "desert"
	default:
		return "unknown"
	}
}

// Biomes lists every biome in declaration order.
func Biomes() []Biome {
	return []Biome{Grass, Badlands, Desert}
}

// BiomeForNoise maps a noise sample to its biome band.
func BiomeForNoise(n float64) Biome {
	switch {
	case n < DesertBelow:
		return Desert
	case n < BadlandsBelow:
		return Badlands
	default:
		return Grass
	}
}
