package registry

// DefaultPreset is the preset the built-in configuration describes.
const DefaultPreset = "classic"

func init() {
	// A tall valley, one screen wide at low zoom.
	Register(Preset{
		ID:        "classic",
		Title:     "Classic Valley",
		Width:     4500,
		Height:    9020,
		CellSize:  64,
		Frequency: 0.001,
	})
	Register(Preset{
		ID:        "wide",
		Title:     "Wide Frontier",
		Width:     18040,
		Height:    9000,
		CellSize:  64,
		Frequency: 0.001,
	})
	Register(Preset{
		ID:        "small",
		Title:     "Small Plot",
		Width:     1280,
		Height:    1280,
		CellSize:  64,
		Frequency: 0.001,
	})
}
