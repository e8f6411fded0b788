package planner

// LoadBand groups load levels for display.
type LoadBand string

const (
	LoadLight    LoadBand = "light"
	LoadModerate LoadBand = "moderate"
	LoadHigh     LoadBand = "high"
	LoadPeak     LoadBand = "peak"
)

// MaxLoadLevel is the top of the load scale.
const MaxLoadLevel = 5

// BandFor classifies a load level.
func BandFor(level int) LoadBand {
	switch {
	case level >= 5:
		return LoadPeak
	case level >= 4:
		return LoadHigh
	case level >= 3:
		return LoadModerate
	default:
		return LoadLight
	}
}
