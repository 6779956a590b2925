package config

// DefaultPhases returns the built-in signal phase plan for the five-approach
// roundabout. It is used when the JSON config file supplies no phase
// override. Scalar defaults live on the envDefault tags in config.go.
func DefaultPhases() []Phase {
	return []Phase{
		{
			ID:                "north_through",
			Name:              "North Through",
			AllowedApproaches: []string{"north"},
			MinGreen:          10,
			MaxGreen:          45,
		},
		{
			ID:                "south_through",
			Name:              "South Through",
			AllowedApproaches: []string{"south"},
			MinGreen:          10,
			MaxGreen:          45,
		},
		{
			ID:                "east_west_through",
			Name:              "East-West Through",
			AllowedApproaches: []string{"east", "west"},
			MinGreen:          15,
			MaxGreen:          60,
		},
		{
			ID:                "northeast_through",
			Name:              "Northeast Through",
			AllowedApproaches: []string{"northeast"},
			MinGreen:          8,
			MaxGreen:          30,
		},
	}
}
