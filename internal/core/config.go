package core

// RuntimeConfig contains the settings a session needs from the platform.
type RuntimeConfig struct {
	ScreenW int  // Screen width in characters
	ScreenH int  // Screen height in characters
	Color   bool // Whether the front end renders colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Color:   true,
	}
}
