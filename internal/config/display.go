package config

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// UseColour paints squares and pieces with ANSI colours
	UseColour bool

	// Flip draws the board from Black's side
	Flip bool

	// ShowTargets marks the destinations listed by the moves command on
	// the board as well as printing them
	ShowTargets bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		UseColour:   true,
		ShowTargets: true,
	}
}
