package tui

// Color constants for the flightlog console theme
const (
	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (user input, bot replies)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Prompt marker, accent elements
	ColorAccentBright = "#A78BFA" // Menu labels, highlights

	// State Colors
	ColorError   = "#EF4444" // Failed document writes
	ColorSuccess = "#22C55E" // Saved documents, confirmations
)
