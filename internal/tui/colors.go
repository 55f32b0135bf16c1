package tui

// Color constants for the studyplay TUI theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Titles, values, user input
	ColorSecondaryText = "#B1B8C7" // Labels
	ColorDisabledText  = "#6D7383" // Zero values, hints
	ColorHelpText      = "240"     // Help bar

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Title box, progress start
	ColorAccentBright = "#A78BFA" // Clock, header, progress end

	// Mode Colors
	ColorStudy   = "#60A5FA" // Study count-up
	ColorLeisure = "#34D399" // Leisure countdown

	// State Colors
	ColorError   = "#EF4444" // Negative balance, validation errors
	ColorSuccess = "#22C55E" // Positive balance, confirmations
	ColorWarning = "#F59E0B" // Debt, alarm
)
