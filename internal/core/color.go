package core

// Color is a palette entry shared by every platform.
// Terminal platforms map it to ANSI 256-color codes, window platforms to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorHotPink        // Highlighted menu option and title
	ColorLightSlateGray // Idle menu option
	ColorOrange
	ColorBlue
)
