package core

// Color is a screen cell color in #rrggbb form. The empty string means the
// terminal default.
type Color string

// Predefined colors for HUD elements.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorGray    Color = "#808080"
	ColorDim     Color = "#4e4e4e"
	ColorYellow  Color = "#ffcc00"
	ColorRed     Color = "#ff0000"
)
