package utils

import "regexp"

// DefaultThemeColor is applied when a team submits no or an invalid color
const DefaultThemeColor = "#0ea5e9"

var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// SanitizeColor validates a hex theme color, falling back to the default
func SanitizeColor(color string) string {
	if hexColorPattern.MatchString(color) {
		return color
	}
	return DefaultThemeColor
}
