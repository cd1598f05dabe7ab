package model

import "fmt"

// FormatDuration renders whole seconds as m:ss. Minutes are not padded and
// not folded into hours: 75 -> "1:15", 3725 -> "62:05".
func FormatDuration(totalSeconds int) string {
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
