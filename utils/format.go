package utils

import (
	"fmt"
	"math"
	"time"
)

// MessageType identifies how a console message is decorated.
type MessageType int

// The message types used across the command line tool.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Terminal escape sequences for the message types.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// NoColor disables the escape sequences, e.g. when the output is redirected to a file.
var NoColor bool

// DecorateText wraps s in the color assigned to msgType.
func DecorateText(s string, msgType MessageType) string {
	if NoColor {
		return s
	}
	var c string
	switch msgType {
	case DefaultMessage:
		c = DefaultColor
	case StatusMessage:
		c = StatusColor
	case SuccessMessage:
		c = SuccessColor
	case ErrorMessage:
		c = ErrorColor
	default:
		return s
	}
	return c + s + DefaultColor
}

// FormatTime formats a duration to a human readable value.
// Sub-second durations are reported in milliseconds.
func FormatTime(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), math.Mod(d.Seconds(), 60))
	}
	return fmt.Sprintf("%dh %dm %.2fs",
		int64(d.Hours()), int64(math.Mod(d.Minutes(), 60)), math.Mod(d.Seconds(), 60))
}
