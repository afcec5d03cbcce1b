package cli

import (
	"fmt"
	"os"
)

const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
)

var colorEnabled = checkColor()

// NO_COLOR (https://no-color.org/) wins over LOG_COLOR.
func checkColor() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	if val := os.Getenv("LOG_COLOR"); val != "" {
		return val == "true" || val == "1"
	}
	return true
}

// Enabled reports whether ANSI colors are emitted.
func Enabled() bool {
	return colorEnabled
}

// SetEnabled overrides color detection, mainly for tests and --no-color.
func SetEnabled(on bool) {
	colorEnabled = on
}

// Style wraps text in a specific color code
func Style(text string, colorCode string) string {
	if !colorEnabled {
		return text
	}
	return fmt.Sprintf("%s%s%s", colorCode, text, Reset)
}

func CheckMark() string {
	return Style("✔", Green)
}

func CrossMark() string {
	return Style("✘", Red)
}

// Current marks the active provider in listings.
func Current() string {
	return Style("*", Cyan)
}
