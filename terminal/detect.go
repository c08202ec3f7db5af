package terminal

import (
	"os"
	"strings"
)

// trueColorEnv lists variables set only by emulators known to render 24-bit color
var trueColorEnv = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
	"WT_SESSION",
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}

	for _, name := range trueColorEnv {
		if os.Getenv(name) != "" {
			return ColorModeTrueColor
		}
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "vscode", "WezTerm":
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	for _, hint := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(term, hint) {
			return ColorModeTrueColor
		}
	}

	return ColorMode256
}
