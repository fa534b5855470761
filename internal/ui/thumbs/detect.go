package thumbs

import (
	"os"
	"strings"
)

// Detect returns the Protocol to use, or nil when images are disabled.
//
// mode comes from the image_protocol setting. The PHOTOGRID_IMAGE_PROTOCOL
// environment variable takes precedence:
//   - "kitty": force Kitty protocol
//   - "sixel": force Sixel protocol
//   - "none": disable image display
//   - "auto" or "": detect from the terminal environment
func Detect(mode string) Protocol {
	if override := os.Getenv("PHOTOGRID_IMAGE_PROTOCOL"); override != "" {
		mode = override
	}

	switch mode {
	case "kitty":
		return KittyProtocol{}
	case "sixel":
		return NewSixelProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return KittyProtocol{}
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but doesn't support Kitty protocol, and
	// parent terminal variables can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if version := os.Getenv("KONSOLE_VERSION"); version != "" {
		if len(version) >= 4 && version[:4] >= "2204" {
			return true
		}
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	switch {
	case term == "foot" || term == "foot-extra":
		return true
	case termProgram == "vscode", termProgram == "mintty", termProgram == "iTerm.app":
		return true
	case termProgram == "contour" || os.Getenv("CONTOUR_PROFILE") != "":
		return true
	}
	return false
}
