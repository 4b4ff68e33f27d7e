package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how run summaries are rendered.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, redirected output and NO_COLOR.
	ModePlain Mode = iota
	// ModeStyled is used when a human is watching the terminal.
	ModeStyled
)

// DetectMode determines whether output written to out should be styled.
//
// Returns ModePlain if:
//   - SURVEYSHA_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - out is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(out *os.File) Mode {
	if os.Getenv("SURVEYSHA_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return ModePlain
	}

	return ModeStyled
}
