package report

import "github.com/fatih/color"

// NoColorEnv is the opt-out variable from https://no-color.org/. Its presence, with any
// value, disables colors.
const NoColorEnv = "NO_COLOR"

// ColorDisabled reports whether NO_COLOR is present in the environment.
func ColorDisabled(lookupEnv func(string) (string, bool)) bool {
	_, ok := lookupEnv(NoColorEnv)
	return ok
}

// Palette holds the colors used to decorate a report.
// - Flag: original tool and original flags (bright blue).
// - Alternative: alternate tool, replacement flags and notes (bright cyan).
type Palette struct {
	Flag        *color.Color
	Alternative *color.Color
}

// NewPalette returns the report colors. Unless noColor is set, colors are forced on
// even when stdout is not a terminal.
func NewPalette(noColor bool) Palette {
	p := Palette{
		Flag:        color.New(color.FgHiBlue),
		Alternative: color.New(color.FgHiCyan),
	}
	for _, c := range []*color.Color{p.Flag, p.Alternative} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}
