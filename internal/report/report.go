package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"terminalist/internal/alternatives"
	"terminalist/internal/logger"
)

// ErrNoAlternative is returned by Render when the tool has no registered alternative.
var ErrNoAlternative = errors.New("no known alternative")

// ManagementName is the name of the management executable as shown to users.
const ManagementName = "terminalist"

const homepage = "https://www.terminalist.tips/"

// Renderer writes translation reports.
type Renderer struct {
	w       io.Writer
	palette Palette

	// SkipOperands skips the arguments consumed by a matched flag during the scan.
	SkipOperands bool
}

// New returns a renderer writing to w.
func New(w io.Writer, palette Palette) *Renderer {
	return &Renderer{w: w, palette: palette, SkipOperands: true}
}

// Render looks up tool in reg and writes the full report for args: header,
// one block per recognized flag, then the footer.
func (r *Renderer) Render(reg *alternatives.Registry, tool string, args []string, selfPath string) error {
	spec, ok := reg.Lookup(tool)
	if !ok {
		return fmt.Errorf("%s: %w", tool, ErrNoAlternative)
	}

	matches := Translate(spec, args, r.SkipOperands)
	logger.Debug("[DEBUG] %s: %d of %d arguments recognized\n", tool, len(matches), len(args))

	r.Header(spec)
	r.Matches(matches)
	r.Footer(tool, selfPath)
	return nil
}

// Header names the original and alternate tools.
func (r *Renderer) Header(spec alternatives.AlternativeSpec) {
	r.println("Terminalist Habit Maker")
	r.println("Instead of:")
	r.println(r.palette.Flag.Sprint(spec.Original))
	r.println("use:")
	r.println(r.palette.Alternative.Sprint("\t" + spec.Alternate))
	if spec.FurtherReading != "" {
		r.println("Further reading: " + spec.FurtherReading)
	}
	r.println("")
	r.println("Suggested argument replacements (may not be exhaustive):")
}

// Matches writes one block per match: the original flag, then each replacement
// with its note.
func (r *Renderer) Matches(matches []Match) {
	for _, m := range matches {
		r.println(r.palette.Flag.Sprint(m.Flag))
		for _, rule := range m.Rules {
			r.println(r.palette.Alternative.Sprint("\t" + rule.New))
			if note := indent(strings.TrimSpace(rule.Note), "\t\t"); note != "" {
				r.println(r.palette.Alternative.Sprint(note))
			}
		}
	}
}

// Footer explains how to turn the interception off.
func (r *Renderer) Footer(tool, selfPath string) {
	r.println("")
	r.println(fmt.Sprintf("You're seeing this because `%s` is configured to show you this alternate", ManagementName))
	r.println(fmt.Sprintf("tool. To disable this, run `%s` by itself, located at", ManagementName))
	r.println(selfPath + ".")
	r.println(fmt.Sprintf("To stop intercepting %s, run: %s --remove %s", tool, selfPath, tool))
	r.println("Brought to you with 🏄 from " + homepage)
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

// indent prefixes every non-blank line of s.
func indent(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
