// Package terminal implements the interactive prompts and report rendering
// for resumake. All human-facing output goes through this package so the
// rest of the program can log to stderr without mixing streams.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const ruleWidth = 60

// UI reads answers from one stream and writes prompts and reports to
// another. Tests drive it with in-memory buffers.
type UI struct {
	in  *bufio.Reader
	out io.Writer
}

// New builds a UI over the given streams.
func New(in io.Reader, out io.Writer) *UI {
	return &UI{in: bufio.NewReader(in), out: out}
}

// Printf writes formatted output.
func (u *UI) Printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// Println writes a line.
func (u *UI) Println(args ...any) {
	fmt.Fprintln(u.out, args...)
}

// Rule writes a horizontal separator line.
func (u *UI) Rule() {
	fmt.Fprintln(u.out, strings.Repeat("━", ruleWidth))
}

// Ask prompts for a string answer, returning def when the user just presses
// enter.
func (u *UI) Ask(question, def string) string {
	if def != "" {
		fmt.Fprintf(u.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(u.out, "%s: ", question)
	}

	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// AskInt prompts for an integer, re-asking on unparseable input.
func (u *UI) AskInt(question string, def int) int {
	for {
		answer := u.Ask(question, strconv.Itoa(def))
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n
		}
		fmt.Fprintln(u.out, "Please enter a number.")
	}
}

// Confirm prompts for a yes/no answer.
func (u *UI) Confirm(question string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	answer := strings.ToLower(u.Ask(fmt.Sprintf("%s (%s)", question, hint), ""))
	switch answer {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// Welcome prints the introduction banner.
func (u *UI) Welcome() {
	u.Rule()
	u.Println("resumake - resume builder")
	u.Rule()
	u.Println()
	u.Println("Here's what we'll do together:")
	u.Println("  1. Collect your basic information")
	u.Println("  2. Analyze your current resume (if you have one)")
	u.Println("  3. Identify areas for improvement")
	u.Println("  4. Generate an enhanced resume")
	u.Println()
}

// SectionReport prints one section's advisory findings and quality score.
func (u *UI) SectionReport(name string, score float64, suggestions []string) {
	u.Printf("%-16s %s %.0f%%\n", name, scoreBar(score), score*100)
	for _, s := range suggestions {
		u.Printf("  - %s\n", s)
	}
}

// Issues prints validator findings, or a confirmation when there are none.
func (u *UI) Issues(issues []string) {
	if len(issues) == 0 {
		u.Println("No structural issues found.")
		return
	}
	u.Println("Issues:")
	for _, issue := range issues {
		u.Printf("  - %s\n", issue)
	}
}

// ConfirmChange shows original and improved content for a section and asks
// whether to keep the improvement.
func (u *UI) ConfirmChange(section, original, improved string) bool {
	u.Println()
	u.Rule()
	u.Printf("Proposed change for %s\n", section)
	u.Rule()
	u.Println("--- current")
	u.Println(indent(original))
	u.Println("+++ improved")
	u.Println(indent(improved))
	return u.Confirm("Apply this change?", true)
}

// scoreBar renders a ten-slot quality gauge.
func scoreBar(score float64) string {
	filled := int(score*10 + 0.5)
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 10-filled) + "]"
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
