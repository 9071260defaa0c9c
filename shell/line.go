package shell

// Style is the semantic color of an output line, resolved by the renderer per theme
type Style uint8

const (
	StyleNormal Style = iota
	StylePrimary
	StyleSecondary
	StyleMuted
	StyleError
)

// Line is one row of command output
type Line struct {
	Text  string
	Style Style
}

// Entry is a submitted command and its output, Command is empty for the banner
type Entry struct {
	Command string
	Output  []Line
}

func text(s string) Line      { return Line{Text: s} }
func primary(s string) Line   { return Line{Text: s, Style: StylePrimary} }
func secondary(s string) Line { return Line{Text: s, Style: StyleSecondary} }
func muted(s string) Line     { return Line{Text: s, Style: StyleMuted} }
func failure(s string) Line   { return Line{Text: s, Style: StyleError} }
