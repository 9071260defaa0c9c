// Package shell is the fake terminal: a line editor, command history and a small
// fixed command set. It produces styled lines and actions, drawing is left to render.
package shell

import (
	"strings"

	"github.com/lixenwraith/portfolio-term/constants"
)

// Shell holds the transcript, the edit line and recall history
type Shell struct {
	entries    []Entry
	maxEntries int

	input  []rune
	cursor int

	history []string // most recent first
	histIdx int      // -1 when editing a fresh line

	theme Theme
}

// New creates a shell showing the welcome banner
func New(theme Theme, maxEntries int) *Shell {
	if maxEntries <= 0 {
		maxEntries = constants.ShellMaxHistory
	}
	sh := &Shell{
		maxEntries: maxEntries,
		histIdx:    -1,
		theme:      theme,
	}
	sh.entries = append(sh.entries, Entry{Output: welcomeText})
	return sh
}

// Prompt returns the user@host prompt prefix
func Prompt() string {
	return constants.ShellUser + "@" + constants.ShellHost + ":~$ "
}

// Process runs one command line and appends it to the transcript
// Blank lines are ignored, unknown commands produce an error line
func (sh *Shell) Process(line string) Result {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Result{}
	}
	sh.remember(raw)

	fields := strings.Fields(strings.ToLower(raw))
	cmd := lookup(fields[0])
	if cmd == nil {
		sh.append(Entry{Command: raw, Output: []Line{
			failure("Command not found: " + raw + ". Type 'help' for available commands."),
		}})
		return Result{}
	}

	out, res := cmd.run(sh, fields[1:])
	if res.Action != ActionClear {
		sh.append(Entry{Command: raw, Output: out})
	}
	return res
}

// Submit processes and clears the edit line
func (sh *Shell) Submit() Result {
	line := string(sh.input)
	sh.input = sh.input[:0]
	sh.cursor = 0
	sh.histIdx = -1
	return sh.Process(line)
}

func (sh *Shell) append(e Entry) {
	sh.entries = append(sh.entries, e)
	if over := len(sh.entries) - sh.maxEntries; over > 0 {
		sh.entries = append(sh.entries[:0], sh.entries[over:]...)
	}
}

func (sh *Shell) remember(cmd string) {
	if len(sh.history) > 0 && sh.history[0] == cmd {
		return
	}
	sh.history = append([]string{cmd}, sh.history...)
	if len(sh.history) > sh.maxEntries {
		sh.history = sh.history[:sh.maxEntries]
	}
}

// Line editing

// InsertRune inserts r at the cursor
func (sh *Shell) InsertRune(r rune) {
	sh.input = append(sh.input, 0)
	copy(sh.input[sh.cursor+1:], sh.input[sh.cursor:])
	sh.input[sh.cursor] = r
	sh.cursor++
}

// Backspace deletes the rune before the cursor
func (sh *Shell) Backspace() {
	if sh.cursor == 0 {
		return
	}
	sh.input = append(sh.input[:sh.cursor-1], sh.input[sh.cursor:]...)
	sh.cursor--
}

// Delete removes the rune under the cursor
func (sh *Shell) Delete() {
	if sh.cursor >= len(sh.input) {
		return
	}
	sh.input = append(sh.input[:sh.cursor], sh.input[sh.cursor+1:]...)
}

// MoveCursor shifts the cursor by delta, clamped to the line
func (sh *Shell) MoveCursor(delta int) {
	sh.cursor = min(max(sh.cursor+delta, 0), len(sh.input))
}

// Home moves the cursor to line start
func (sh *Shell) Home() { sh.cursor = 0 }

// End moves the cursor to line end
func (sh *Shell) End() { sh.cursor = len(sh.input) }

// HistoryPrev recalls the next older command
func (sh *Shell) HistoryPrev() {
	if sh.histIdx >= len(sh.history)-1 {
		return
	}
	sh.histIdx++
	sh.setInput(sh.history[sh.histIdx])
}

// HistoryNext recalls the next newer command, past the newest clears the line
func (sh *Shell) HistoryNext() {
	if sh.histIdx > 0 {
		sh.histIdx--
		sh.setInput(sh.history[sh.histIdx])
		return
	}
	sh.histIdx = -1
	sh.setInput("")
}

func (sh *Shell) setInput(s string) {
	sh.input = append(sh.input[:0], []rune(s)...)
	sh.cursor = len(sh.input)
}

// Accessors

// Entries returns the transcript, oldest first
func (sh *Shell) Entries() []Entry { return sh.entries }

// Input returns the edit line
func (sh *Shell) Input() string { return string(sh.input) }

// Cursor returns the cursor rune offset into Input
func (sh *Shell) Cursor() int { return sh.cursor }

// Theme returns the active theme
func (sh *Shell) Theme() Theme { return sh.theme }

// SetTheme changes the active theme
func (sh *Shell) SetTheme(t Theme) { sh.theme = t }

// History returns recalled commands, most recent first
func (sh *Shell) History() []string { return sh.history }
