package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/shell"
)

// ShellSource is the read side of a shell session
type ShellSource interface {
	Entries() []shell.Entry
	Input() string
	Cursor() int
	Theme() shell.Theme
}

// textRow is one wrapped transcript row, the first promptLen runes draw in the prompt color
type textRow struct {
	runes     []rune
	fg        RGB
	promptLen int
}

// ShellRenderer draws the terminal window with transcript and prompt
type ShellRenderer struct {
	rows []textRow
}

// NewShellRenderer creates a shell renderer
func NewShellRenderer() *ShellRenderer {
	return &ShellRenderer{}
}

// WindowRect returns the centered window for a w by h screen
func WindowRect(w, h int) (x, y, ww, wh int) {
	ww = min(max(w-4, constants.ShellMinWidth), constants.ShellMaxWidth)
	ww = min(ww, w)
	wh = max(h-2, 5)
	wh = min(wh, h)
	return (w - ww) / 2, (h - wh) / 2, ww, wh
}

// Render draws src filling buf
func (r *ShellRenderer) Render(buf *RenderBuffer, src ShellSource) {
	w, h := buf.Size()
	pal := PaletteFor(src.Theme())
	buf.FillRect(0, 0, w, h, Scale(pal.Bg, 0.6))

	x0, y0, ww, wh := WindowRect(w, h)
	if ww < 8 || wh < 4 {
		return
	}
	r.drawChrome(buf, pal, x0, y0, ww, wh)

	cw := ww - 4
	bodyTop := y0 + constants.ShellTitleHeight
	bodyH := wh - constants.ShellTitleHeight - 1

	r.rows = r.rows[:0]
	prompt := []rune(shell.Prompt())
	for _, e := range src.Entries() {
		if e.Command != "" {
			r.wrap(append(append([]rune{}, prompt...), []rune(e.Command)...), pal.Text, len(prompt), cw)
		}
		for _, l := range e.Output {
			r.wrap([]rune(l.Text), pal.LineColor(l.Style), 0, cw)
		}
	}

	// Input line, cursor may sit one past the last rune
	inputStart := len(r.rows)
	input := append(append([]rune{}, prompt...), []rune(src.Input())...)
	r.wrap(input, pal.Text, len(prompt), cw)
	cursorIdx := len(prompt) + src.Cursor()
	cursorRow := inputStart + cursorIdx/cw
	if cursorRow >= len(r.rows) {
		r.rows = append(r.rows, textRow{fg: pal.Text})
	}

	first := max(0, len(r.rows)-bodyH)
	for i := first; i < len(r.rows); i++ {
		y := bodyTop + i - first
		row := r.rows[i]
		for j, ch := range row.runes {
			fg := row.fg
			if j < row.promptLen {
				fg = pal.Prompt
			}
			buf.SetFgOnly(x0+2+j, y, ch, fg, tcell.AttrNone)
		}
	}

	if cursorRow >= first {
		cx := x0 + 2 + cursorIdx%cw
		cy := bodyTop + cursorRow - first
		under := buf.Get(cx, cy).Rune
		if under == 0 {
			under = ' '
		}
		buf.SetWithBg(cx, cy, under, pal.Bg, pal.Text)
	}
}

// wrap hard-wraps runes at width cw into rows
func (r *ShellRenderer) wrap(runes []rune, fg RGB, promptLen, cw int) {
	if len(runes) == 0 {
		r.rows = append(r.rows, textRow{fg: fg})
		return
	}
	for len(runes) > 0 {
		n := min(cw, len(runes))
		r.rows = append(r.rows, textRow{runes: runes[:n], fg: fg, promptLen: min(promptLen, n)})
		runes = runes[n:]
		promptLen = max(0, promptLen-n)
	}
}

func (r *ShellRenderer) drawChrome(buf *RenderBuffer, pal ShellPalette, x0, y0, ww, wh int) {
	buf.FillRect(x0, y0, ww, wh, pal.Bg)
	buf.FillRect(x0, y0, ww, constants.ShellTitleHeight, pal.Title)

	buf.SetFgOnly(x0+2, y0, '●', RgbWindowDotRed, tcell.AttrNone)
	buf.SetFgOnly(x0+4, y0, '●', RgbWindowDotYel, tcell.AttrNone)
	buf.SetFgOnly(x0+6, y0, '●', RgbWindowDotGrn, tcell.AttrNone)

	title := constants.ShellUser + "@" + constants.ShellHost + ": ~"
	tx := x0 + (ww-len(title))/2
	if tx > x0+8 {
		buf.WriteString(tx, y0, title, pal.Muted, tcell.AttrNone)
	}

	for j := constants.ShellTitleHeight; j < wh; j++ {
		buf.SetFgOnly(x0, y0+j, '│', pal.Border, tcell.AttrNone)
		buf.SetFgOnly(x0+ww-1, y0+j, '│', pal.Border, tcell.AttrNone)
	}
	for i := 1; i < ww-1; i++ {
		buf.SetFgOnly(x0+i, y0+wh-1, '─', pal.Border, tcell.AttrNone)
	}
	buf.SetFgOnly(x0, y0+wh-1, '╰', pal.Border, tcell.AttrNone)
	buf.SetFgOnly(x0+ww-1, y0+wh-1, '╯', pal.Border, tcell.AttrNone)
}
