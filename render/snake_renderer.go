package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/shell"
	"github.com/lixenwraith/portfolio-term/snake"
)

// Footer lines under the board
const (
	SnakeTitle      = "Snake Game"
	SnakeHelpFooter = "Use WASD or Arrow Keys. ESC to exit."
)

// SnakeFooter returns the status line for snap
func SnakeFooter(snap *snake.Snapshot) string {
	switch {
	case snap.Won:
		return fmt.Sprintf("Board cleared! Score: %d. Press R to play again, ESC to exit.", snap.Score)
	case snap.GameOver:
		return fmt.Sprintf("Game Over! Score: %d. Press ESC to exit.", snap.Score)
	default:
		return SnakeHelpFooter
	}
}

// SnakeRenderer draws the board centered inside the terminal window
type SnakeRenderer struct {
	occupied []int8 // 0 empty, 1 body, 2 head
}

// NewSnakeRenderer creates a snake renderer
func NewSnakeRenderer() *SnakeRenderer {
	return &SnakeRenderer{}
}

// Render draws snap using the colors of theme
func (r *SnakeRenderer) Render(buf *RenderBuffer, snap *snake.Snapshot, theme shell.Theme) {
	w, h := buf.Size()
	pal := PaletteFor(theme)
	buf.FillRect(0, 0, w, h, pal.Overlay)

	n := snap.GridSize
	boardW := n*constants.SnakeCellWidth + 2
	boardH := n + 2
	totalH := boardH + 4 // title, score, gap, footer

	x0 := (w - boardW) / 2
	y0 := max(0, (h-totalH)/2)

	centerText(buf, w, y0, SnakeTitle, pal.Primary, tcell.AttrBold)
	centerText(buf, w, y0+1, fmt.Sprintf("Score: %d", snap.Score), pal.Text, tcell.AttrNone)

	by := y0 + 2
	drawBox(buf, x0, by, boardW, boardH, pal.Border, pal.Bg)

	if cap(r.occupied) < n*n {
		r.occupied = make([]int8, n*n)
	}
	r.occupied = r.occupied[:n*n]
	clear(r.occupied)
	for i, c := range snap.Cells {
		if c.X < 0 || c.X >= n || c.Y < 0 || c.Y >= n {
			continue
		}
		v := int8(1)
		if i == 0 {
			v = 2
		}
		r.occupied[c.Y*n+c.X] = v
	}

	for gy := 0; gy < n; gy++ {
		for gx := 0; gx < n; gx++ {
			sx := x0 + 1 + gx*constants.SnakeCellWidth
			sy := by + 1 + gy
			switch r.occupied[gy*n+gx] {
			case 2:
				fillCell(buf, sx, sy, pal.SnakeHead)
			case 1:
				fillCell(buf, sx, sy, pal.SnakeBody)
			default:
				if snap.HasFood && snap.Food.X == gx && snap.Food.Y == gy {
					buf.SetFgOnly(sx, sy, '●', pal.Food, tcell.AttrBold)
				} else {
					buf.SetFgOnly(sx, sy, '·', pal.GridDot, tcell.AttrNone)
				}
			}
		}
	}

	fg := pal.Muted
	if snap.GameOver {
		fg = pal.Error
		if snap.Won {
			fg = pal.Primary
		}
	}
	centerText(buf, w, by+boardH+1, SnakeFooter(snap), fg, tcell.AttrNone)
}

func fillCell(buf *RenderBuffer, x, y int, c RGB) {
	for i := 0; i < constants.SnakeCellWidth; i++ {
		buf.SetWithBg(x+i, y, ' ', c, c)
	}
}

func centerText(buf *RenderBuffer, w, y int, s string, fg RGB, attrs tcell.AttrMask) {
	x := max(0, (w-len([]rune(s)))/2)
	buf.WriteString(x, y, s, fg, attrs)
}
