package render

import "github.com/lixenwraith/portfolio-term/shell"

// Scene palette
var (
	RgbBackground   = RGB{10, 10, 20}
	RgbParticle     = RGB{70, 110, 170}
	RgbOrbitRing    = RGB{60, 70, 110}
	RgbMoonRing     = RGB{90, 80, 140}
	RgbLabel        = RGB{220, 225, 240}
	RgbLabelDim     = RGB{140, 145, 170}
	RgbHover        = RGB{255, 255, 255}
	RgbHUDText      = RGB{170, 175, 200}
	RgbHUDAccent    = RGB{0, 200, 255}
	RgbHUDBg        = RGB{18, 18, 32}
	RgbCardBg       = RGB{24, 24, 44}
	RgbCardBorder   = RGB{90, 80, 160}
	RgbLevelFill    = RGB{0, 200, 255}
	RgbLevelEmpty   = RGB{50, 50, 80}
	RgbHintText     = RGB{255, 200, 80}
	RgbSunCore      = RGB{255, 245, 200}
	RgbSunMid       = RGB{255, 190, 60}
	RgbSunEdge      = RGB{255, 110, 20}
	RgbWindowDotRed = RGB{255, 95, 86}
	RgbWindowDotYel = RGB{255, 189, 46}
	RgbWindowDotGrn = RGB{39, 201, 63}
)

// ShellPalette resolves semantic line styles for a terminal theme
type ShellPalette struct {
	Bg, Title, Border      RGB
	Text, Primary, Second  RGB
	Muted, Error, Prompt   RGB
	SnakeHead, SnakeBody   RGB
	Food, GridDot, Overlay RGB
}

var shellPalettes = map[shell.Theme]ShellPalette{
	shell.ThemeDefault: {
		Bg: RGB{16, 18, 30}, Title: RGB{28, 30, 48}, Border: RGB{60, 70, 120},
		Text: RGB{220, 225, 240}, Primary: RGB{0, 200, 255}, Second: RGB{180, 120, 255},
		Muted: RGB{120, 125, 150}, Error: RGB{255, 85, 85}, Prompt: RGB{0, 220, 140},
		SnakeHead: RGB{0, 200, 255}, SnakeBody: RGB{0, 140, 180},
		Food: RGB{180, 120, 255}, GridDot: RGB{40, 44, 70}, Overlay: RGB{24, 26, 42},
	},
	shell.ThemeMatrix: {
		Bg: RGB{0, 10, 0}, Title: RGB{0, 24, 0}, Border: RGB{0, 120, 0},
		Text: RGB{0, 255, 0}, Primary: RGB{120, 255, 120}, Second: RGB{0, 200, 80},
		Muted: RGB{0, 130, 0}, Error: RGB{255, 80, 80}, Prompt: RGB{150, 255, 150},
		SnakeHead: RGB{150, 255, 150}, SnakeBody: RGB{0, 190, 0},
		Food: RGB{220, 255, 220}, GridDot: RGB{0, 40, 0}, Overlay: RGB{0, 18, 0},
	},
	shell.ThemeCyber: {
		Bg: RGB{12, 0, 20}, Title: RGB{30, 0, 48}, Border: RGB{150, 0, 255},
		Text: RGB{255, 80, 220}, Primary: RGB{0, 255, 255}, Second: RGB{255, 0, 170},
		Muted: RGB{150, 90, 170}, Error: RGB{255, 60, 60}, Prompt: RGB{0, 255, 200},
		SnakeHead: RGB{0, 255, 255}, SnakeBody: RGB{180, 0, 255},
		Food: RGB{255, 0, 170}, GridDot: RGB{50, 0, 70}, Overlay: RGB{24, 0, 36},
	},
	shell.ThemeRetro: {
		Bg: RGB{16, 8, 0}, Title: RGB{36, 18, 0}, Border: RGB{160, 80, 0},
		Text: RGB{255, 140, 0}, Primary: RGB{255, 200, 80}, Second: RGB{255, 110, 40},
		Muted: RGB{160, 90, 20}, Error: RGB{255, 70, 40}, Prompt: RGB{255, 220, 120},
		SnakeHead: RGB{255, 200, 80}, SnakeBody: RGB{200, 110, 0},
		Food: RGB{255, 80, 40}, GridDot: RGB{60, 30, 0}, Overlay: RGB{30, 15, 0},
	},
}

// PaletteFor returns the palette of theme, falling back to default
func PaletteFor(t shell.Theme) ShellPalette {
	if p, ok := shellPalettes[t]; ok {
		return p
	}
	return shellPalettes[shell.ThemeDefault]
}

// LineColor maps a semantic line style to a palette color
func (p ShellPalette) LineColor(s shell.Style) RGB {
	switch s {
	case shell.StylePrimary:
		return p.Primary
	case shell.StyleSecondary:
		return p.Second
	case shell.StyleMuted:
		return p.Muted
	case shell.StyleError:
		return p.Error
	default:
		return p.Text
	}
}
