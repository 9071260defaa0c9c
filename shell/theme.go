package shell

import "strings"

// Theme selects the terminal window palette
type Theme uint8

const (
	ThemeDefault Theme = iota
	ThemeMatrix
	ThemeCyber
	ThemeRetro
)

var themeNames = [...]string{
	ThemeDefault: "default",
	ThemeMatrix:  "matrix",
	ThemeCyber:   "cyber",
	ThemeRetro:   "retro",
}

func (t Theme) String() string {
	if int(t) < len(themeNames) {
		return themeNames[t]
	}
	return "unknown"
}

// ParseTheme resolves a theme name, case-insensitive
func ParseTheme(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range themeNames {
		if n == name {
			return Theme(i), true
		}
	}
	return ThemeDefault, false
}

// ThemeNames lists theme names in declaration order
func ThemeNames() []string {
	return append([]string(nil), themeNames[:]...)
}
