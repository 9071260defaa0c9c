package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
	"minus":     '-',
	"equals":    '=',
	"question":  '?',
}

// Special key names accepted in overrides
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"pgup":   tcell.KeyPgUp,
	"pgdn":   tcell.KeyPgDn,
	"enter":  tcell.KeyEnter,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"home":   tcell.KeyHome,
	"end":    tcell.KeyEnd,
}

// ApplyBindings overlays config key overrides onto kt
// sections: "scene" and "snake", each mapping key name to action name
// Returns error on unknown sections, key names or action names, kt is unchanged on error
func (kt *KeyTable) ApplyBindings(overrides map[string]map[string]string) error {
	type pending struct {
		keys  map[tcell.Key]KeyEntry
		runes map[rune]KeyEntry
		key   tcell.Key
		r     rune
		entry KeyEntry
	}
	var staged []pending

	// Deterministic error reporting
	sections := make([]string, 0, len(overrides))
	for s := range overrides {
		sections = append(sections, s)
	}
	sort.Strings(sections)

	for _, section := range sections {
		var keys map[tcell.Key]KeyEntry
		var runes map[rune]KeyEntry
		switch section {
		case "scene":
			keys, runes = kt.SceneKeys, kt.SceneRunes
		case "snake":
			keys, runes = kt.SnakeKeys, kt.SnakeRunes
		default:
			return fmt.Errorf("keys.%s: unknown section", section)
		}

		for name, action := range overrides[section] {
			entry, ok := actionRegistry[action]
			if !ok {
				return fmt.Errorf("keys.%s.%s: unknown action %q", section, name, action)
			}
			p := pending{keys: keys, runes: runes, entry: entry}
			if k, ok := specialKeyNames[strings.ToLower(name)]; ok {
				p.key = k
			} else if r, ok := parseRuneKey(name); ok {
				p.r = r
			} else {
				return fmt.Errorf("keys.%s: invalid key name %q", section, name)
			}
			staged = append(staged, p)
		}
	}

	for _, p := range staged {
		switch {
		case p.r != 0 && p.entry.IntentType == IntentNone:
			delete(p.runes, p.r)
		case p.r != 0:
			p.runes[p.r] = p.entry
		case p.entry.IntentType == IntentNone:
			delete(p.keys, p.key)
		default:
			p.keys[p.key] = p.entry
		}
	}
	return nil
}

func parseRuneKey(name string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, true
}
