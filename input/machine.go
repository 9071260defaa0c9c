package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// modifierMask is the set of modifiers that unlock camera drag and wheel zoom
// Alt is included since many terminals report Meta as Alt
const modifierMask = tcell.ModCtrl | tcell.ModMeta | tcell.ModAlt

// Machine is the input state machine
// Parses tcell events into semantic Intents for the active mode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable

	// Pointer state
	prevButtons tcell.ButtonMask
	dragging    bool
}

// NewMachine creates a new input machine in scene mode
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeScene,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's mode context, pending pointer gestures are dropped
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
	m.Reset()
}

// Mode returns the current mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// KeyTable exposes bindings for override loading
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// Reset clears pointer gesture state
func (m *Machine) Reset() {
	m.prevButtons = tcell.ButtonNone
	m.dragging = false
}

// Dragging reports whether a modifier drag is in progress
func (m *Machine) Dragging() bool {
	return m.dragging
}

// Process parses a tcell event and returns an Intent
// Returns nil for events with no meaning in the current mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if e, ok := m.keyTable.GlobalKeys[ev.Key()]; ok {
		return e.intent()
	}

	switch m.mode {
	case ModeScene:
		return m.lookup(ev, m.keyTable.SceneKeys, m.keyTable.SceneRunes)
	case ModeSnake:
		return m.lookup(ev, m.keyTable.SnakeKeys, m.keyTable.SnakeRunes)
	case ModeShell:
		return m.processShell(ev)
	}
	return nil
}

func (m *Machine) lookup(ev *tcell.EventKey, keys map[tcell.Key]KeyEntry, runes map[rune]KeyEntry) *Intent {
	if ev.Key() == tcell.KeyRune {
		if e, ok := runes[ev.Rune()]; ok {
			return e.intent()
		}
		return nil
	}
	if e, ok := keys[ev.Key()]; ok {
		return e.intent()
	}
	return nil
}

func (m *Machine) processShell(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if !unicode.IsPrint(r) {
			return nil
		}
		return &Intent{Type: IntentTextChar, Char: r}
	}
	if e, ok := m.keyTable.ShellKeys[ev.Key()]; ok {
		return e.intent()
	}
	return nil
}

// processMouse turns button state transitions into gestures
// Scene only: press without modifier clicks, press with modifier starts a drag,
// wheel zooms only with modifier, plain motion hovers
// A drag orbits only while the modifier is held, unmodified moves mid-drag hover
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons()
	prev := m.prevButtons
	m.prevButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	if m.mode != ModeScene {
		return nil
	}

	x, y := ev.Position()
	mod := ev.Modifiers()&modifierMask != 0
	pressed := buttons&tcell.Button1 != 0
	wasPressed := prev&tcell.Button1 != 0

	switch {
	case buttons&tcell.WheelUp != 0:
		if !mod {
			return &Intent{Type: IntentHover, X: x, Y: y}
		}
		return &Intent{Type: IntentZoom, X: x, Y: y, Delta: -1, Mod: true}

	case buttons&tcell.WheelDown != 0:
		if !mod {
			return &Intent{Type: IntentHover, X: x, Y: y}
		}
		return &Intent{Type: IntentZoom, X: x, Y: y, Delta: 1, Mod: true}

	case pressed && !wasPressed:
		if mod {
			m.dragging = true
			return &Intent{Type: IntentDragBegin, X: x, Y: y, Mod: true}
		}
		return &Intent{Type: IntentClick, X: x, Y: y}

	case pressed && m.dragging && mod:
		return &Intent{Type: IntentDragMove, X: x, Y: y, Mod: true}

	case !pressed && wasPressed && m.dragging:
		m.dragging = false
		return &Intent{Type: IntentDragEnd, X: x, Y: y, Mod: mod}
	}

	return &Intent{Type: IntentHover, X: x, Y: y, Mod: mod}
}
