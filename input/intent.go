package input

import "github.com/lixenwraith/portfolio-term/snake"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, q in scene
	IntentEscape     // ESC key (context-dependent)
	IntentToggleMute // Ctrl+S, m in scene
	IntentToggleView // Tab, scene <-> shell
	IntentResize     // Terminal resize event

	// Scene keyboard
	IntentSelectBody   // 1-9, Index is zero-based
	IntentOrbit        // arrows/hjkl, DX/DY in steps
	IntentZoom         // +/-/wheel, Delta in steps (negative zooms in)
	IntentCameraReset  // r
	IntentToggleHint   // ?

	// Scene pointer
	IntentClick     // left press without modifier
	IntentHover     // pointer motion
	IntentDragBegin // left press with modifier
	IntentDragMove  // motion while dragging
	IntentDragEnd   // release after drag

	// Snake
	IntentSnakeDir     // arrows/WASD, Dir set
	IntentSnakeRestart // r/Enter/Space

	// Shell line editing
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextDelete    // Delete
	IntentTextSubmit    // Enter
	IntentTextNav       // Left/Right/Home/End, Nav set
	IntentHistoryPrev   // Up
	IntentHistoryNext   // Down
)

// NavOp identifies line-edit cursor movement
type NavOp uint8

const (
	NavNone NavOp = iota
	NavLeft
	NavRight
	NavHome
	NavEnd
)

// Intent represents a parsed semantic action
// Pure data, no engine dependencies beyond the snake direction enum
type Intent struct {
	Type IntentType

	X, Y int // cell position for pointer intents

	Index  int     // body index for IntentSelectBody
	DX, DY float64 // orbit steps
	Delta  float64 // zoom steps

	Char rune
	Dir  snake.Direction
	Nav  NavOp

	// Mod is true when Ctrl/Meta/Alt was held during a pointer event
	Mod bool
}
