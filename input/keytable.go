package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/snake"
)

// KeyEntry describes a key's intent without function pointers
type KeyEntry struct {
	IntentType IntentType
	Index      int
	DX, DY     float64
	Delta      float64
	Dir        snake.Direction
	Nav        NavOp
}

func (e KeyEntry) intent() *Intent {
	if e.IntentType == IntentNone {
		return nil
	}
	return &Intent{
		Type:  e.IntentType,
		Index: e.Index,
		DX:    e.DX,
		DY:    e.DY,
		Delta: e.Delta,
		Dir:   e.Dir,
		Nav:   e.Nav,
	}
}

// KeyTable maps keys to intents for all modes
type KeyTable struct {
	// Checked first in every mode
	GlobalKeys map[tcell.Key]KeyEntry

	SceneKeys  map[tcell.Key]KeyEntry
	SceneRunes map[rune]KeyEntry

	SnakeKeys  map[tcell.Key]KeyEntry
	SnakeRunes map[rune]KeyEntry

	// Shell runes are text, only special keys are bound
	ShellKeys map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		GlobalKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: {IntentType: IntentQuit},
			tcell.KeyCtrlQ: {IntentType: IntentQuit},
			tcell.KeyCtrlS: {IntentType: IntentToggleMute},
		},

		SceneKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentEscape},
			tcell.KeyTab:    {IntentType: IntentToggleView},
			tcell.KeyLeft:   {IntentType: IntentOrbit, DX: -1},
			tcell.KeyRight:  {IntentType: IntentOrbit, DX: 1},
			tcell.KeyUp:     {IntentType: IntentOrbit, DY: -1},
			tcell.KeyDown:   {IntentType: IntentOrbit, DY: 1},
			tcell.KeyPgUp:   {IntentType: IntentZoom, Delta: -1},
			tcell.KeyPgDn:   {IntentType: IntentZoom, Delta: 1},
		},

		SceneRunes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'm': {IntentType: IntentToggleMute},
			'r': {IntentType: IntentCameraReset},
			'?': {IntentType: IntentToggleHint},
			'h': {IntentType: IntentOrbit, DX: -1},
			'l': {IntentType: IntentOrbit, DX: 1},
			'k': {IntentType: IntentOrbit, DY: -1},
			'j': {IntentType: IntentOrbit, DY: 1},
			'+': {IntentType: IntentZoom, Delta: -1},
			'=': {IntentType: IntentZoom, Delta: -1},
			'-': {IntentType: IntentZoom, Delta: 1},
		},

		SnakeKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentEscape},
			tcell.KeyUp:     {IntentType: IntentSnakeDir, Dir: snake.DirUp},
			tcell.KeyDown:   {IntentType: IntentSnakeDir, Dir: snake.DirDown},
			tcell.KeyLeft:   {IntentType: IntentSnakeDir, Dir: snake.DirLeft},
			tcell.KeyRight:  {IntentType: IntentSnakeDir, Dir: snake.DirRight},
			tcell.KeyEnter:  {IntentType: IntentSnakeRestart},
		},

		SnakeRunes: map[rune]KeyEntry{
			'w': {IntentType: IntentSnakeDir, Dir: snake.DirUp},
			's': {IntentType: IntentSnakeDir, Dir: snake.DirDown},
			'a': {IntentType: IntentSnakeDir, Dir: snake.DirLeft},
			'd': {IntentType: IntentSnakeDir, Dir: snake.DirRight},
			'W': {IntentType: IntentSnakeDir, Dir: snake.DirUp},
			'S': {IntentType: IntentSnakeDir, Dir: snake.DirDown},
			'A': {IntentType: IntentSnakeDir, Dir: snake.DirLeft},
			'D': {IntentType: IntentSnakeDir, Dir: snake.DirRight},
			'r': {IntentType: IntentSnakeRestart},
			' ': {IntentType: IntentSnakeRestart},
		},

		ShellKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape:     {IntentType: IntentEscape},
			tcell.KeyTab:        {IntentType: IntentToggleView},
			tcell.KeyEnter:      {IntentType: IntentTextSubmit},
			tcell.KeyBackspace:  {IntentType: IntentTextBackspace},
			tcell.KeyBackspace2: {IntentType: IntentTextBackspace},
			tcell.KeyDelete:     {IntentType: IntentTextDelete},
			tcell.KeyLeft:       {IntentType: IntentTextNav, Nav: NavLeft},
			tcell.KeyRight:      {IntentType: IntentTextNav, Nav: NavRight},
			tcell.KeyHome:       {IntentType: IntentTextNav, Nav: NavHome},
			tcell.KeyEnd:        {IntentType: IntentTextNav, Nav: NavEnd},
			tcell.KeyCtrlA:      {IntentType: IntentTextNav, Nav: NavHome},
			tcell.KeyCtrlE:      {IntentType: IntentTextNav, Nav: NavEnd},
			tcell.KeyUp:         {IntentType: IntentHistoryPrev},
			tcell.KeyDown:       {IntentType: IntentHistoryNext},
		},
	}

	for i := 0; i < 9; i++ {
		kt.SceneRunes[rune('1'+i)] = KeyEntry{IntentType: IntentSelectBody, Index: i}
	}
	return kt
}
