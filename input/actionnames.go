package input

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/portfolio-term/snake"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the key override loader to resolve config action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	reg := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// System
		"quit":        {IntentType: IntentQuit},
		"escape":      {IntentType: IntentEscape},
		"toggle_mute": {IntentType: IntentToggleMute},
		"toggle_view": {IntentType: IntentToggleView},

		// Camera
		"orbit_left":   {IntentType: IntentOrbit, DX: -1},
		"orbit_right":  {IntentType: IntentOrbit, DX: 1},
		"orbit_up":     {IntentType: IntentOrbit, DY: -1},
		"orbit_down":   {IntentType: IntentOrbit, DY: 1},
		"zoom_in":      {IntentType: IntentZoom, Delta: -1},
		"zoom_out":     {IntentType: IntentZoom, Delta: 1},
		"camera_reset": {IntentType: IntentCameraReset},
		"toggle_hint":  {IntentType: IntentToggleHint},

		// Snake
		"snake_up":      {IntentType: IntentSnakeDir, Dir: snake.DirUp},
		"snake_down":    {IntentType: IntentSnakeDir, Dir: snake.DirDown},
		"snake_left":    {IntentType: IntentSnakeDir, Dir: snake.DirLeft},
		"snake_right":   {IntentType: IntentSnakeDir, Dir: snake.DirRight},
		"snake_restart": {IntentType: IntentSnakeRestart},
	}
	for i := 0; i < 9; i++ {
		reg[fmt.Sprintf("select_%d", i+1)] = KeyEntry{IntentType: IntentSelectBody, Index: i}
	}
	return reg
}

// ActionNames returns all registered action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
