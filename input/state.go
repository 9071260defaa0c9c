package input

// InputMode selects which key table and mouse handling apply
// Kept in sync by the app when focus moves between views
type InputMode uint8

const (
	ModeScene InputMode = iota
	ModeShell
	ModeSnake
)

func (m InputMode) String() string {
	switch m {
	case ModeScene:
		return "scene"
	case ModeShell:
		return "shell"
	case ModeSnake:
		return "snake"
	default:
		return "unknown"
	}
}
