package constants

import "time"

// Snake game defaults
const (
	SnakeGridSize     = 15
	SnakeTickInterval = 150 * time.Millisecond

	// SnakeCellWidth is terminal columns per grid cell (cells are 1:2)
	SnakeCellWidth = 2
)
