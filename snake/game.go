// Package snake is a fixed-tick grid snake game.
// Game holds all state; the host calls Tick on its interval and reads Snapshot to draw.
// Collisions are terminal states, not errors.
package snake

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/portfolio-term/constants"
)

// Outcome reports what a Tick did
type Outcome uint8

const (
	OutcomeNone      Outcome = iota // not running, nothing changed
	OutcomeMoved                    // head advanced, length unchanged
	OutcomeAte                      // head advanced onto food, snake grew
	OutcomeCrashed                  // wall or self collision, game over
	OutcomeBoardFull                // snake grew into the last free cell, game won
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// Config tunes the board and timing
type Config struct {
	GridSize int    `toml:"grid_size"`
	TickMS   int    `toml:"tick_ms"`
	Seed     uint64 `toml:"seed"`
}

// DefaultConfig returns the classic 15x15 board at 150ms per tick
func DefaultConfig() Config {
	return Config{
		GridSize: constants.SnakeGridSize,
		TickMS:   int(constants.SnakeTickInterval / time.Millisecond),
	}
}

// Validate rejects boards too small to hold a snake and a food cell
func (c Config) Validate() error {
	if c.GridSize < 2 || c.GridSize > 64 {
		return fmt.Errorf("snake.grid_size %d outside 2-64", c.GridSize)
	}
	if c.TickMS < 10 {
		return fmt.Errorf("snake.tick_ms %d below 10", c.TickMS)
	}
	return nil
}

// TickInterval returns the fixed tick period
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Rand is the random source used for food placement
type Rand interface {
	Intn(n int) int
}

// Game is the snake state machine, single goroutine only
type Game struct {
	size int
	rng  Rand

	cells    []Cell // head first
	occupied []bool // size*size, indexed y*size+x
	free     []Cell // scratch for food placement

	food    Cell
	dir     Direction // applied on the last tick
	pending Direction // applied on the next tick

	score    int
	gameOver bool
	running  bool
	won      bool
}

// New creates a running game, rng nil seeds from cfg.Seed
func New(cfg Config, rng Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g := &Game{
		size:     cfg.GridSize,
		rng:      rng,
		occupied: make([]bool, cfg.GridSize*cfg.GridSize),
		free:     make([]Cell, 0, cfg.GridSize*cfg.GridSize),
	}
	g.Reset()
	return g, nil
}

// Reset restores the single-cell snake heading right with fresh food and zero score
func (g *Game) Reset() {
	for i := range g.occupied {
		g.occupied[i] = false
	}
	start := g.Start()
	g.cells = append(g.cells[:0], start)
	g.occupied[g.index(start)] = true

	g.dir = DirRight
	g.pending = DirRight
	g.score = 0
	g.gameOver = false
	g.won = false
	g.running = true

	// A board of at least 2x2 always has a free cell here
	g.placeFood()
}

// Start returns the spawn cell, the board center
func (g *Game) Start() Cell {
	return Cell{X: g.size / 2, Y: g.size / 2}
}

// SetDirection queues d for the next tick
// Ignored after game over or when d reverses the current heading; the latest accepted request wins
func (g *Game) SetDirection(d Direction) bool {
	if g.gameOver || d > DirRight {
		return false
	}
	if d == g.dir.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// Tick advances the snake one cell
func (g *Game) Tick() Outcome {
	if !g.running || g.gameOver {
		return OutcomeNone
	}

	g.dir = g.pending
	head := g.cells[0].Step(g.dir)

	// Tail cell counts as occupied, moving into it is a crash
	if !g.inBounds(head) || g.occupied[g.index(head)] {
		g.gameOver = true
		g.running = false
		return OutcomeCrashed
	}

	g.cells = append(g.cells, Cell{})
	copy(g.cells[1:], g.cells)
	g.cells[0] = head
	g.occupied[g.index(head)] = true

	if head == g.food {
		g.score++
		if !g.placeFood() {
			g.won = true
			g.gameOver = true
			g.running = false
			return OutcomeBoardFull
		}
		return OutcomeAte
	}

	tail := g.cells[len(g.cells)-1]
	g.cells = g.cells[:len(g.cells)-1]
	g.occupied[g.index(tail)] = false
	return OutcomeMoved
}

// Stop halts ticking without ending the game
func (g *Game) Stop() {
	g.running = false
}

// Occupied reports whether c holds a snake segment
func (g *Game) Occupied(c Cell) bool {
	return g.inBounds(c) && g.occupied[g.index(c)]
}

// placeFood picks a uniform free cell, false when the board is full
func (g *Game) placeFood() bool {
	g.free = g.free[:0]
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if !g.occupied[y*g.size+x] {
				g.free = append(g.free, Cell{X: x, Y: y})
			}
		}
	}
	if len(g.free) == 0 {
		return false
	}
	g.food = g.free[g.rng.Intn(len(g.free))]
	return true
}

func (g *Game) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

func (g *Game) index(c Cell) int {
	return c.Y*g.size + c.X
}

// Accessors

func (g *Game) Size() int            { return g.size }
func (g *Game) Score() int           { return g.score }
func (g *Game) Food() Cell           { return g.food }
func (g *Game) Direction() Direction { return g.dir }
func (g *Game) GameOver() bool       { return g.gameOver }
func (g *Game) Running() bool        { return g.running }
func (g *Game) Won() bool            { return g.won }
func (g *Game) Len() int             { return len(g.cells) }
func (g *Game) Head() Cell           { return g.cells[0] }
