package snake

// Snapshot is a read-only copy of the board for rendering
type Snapshot struct {
	GridSize  int
	Cells     []Cell // head first
	Food      Cell
	HasFood   bool
	Direction Direction
	Score     int
	GameOver  bool
	Running   bool
	Won       bool
}

// Snapshot copies current state, reusing prev.Cells when given
func (g *Game) Snapshot(prev *Snapshot) Snapshot {
	var cells []Cell
	if prev != nil {
		cells = prev.Cells[:0]
	}
	return Snapshot{
		GridSize:  g.size,
		Cells:     append(cells, g.cells...),
		Food:      g.food,
		HasFood:   !g.won,
		Direction: g.dir,
		Score:     g.score,
		GameOver:  g.gameOver,
		Running:   g.running,
		Won:       g.won,
	}
}
