package invaders

// CellTag identifies what occupies a grid cell in a snapshot.
type CellTag uint8

const (
	TagEmpty CellTag = iota
	TagPlayer
	TagEnemy
	TagBullet
)

// Snapshot is a read-only view of the settled world state after one frame:
// a Width×Height grid of cell tags plus the score and terminal flags. The
// renderer consumes it without ever touching the world, and the score is
// carried as a scalar rather than baked into the grid.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Cells     []CellTag // row-major, index y*Width+x
	Score     int
	GameOver  bool
	Won       bool
	Direction int
	Enemies   int // live enemy count
}

// At returns the tag at (x, y). Out-of-range coordinates are empty.
func (s *Snapshot) At(x, y int) CellTag {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return TagEmpty
	}
	return s.Cells[y*s.Width+x]
}

// Hash folds the snapshot into a single value for determinism checks.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score)        //#nosec G115 -- score is non-negative
	h = h*31 + uint64(s.Enemies)      //#nosec G115 -- count is non-negative
	h = h*31 + uint64(s.Direction+2)  //#nosec G115 -- direction is ±1
	if s.GameOver {
		h = h*31 + 1
	}
	if s.Won {
		h = h*31 + 2
	}
	for _, c := range s.Cells {
		h = h*31 + uint64(c)
	}
	return h
}

// Snapshot renders the world into a fresh tag grid. Write order is fixed:
// player, then enemies, then player bullets, then enemy bullets. Later
// writes overwrite earlier ones at the same cell, so a bullet passing
// through the formation shows as a bullet and an enemy sharing the
// player's cell covers the player.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:      g.simTick,
		Width:     g.cfg.Grid.Width,
		Height:    g.cfg.Grid.Height,
		Cells:     make([]CellTag, g.cfg.Grid.Width*g.cfg.Grid.Height),
		Score:     w.Score,
		GameOver:  w.GameOver && !g.won,
		Won:       g.won,
		Direction: w.Direction,
	}

	set := func(x, y int, tag CellTag) {
		if x >= 0 && x < snap.Width && y >= 0 && y < snap.Height {
			snap.Cells[y*snap.Width+x] = tag
		}
	}

	if w.Player.Alive {
		set(w.Player.X, w.Player.Y, TagPlayer)
	}
	for _, e := range w.Enemies {
		if e.Alive {
			set(e.X, e.Y, TagEnemy)
			snap.Enemies++
		}
	}
	for _, b := range w.PlayerBullets {
		if b.Alive {
			set(b.X, b.Y, TagBullet)
		}
	}
	for _, b := range w.EnemyBullets {
		if b.Alive {
			set(b.X, b.Y, TagBullet)
		}
	}

	return snap
}
