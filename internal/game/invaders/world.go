package invaders

import (
	"math/rand"

	"github.com/rvbug/space-shooters/internal/config"
)

// World owns the complete simulation state: the player singleton, the enemy
// formation, and the two bullet collections. It is held exclusively by one
// Game and mutated in place by the stage methods, in a fixed order, on a
// single goroutine.
type World struct {
	cfg config.InvadersConfig

	Player        Entity
	Enemies       []Entity
	PlayerBullets []Entity
	EnemyBullets  []Entity

	Score    int
	GameOver bool

	// Direction is the current formation sweep direction, +1 or -1.
	Direction int

	sweepTicker int
	rng         *rand.Rand
}

// NewWorld creates a world with a freshly spawned formation and the ship
// centered on the second-to-last row.
func NewWorld(cfg config.InvadersConfig, rng *rand.Rand) *World {
	w := &World{
		cfg: cfg,
		Player: Entity{
			X:     cfg.Grid.Width / 2,
			Y:     cfg.Grid.Height - 2,
			Alive: true,
		},
		Direction: 1,
		rng:       rng,
	}
	w.spawnFormation()
	return w
}

// spawnFormation populates the enemy grid. Runs exactly once, at world
// creation; a later call would duplicate the formation.
func (w *World) spawnFormation() {
	f := w.cfg.Formation
	w.Enemies = make([]Entity, 0, f.Rows*f.Cols)
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			w.Enemies = append(w.Enemies, Entity{
				X:     f.LeftMargin + col*f.ColSpacing,
				Y:     f.TopMargin + row*f.RowSpacing,
				Alive: true,
			})
		}
	}
}

// MovePlayer shifts the ship one cell horizontally. The outermost columns
// are a deliberate one-cell border; a move that would land there is
// silently dropped.
func (w *World) MovePlayer(direction int) {
	newX := w.Player.X + direction
	if newX > 0 && newX < w.cfg.Grid.Width-1 {
		w.Player.X = newX
	}
}

// Fire spawns a player bullet one row above the ship. The ship never moves
// vertically, so spawn placement keeps it off row 0; the guard makes the
// invariant local instead of assumed.
func (w *World) Fire() {
	if w.Player.Y == 0 {
		return
	}
	w.PlayerBullets = append(w.PlayerBullets, Entity{
		X:     w.Player.X,
		Y:     w.Player.Y - 1,
		Alive: true,
	})
}

// Cleared reports whether the formation is empty, the win condition.
// Checked by the caller after Resolve; the tie with GameOver is settled
// there according to Rules.LossPriority.
func (w *World) Cleared() bool {
	return len(w.Enemies) == 0
}

// Prune removes every dead entity from the three collections. The player
// is a singleton and is never pruned. Pruning with no intervening deaths
// is a no-op.
func (w *World) Prune() {
	w.PlayerBullets = retainAlive(w.PlayerBullets)
	w.EnemyBullets = retainAlive(w.EnemyBullets)
	w.Enemies = retainAlive(w.Enemies)
}

// retainAlive compacts a slice in place, preserving order. Order matters:
// collision resolution awards a bullet's kill to the first enemy in slice
// order, and that tie-break must stay stable across ticks.
func retainAlive(entities []Entity) []Entity {
	kept := entities[:0]
	for _, e := range entities {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	return kept
}
