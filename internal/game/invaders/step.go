package invaders

import (
	"github.com/rvbug/space-shooters/internal/core"
)

// Advance runs the motion and spawn stage for one simulation tick: bullets
// move, the formation sweeps on its gated cadence, and every live enemy
// rolls an independent fire chance. Always followed by Resolve in the same
// tick, never reordered.
func (w *World) Advance() {
	w.moveBullets()
	w.sweepFormation()
	w.enemyFire()
}

// moveBullets advances player bullets up and enemy bullets down one row.
// A bullet sitting on its terminal edge row dies instead of moving.
func (w *World) moveBullets() {
	for i := range w.PlayerBullets {
		b := &w.PlayerBullets[i]
		if b.Alive && b.Y > 0 {
			b.Y--
		} else {
			b.Alive = false
		}
	}

	bottom := w.cfg.Grid.Height - 1
	for i := range w.EnemyBullets {
		b := &w.EnemyBullets[i]
		if b.Alive && b.Y < bottom {
			b.Y++
		} else {
			b.Alive = false
		}
	}
}

// sweepFormation moves the formation as a rigid block. The sweep is gated
// to every Nth simulation tick so the formation stays visibly slower than
// bullets; that pacing is part of the game feel, not an optimization.
func (w *World) sweepFormation() {
	w.sweepTicker++
	if w.sweepTicker < w.cfg.Pacing.SweepEvery {
		return
	}
	w.sweepTicker = 0

	maxX := w.cfg.Grid.Width - 1
	hitEdge := false
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive {
			continue
		}
		e.X = core.Clamp(e.X+w.Direction, 0, maxX)
		if e.X == 0 || e.X == maxX {
			hitEdge = true
		}
	}
	if !hitEdge {
		return
	}

	// Edge contact: flip direction for the next sweep and drop the whole
	// formation one row on this one. An enemy entering the near-bottom
	// zone loses the game immediately, independent of any collision.
	w.Direction = -w.Direction
	lossRow := w.cfg.Grid.Height - w.cfg.Rules.BottomMargin
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive {
			continue
		}
		e.Y++
		if e.Y >= lossRow {
			w.GameOver = true
		}
	}
}

// enemyFire rolls one independent Bernoulli trial per live enemy per tick,
// never a single formation-wide roll.
func (w *World) enemyFire() {
	p := w.cfg.Combat.FireChance
	for _, e := range w.Enemies {
		if e.Alive && w.rng.Float64() < p {
			w.EnemyBullets = append(w.EnemyBullets, Entity{
				X:     e.X,
				Y:     e.Y + 1,
				Alive: true,
			})
		}
	}
}
