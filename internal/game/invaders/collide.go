package invaders

// Resolve runs the collision and cleanup stage for one simulation tick,
// immediately after Advance. All hits are exact cell-position matches.
func (w *World) Resolve() {
	w.playerBulletsVsEnemies()
	w.enemyBulletsVsPlayer()
	w.Prune()
}

// playerBulletsVsEnemies awards each live bullet at most one kill: the
// first live enemy in slice order at the same cell. Slice order is the
// stable tie-break when two enemies overlap.
func (w *World) playerBulletsVsEnemies() {
	for i := range w.PlayerBullets {
		b := &w.PlayerBullets[i]
		if !b.Alive {
			continue
		}
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if e.Alive && b.X == e.X && b.Y == e.Y {
				b.Alive = false
				e.Alive = false
				w.Score += w.cfg.Combat.KillPoints
				break
			}
		}
	}
}

// enemyBulletsVsPlayer stops at the first hit; one death ends the game and
// the remaining bullets this tick change nothing.
func (w *World) enemyBulletsVsPlayer() {
	for i := range w.EnemyBullets {
		b := &w.EnemyBullets[i]
		if !b.Alive {
			continue
		}
		if b.X == w.Player.X && b.Y == w.Player.Y {
			b.Alive = false
			w.Player.Alive = false
			w.GameOver = true
			break
		}
	}
}
