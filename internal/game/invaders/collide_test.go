package invaders

import (
	"testing"

	"github.com/rvbug/space-shooters/internal/config"
)

func TestBulletKillsEnemy(t *testing.T) {
	w := newTestWorld(t, noFire)
	w.Enemies = []Entity{{X: 8, Y: 4, Alive: true}}
	w.PlayerBullets = []Entity{{X: 8, Y: 4, Alive: true}}

	w.Resolve()

	if len(w.Enemies) != 0 {
		t.Errorf("enemy should be removed, got %+v", w.Enemies)
	}
	if len(w.PlayerBullets) != 0 {
		t.Errorf("bullet should be consumed, got %+v", w.PlayerBullets)
	}
	if w.Score != w.cfg.Combat.KillPoints {
		t.Errorf("score = %d, expected %d", w.Score, w.cfg.Combat.KillPoints)
	}
	if w.GameOver {
		t.Error("a kill must not end the game")
	}
	if !w.Cleared() {
		t.Error("removing the last enemy should clear the formation")
	}
}

func TestBulletMissesAdjacentEnemy(t *testing.T) {
	w := newTestWorld(t, noFire)
	w.Enemies = []Entity{{X: 8, Y: 4, Alive: true}}
	w.PlayerBullets = []Entity{{X: 9, Y: 4, Alive: true}}

	w.Resolve()

	if len(w.Enemies) != 1 || len(w.PlayerBullets) != 1 {
		t.Error("a near miss must not consume anything")
	}
	if w.Score != 0 {
		t.Errorf("score = %d after a miss, expected 0", w.Score)
	}
}

func TestEnemyBulletKillsPlayer(t *testing.T) {
	w := newTestWorld(t, noFire)
	w.EnemyBullets = []Entity{{X: w.Player.X, Y: w.Player.Y, Alive: true}}

	w.Resolve()

	if w.Player.Alive {
		t.Error("player should be dead")
	}
	if !w.GameOver {
		t.Error("player death should end the game")
	}
	if len(w.EnemyBullets) != 0 {
		t.Errorf("hitting bullet should be consumed, got %+v", w.EnemyBullets)
	}
}

// One death ends the game; a second bullet on the same cell this tick is
// not consumed.
func TestSecondEnemyBulletUnconsumed(t *testing.T) {
	w := newTestWorld(t, noFire)
	w.EnemyBullets = []Entity{
		{X: w.Player.X, Y: w.Player.Y, Alive: true},
		{X: w.Player.X, Y: w.Player.Y, Alive: true},
	}

	w.Resolve()

	if !w.GameOver {
		t.Fatal("expected game over")
	}
	if len(w.EnemyBullets) != 1 {
		t.Errorf("expected 1 surviving bullet, got %d", len(w.EnemyBullets))
	}
}

// A bullet kills at most one enemy; with two enemies stacked on one cell
// the first in slice order dies and the other stays.
func TestBulletKillsFirstOfStackedEnemies(t *testing.T) {
	w := newTestWorld(t, noFire)
	w.Enemies = []Entity{
		{X: 8, Y: 4, Alive: true},
		{X: 8, Y: 4, Alive: true},
	}
	w.PlayerBullets = []Entity{{X: 8, Y: 4, Alive: true}}

	w.Resolve()

	if len(w.Enemies) != 1 {
		t.Fatalf("expected 1 surviving enemy, got %d", len(w.Enemies))
	}
	if w.Score != w.cfg.Combat.KillPoints {
		t.Errorf("score = %d, expected a single kill's %d", w.Score, w.cfg.Combat.KillPoints)
	}
	if len(w.PlayerBullets) != 0 {
		t.Error("bullet should be consumed by the first kill")
	}
}

func TestTwoBulletsTwoKills(t *testing.T) {
	w := newTestWorld(t, noFire)
	w.Enemies = []Entity{
		{X: 8, Y: 4, Alive: true},
		{X: 12, Y: 4, Alive: true},
	}
	w.PlayerBullets = []Entity{
		{X: 8, Y: 4, Alive: true},
		{X: 12, Y: 4, Alive: true},
	}

	w.Resolve()

	if len(w.Enemies) != 0 {
		t.Errorf("both enemies should be dead, got %+v", w.Enemies)
	}
	if w.Score != 2*w.cfg.Combat.KillPoints {
		t.Errorf("score = %d, expected %d", w.Score, 2*w.cfg.Combat.KillPoints)
	}
}

func TestScoreAccumulatesAcrossTicks(t *testing.T) {
	w := newTestWorld(t, noFire)
	w.Enemies = []Entity{
		{X: 8, Y: 4, Alive: true},
		{X: 12, Y: 4, Alive: true},
	}

	w.PlayerBullets = []Entity{{X: 8, Y: 4, Alive: true}}
	w.Resolve()
	w.PlayerBullets = []Entity{{X: 12, Y: 4, Alive: true}}
	w.Resolve()

	if w.Score != 2*w.cfg.Combat.KillPoints {
		t.Errorf("score = %d, expected %d", w.Score, 2*w.cfg.Combat.KillPoints)
	}
}

// After Resolve no live player bullet shares a cell with a live enemy.
func TestNoOverlapSurvivesResolve(t *testing.T) {
	w := newTestWorld(t, func(cfg *config.InvadersConfig) {
		cfg.Combat.FireChance = 0.3
	})

	for tick := 0; tick < 500 && !w.GameOver; tick++ {
		if tick%2 == 0 {
			w.Fire()
		}
		w.Advance()
		w.Resolve()

		occupied := make(map[[2]int]bool, len(w.Enemies))
		for _, e := range w.Enemies {
			occupied[[2]int{e.X, e.Y}] = true
		}
		for _, b := range w.PlayerBullets {
			if occupied[[2]int{b.X, b.Y}] {
				t.Fatalf("tick %d: player bullet overlaps live enemy at (%d, %d)", tick, b.X, b.Y)
			}
		}
		for _, b := range w.EnemyBullets {
			if w.Player.Alive && b.X == w.Player.X && b.Y == w.Player.Y {
				t.Fatalf("tick %d: enemy bullet overlaps live player", tick)
			}
		}
	}
}
