package invaders

import (
	"testing"

	"github.com/rvbug/space-shooters/internal/config"
)

func TestSnapshotDimensions(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := newTestGame(t, cfg, perFrameRuntime(1))

	snap := g.Snapshot()
	if snap.Width != cfg.Grid.Width || snap.Height != cfg.Grid.Height {
		t.Fatalf("snapshot %dx%d, expected %dx%d", snap.Width, snap.Height, cfg.Grid.Width, cfg.Grid.Height)
	}
	if len(snap.Cells) != cfg.Grid.Width*cfg.Grid.Height {
		t.Fatalf("snapshot has %d cells, expected %d", len(snap.Cells), cfg.Grid.Width*cfg.Grid.Height)
	}
}

func TestSnapshotTagsEntities(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := newTestGame(t, cfg, perFrameRuntime(1))

	snap := g.Snapshot()
	if snap.At(g.world.Player.X, g.world.Player.Y) != TagPlayer {
		t.Error("player cell not tagged")
	}
	for _, e := range g.world.Enemies {
		if snap.At(e.X, e.Y) != TagEnemy {
			t.Fatalf("enemy at (%d, %d) not tagged", e.X, e.Y)
		}
	}
	if snap.Enemies != len(g.world.Enemies) {
		t.Errorf("live enemy count %d, expected %d", snap.Enemies, len(g.world.Enemies))
	}
}

// The grid carries occupancy only; the score travels beside it as a scalar.
func TestSnapshotScoreIsScalar(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := newTestGame(t, cfg, perFrameRuntime(1))
	g.world.Score = 70

	snap := g.Snapshot()
	if snap.Score != 70 {
		t.Errorf("snapshot score = %d, expected 70", snap.Score)
	}

	tags := make(map[CellTag]int)
	for _, c := range snap.Cells {
		tags[c]++
	}
	if tags[TagPlayer] != 1 {
		t.Errorf("expected exactly 1 player cell, got %d", tags[TagPlayer])
	}
	if tags[TagEnemy] != len(g.world.Enemies) {
		t.Errorf("expected %d enemy cells, got %d", len(g.world.Enemies), tags[TagEnemy])
	}
}

// Later writes win at a shared cell: enemies cover the player, bullets
// cover both.
func TestSnapshotWriteOrder(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := newTestGame(t, cfg, perFrameRuntime(1))

	g.world.Enemies = []Entity{{X: g.world.Player.X, Y: g.world.Player.Y, Alive: true}}
	enemySnap := g.Snapshot()
	if tag := enemySnap.At(g.world.Player.X, g.world.Player.Y); tag != TagEnemy {
		t.Errorf("enemy sharing the player cell shows tag %d, expected enemy", tag)
	}

	g.world.PlayerBullets = []Entity{{X: g.world.Player.X, Y: g.world.Player.Y, Alive: true}}
	bulletSnap := g.Snapshot()
	if tag := bulletSnap.At(g.world.Player.X, g.world.Player.Y); tag != TagBullet {
		t.Errorf("bullet sharing the cell shows tag %d, expected bullet", tag)
	}
}

func TestSnapshotSkipsDeadEntities(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := newTestGame(t, cfg, perFrameRuntime(1))

	e := g.world.Enemies[0]
	g.world.Enemies[0].Alive = false

	snap := g.Snapshot()
	if snap.At(e.X, e.Y) != TagEmpty {
		t.Error("dead enemy should not be tagged")
	}
	if snap.Enemies != len(g.world.Enemies)-1 {
		t.Errorf("live count %d, expected %d", snap.Enemies, len(g.world.Enemies)-1)
	}
}

func TestSnapshotAtOutOfRange(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := newTestGame(t, cfg, perFrameRuntime(1))

	snap := g.Snapshot()
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {snap.Width, 0}, {0, snap.Height}} {
		if snap.At(pos[0], pos[1]) != TagEmpty {
			t.Errorf("At(%d, %d) should be empty", pos[0], pos[1])
		}
	}
}

func TestSnapshotTerminalFlagsExclusive(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	cfg.Rules.LossPriority = false
	g := newTestGame(t, cfg, perFrameRuntime(1))

	g.world.GameOver = true
	g.won = true

	snap := g.Snapshot()
	if !snap.Won || snap.GameOver {
		t.Errorf("Won=%v GameOver=%v, expected exclusive win", snap.Won, snap.GameOver)
	}
}

func TestSnapshotHashDistinguishesStates(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := newTestGame(t, cfg, perFrameRuntime(1))

	base := g.Snapshot()
	moved := g.Snapshot()
	moved.Cells[0] = TagBullet

	if base.Hash() == moved.Hash() {
		t.Error("hash should change when a cell changes")
	}

	same := g.Snapshot()
	if base.Hash() != same.Hash() {
		t.Error("hash should be stable for identical state")
	}
}
