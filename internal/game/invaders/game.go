package invaders

import (
	"fmt"
	"math/rand"

	"github.com/rvbug/space-shooters/internal/config"
	"github.com/rvbug/space-shooters/internal/core"
	"github.com/rvbug/space-shooters/internal/registry"
)

// Glyphs used for rendering.
const (
	PlayerChar = '^'
	EnemyChar  = 'W'
	BulletChar = '|'
)

// hudHeight is the number of screen rows above the playfield.
const hudHeight = 2

// Package-level knobs set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game drives one World through the outer-loop frames: it applies input
// immediately on every frame and advances the simulation at the coarser
// fixed tick, in the order Motion & Spawn then Collision & Cleanup.
type Game struct {
	variant string
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	world   *World
	rng     *rand.Rand

	tick        uint64 // outer-loop frames since reset
	simTick     uint64 // simulation ticks since reset
	simEvery    int    // frames per simulation tick
	frameTicker int

	won      bool
	paused   bool
	tooSmall bool

	// Playfield position on screen.
	offsetX int
	offsetY int
}

// New creates the classic variant (60x25, 5x10 formation, colored).
func New() *Game {
	return &Game{variant: "invaders"}
}

// NewCompact creates the compact variant (50x20, 4x8 formation, monochrome).
func NewCompact() *Game {
	return &Game{variant: "invaders_compact"}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_compact", func() registry.Game {
		return NewCompact()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == "invaders_compact" {
		return "Space Invaders (Compact)"
	}
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultConfig(g.variant)
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(cfg, g.rng)

	g.tick = 0
	g.simTick = 0
	g.frameTicker = 0
	g.won = false
	g.paused = false

	// The simulation advances every simEvery frames: at the default
	// 30 FPS polling rate and 100ms interval that is every 3rd frame.
	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.simEvery = core.Max(1, tickRate*cfg.Pacing.SimIntervalMS/1000)

	g.layout()
}

// layout positions the playfield on the screen.
func (g *Game) layout() {
	g.tooSmall = g.runtime.ScreenW < g.cfg.Grid.Width ||
		g.runtime.ScreenH < g.cfg.Grid.Height+hudHeight
	g.offsetX = core.Max(0, (g.runtime.ScreenW-g.cfg.Grid.Width)/2)
	g.offsetY = hudHeight
}

// Step advances the game by one outer-loop frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.State().Terminal() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.State().Terminal() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Input applies immediately on the frame it arrives, so it lands
	// before any simulation tick this frame triggers.
	if in.Has(core.ActionLeft) {
		g.world.MovePlayer(-1)
	}
	if in.Has(core.ActionRight) {
		g.world.MovePlayer(1)
	}
	if in.Has(core.ActionFire) {
		g.world.Fire()
	}

	g.frameTicker++
	if g.frameTicker >= g.simEvery {
		g.frameTicker = 0
		g.simTick++
		g.world.Advance()
		g.world.Resolve()
		g.settleTerminal()
	}

	return core.StepResult{State: g.State()}
}

// settleTerminal applies the win/loss tie-break after a simulation tick.
// A loss set during the sweep survives a formation that empties on the
// same tick when LossPriority is set; otherwise clearing the formation
// wins.
func (g *Game) settleTerminal() {
	if !g.world.Cleared() {
		return
	}
	if g.world.GameOver && g.cfg.Rules.LossPriority {
		return
	}
	g.won = true
}

// State returns the current game state. Won and GameOver are reported
// mutually exclusively; when both conditions occurred on the same tick
// the configured tie-break picked one.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.world.GameOver && !g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Render draws the HUD, the playfield, and any overlay into the screen
// buffer. The playfield is painted from the snapshot, never from the
// world directly.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need at least %dx%d", g.cfg.Grid.Width, g.cfg.Grid.Height+hudHeight))
		return
	}

	snap := g.Snapshot()
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			ch, color, ok := g.cell(snap.At(x, y))
			if ok {
				dst.SetCell(g.offsetX+x, g.offsetY+y, ch, color)
			}
		}
	}

	state := g.State()
	switch {
	case state.Won:
		g.renderOverlay(dst, "You won!", fmt.Sprintf("Final Score: %d - press r to restart", state.Score))
	case state.GameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d - press r to restart", state.Score))
	case state.Paused:
		g.renderOverlay(dst, "Paused", "Press p to continue")
	}
}

// cell maps a snapshot tag to its glyph and color. Monochrome variants
// drop the colors but keep the glyphs.
func (g *Game) cell(tag CellTag) (rune, core.Color, bool) {
	var ch rune
	var color core.Color

	switch tag {
	case TagPlayer:
		ch, color = PlayerChar, core.ColorGreen
	case TagEnemy:
		ch, color = EnemyChar, core.ColorRed
	case TagBullet:
		ch, color = BulletChar, core.ColorBrightWhite
	default:
		return 0, core.ColorDefault, false
	}

	if !g.cfg.Colored {
		color = core.ColorDefault
	}
	return ch, color, true
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s - Score: %d", g.Title(), g.world.Score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
