// Package invaders implements the Space Invaders simulation: a player ship
// defending against a descending enemy formation exchanging projectile fire.
// The package contains pure game logic with no platform dependencies; the
// TUI layer drives it through the registry.Game interface.
package invaders

// Entity is the uniform unit of simulation state for the player, each
// enemy, and each bullet: a grid position plus a liveness flag. A dead
// entity is never rendered, never collides, and is physically removed from
// its collection at the end of the tick it died in.
type Entity struct {
	X, Y  int
	Alive bool
}
