package game

// MaxHealth is the player's health ceiling. Healing clamps to it.
const MaxHealth = 100

// StartingMoves is the traversal budget for a fresh session.
const StartingMoves = 10

// MaxNameLen is the longest player name accepted at session creation,
// in runes.
const MaxNameLen = 15

// Player is the mutable resource bag for one session: health, the
// remaining traversal budget, and everything collected along the way.
type Player struct {
	Name         string    `json:"name"`
	Health       int       `json:"health"`
	Moves        int       `json:"moves"`
	Inventory    Inventory `json:"inventory"`
	BossDefeated bool      `json:"boss_defeated,omitempty"`
}

// NewPlayer creates a player with full health and the starting move
// budget.
func NewPlayer(name string) Player {
	return Player{
		Name:      name,
		Health:    MaxHealth,
		Moves:     StartingMoves,
		Inventory: Inventory{},
	}
}

// TakeDamage reduces health by amount. Health cannot go below 0.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores health by amount. Health cannot exceed MaxHealth.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > MaxHealth {
		p.Health = MaxHealth
	}
}

// UseMove spends one traversal move. Moves are allowed to go negative:
// a negative count is the out-of-moves signal the resolver checks after
// the decrement, not at the moment the budget hits zero.
func (p *Player) UseMove() {
	p.Moves--
}

// IsDead reports whether combat has reduced the player to 0 health.
func (p *Player) IsDead() bool {
	return p.Health <= 0
}
