package game

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the interaction state the resolver is in for the current
// room.
type Phase string

const (
	PhaseExploring Phase = "exploring"
	PhaseCombat    Phase = "combat"
	PhaseChoice    Phase = "choice"
	PhaseMessage   Phase = "message"
)

// Outcome is a terminal result. Wins and losses are reported as values,
// never as errors. A session that was quit ends with no outcome.
type Outcome struct {
	Win    bool   `json:"win"`
	Reason string `json:"reason"`
}

// Terminal outcome reasons.
const (
	ReasonVictory    = "You used the Golden key and escaped. You are VICTORIOUS!"
	ReasonBossAlive  = "The final door is locked tight. The boss must be defeated!"
	ReasonNoKey      = "The final door is locked. You needed the Golden Key."
	ReasonOutOfMoves = "You have run out of moves."
	ReasonFled       = "You fled in terror!"
	ReasonDied       = "You have died in combat."
)

// Session is one complete playthrough: the player, the dungeon
// traversal state, the interaction phase, and the bounded action log.
// It round-trips through JSON unchanged.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Player    Player    `json:"player"`
	Dungeon   Dungeon   `json:"dungeon"`
	Phase     Phase     `json:"phase"`
	Message   string    `json:"message,omitempty"`
	Recent    ActionLog `json:"recent_actions"`
	Ended     bool      `json:"ended,omitempty"`
	Outcome   *Outcome  `json:"outcome,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession starts a playthrough in the first room of the default
// dungeon.
func NewSession(playerName string) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.New(),
		Player:    NewPlayer(playerName),
		Dungeon:   NewDungeon(),
		Phase:     PhaseExploring,
		CreatedAt: now,
		UpdatedAt: now,
	}
	var res Result
	s.record(&res, "Your adventure begins...")
	s.enterRoom(&res)
	return s
}

func (s *Session) win(reason string) {
	s.Ended = true
	s.Outcome = &Outcome{Win: true, Reason: reason}
}

func (s *Session) lose(reason string) {
	s.Ended = true
	s.Outcome = &Outcome{Win: false, Reason: reason}
}

// record adds a line to the recent-actions log and, when the log keeps
// it, to the action's result events. Suppressed lines appear in
// neither.
func (s *Session) record(res *Result, line string) {
	if s.Recent.Add(line) {
		res.Events = append(res.Events, line)
	}
}
