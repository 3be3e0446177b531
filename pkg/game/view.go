package game

import (
	"github.com/google/uuid"

	"github.com/oubliette-games/dungeon-escape/pkg/dungeon"
)

// View is the read-only snapshot handed to presentation layers. It
// carries everything the stats, room, log, and action panels display.
type View struct {
	ID              uuid.UUID `json:"id"`
	PlayerName      string    `json:"player_name"`
	Health          int       `json:"health"`
	MaxHealth       int       `json:"max_health"`
	Moves           int       `json:"moves"`
	Inventory       []string  `json:"inventory"` // sorted for display
	BossDefeated    bool      `json:"boss_defeated,omitempty"`
	RoomName        string    `json:"room_name"`
	RoomDescription string    `json:"room_description"`
	EntityLine      string    `json:"entity_line,omitempty"`
	Background      string    `json:"background,omitempty"`
	Phase           Phase     `json:"phase"`
	Actions         []Action  `json:"actions,omitempty"`
	Message         string    `json:"message,omitempty"`
	RecentActions   []string  `json:"recent_actions"`
	Ended           bool      `json:"ended,omitempty"`
	Outcome         *Outcome  `json:"outcome,omitempty"`
}

// View snapshots the session for rendering.
func (s *Session) View() View {
	room := s.Dungeon.CurrentRoom()
	v := View{
		ID:              s.ID,
		PlayerName:      s.Player.Name,
		Health:          s.Player.Health,
		MaxHealth:       MaxHealth,
		Moves:           s.Player.Moves,
		Inventory:       s.Player.Inventory.Sorted(),
		BossDefeated:    s.Player.BossDefeated,
		RoomName:        room.Name,
		RoomDescription: room.Description,
		Background:      room.Background,
		Phase:           s.Phase,
		Actions:         s.AvailableActions(),
		Message:         s.Message,
		RecentActions:   s.Recent.Entries(),
		Ended:           s.Ended,
		Outcome:         s.Outcome,
	}
	if room.Entity != nil {
		v.EntityLine = room.Entity.Description()
	}
	return v
}

// AvailableActions lists the actions the resolver would accept right
// now, in display order. Forward and back appear only when traversal
// is possible, and quit is withheld while the cursed blades hold the
// player in their room.
func (s *Session) AvailableActions() []Action {
	if s.Ended {
		return nil
	}
	switch s.Phase {
	case PhaseCombat:
		return []Action{ActionFight, ActionFlee}
	case PhaseChoice:
		return []Action{ActionChooseKey, ActionChoosePotion}
	case PhaseMessage:
		return []Action{ActionAcknowledge}
	}

	var actions []Action
	room := s.Dungeon.CurrentRoom()
	inBladeRoom := room.Name == dungeon.CursedBladesRoom && room.Entity != nil
	if inBladeRoom && room.Entity.Kind == dungeon.EntityWeapon {
		actions = append(actions, ActionCollect)
	}
	if s.Dungeon.CanMoveForward() {
		actions = append(actions, ActionForward)
	}
	if s.Dungeon.CanMoveBack() {
		actions = append(actions, ActionBack)
	}
	if !inBladeRoom {
		actions = append(actions, ActionQuit)
	}
	return actions
}
