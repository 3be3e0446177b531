package game

import (
	"fmt"
	"time"

	"github.com/oubliette-games/dungeon-escape/pkg/dungeon"
)

// BossSwordDamage replaces the boss's configured damage while the
// player holds the Sword.
const BossSwordDamage = 50

// Result reports what a single action did: whether the resolver
// accepted it for the current phase, and the log lines it produced in
// order.
type Result struct {
	Applied bool     `json:"applied"`
	Events  []string `json:"events,omitempty"`
}

// Apply runs one action through the resolver. Actions that are not
// valid for the current phase, or that arrive after the session has
// ended, are silent no-ops. Effects of an action are fully applied
// before Apply returns; callers serialize actions per session.
func (s *Session) Apply(action Action) Result {
	var res Result
	if s.Ended {
		return res
	}
	switch s.Phase {
	case PhaseExploring:
		s.applyExploring(action, &res)
	case PhaseCombat:
		s.applyCombat(action, &res)
	case PhaseChoice:
		s.applyChoice(action, &res)
	case PhaseMessage:
		s.applyMessage(action, &res)
	}
	if res.Applied {
		s.UpdatedAt = time.Now().UTC()
	}
	return res
}

func (s *Session) applyExploring(action Action, res *Result) {
	switch action {
	case ActionForward, ActionBack:
		s.traverse(action, res)
	case ActionCollect:
		room := s.Dungeon.CurrentRoom()
		if room.Name != dungeon.CursedBladesRoom || room.Entity == nil || room.Entity.Kind != dungeon.EntityWeapon {
			return
		}
		res.Applied = true
		s.Player.Inventory.Add(room.Entity.Name)
		s.record(res, "You collected the "+room.Entity.Name+".")
		room.Description = "You grasp the sword. A surge of ultimate power floods your veins."
		room.ConsumeEntity()
	case ActionQuit:
		// The cursed blades bar the way out until the sword is taken.
		room := s.Dungeon.CurrentRoom()
		if room.Name == dungeon.CursedBladesRoom && room.Entity != nil {
			return
		}
		res.Applied = true
		s.Ended = true
	}
}

// traverse handles forward and back. The out-of-moves loss fires on the
// attempt after the budget is exhausted: once before moving when moves
// is already spent, and once after the decrement should it land below
// zero. A traversal with nowhere to go costs nothing and does nothing.
func (s *Session) traverse(action Action, res *Result) {
	if s.Player.Moves <= 0 {
		res.Applied = true
		s.lose(ReasonOutOfMoves)
		return
	}
	var moved bool
	if action == ActionForward {
		moved = s.Dungeon.MoveForward(&s.Player)
	} else {
		moved = s.Dungeon.MoveBack(&s.Player)
	}
	if !moved {
		return
	}
	res.Applied = true
	if s.Player.Moves < 0 {
		s.lose(ReasonOutOfMoves)
		return
	}
	s.enterRoom(res)
}

// enterRoom evaluates the room under the cursor immediately after it
// is entered: logs the entry, resolves the final door, auto-resolves
// passive items, and selects the next phase.
func (s *Session) enterRoom(res *Result) {
	room := s.Dungeon.CurrentRoom()
	s.record(res, "Entered The "+room.Name)

	if room.FinalDoor {
		s.resolveFinalDoor()
		return
	}
	if e := room.Entity; e != nil {
		if e.Kind == dungeon.EntityWeapon && room.Name == dungeon.CursedBladesRoom {
			s.Phase = PhaseExploring
			return
		}
		if e.IsEnemy() {
			s.Phase = PhaseCombat
			return
		}
		s.pickUp(room, res)
		return
	}
	if room.ChoiceRoom {
		s.Phase = PhaseChoice
		return
	}
	s.Phase = PhaseExploring
}

// pickUp resolves a passive item on room entry. Potions heal to full
// instead of joining the inventory; anything else is collected by
// name.
func (s *Session) pickUp(room *dungeon.Room, res *Result) {
	var line string
	if room.Entity.Kind == dungeon.EntityPotion {
		s.Player.Heal(MaxHealth)
		line = "You drank the potion and feel fully restored!"
	} else {
		s.Player.Inventory.Add(room.Entity.Name)
		line = "You picked up the " + room.Entity.Name + "."
	}
	s.record(res, line)
	room.Description = line
	room.ConsumeEntity()
	s.Phase = PhaseExploring
}

func (s *Session) resolveFinalDoor() {
	switch {
	case s.Player.Inventory.Has(dungeon.ItemGoldenKey) && s.Player.BossDefeated:
		s.win(ReasonVictory)
	case s.Player.Inventory.Has(dungeon.ItemGoldenKey):
		s.lose(ReasonBossAlive)
	default:
		s.lose(ReasonNoKey)
	}
}

func (s *Session) applyCombat(action Action, res *Result) {
	switch action {
	case ActionFight:
		s.fight(res)
	case ActionFlee:
		res.Applied = true
		s.record(res, "Fled in terror!")
		s.lose(ReasonFled)
	}
}

// fight resolves the encounter in a single round: either the enemy
// falls or the player does. Combat never consumes moves.
func (s *Session) fight(res *Result) {
	room := s.Dungeon.CurrentRoom()
	e := room.Entity
	if e == nil || !e.IsEnemy() {
		return
	}
	res.Applied = true
	s.record(res, "Fought the "+e.Name)

	damage := e.Damage
	var summary string
	if e.Kind == dungeon.EntityBoss {
		if s.Player.Inventory.Has(dungeon.ItemSword) {
			summary = "Your Sword glows, weakening the boss!\n"
			damage = BossSwordDamage
		} else {
			summary = "You are unarmed against the mighty boss!\n"
		}
	}
	s.Player.TakeDamage(damage)
	summary += fmt.Sprintf("You took %d damage!", damage)

	if s.Player.IsDead() {
		s.record(res, "You were slain by the "+e.Name)
		s.lose(ReasonDied)
		return
	}

	s.record(res, "Defeated the "+e.Name)
	if e.Kind == dungeon.EntityBoss {
		s.Player.BossDefeated = true
		s.record(res, "The final boss is defeated!")
	}
	room.Description = fmt.Sprintf("You defeated the %s. The way is clear. (You took %d damage)", e.Name, damage)
	room.ConsumeEntity()
	s.Message = summary
	s.Phase = PhaseMessage
}

func (s *Session) applyChoice(action Action, res *Result) {
	room := s.Dungeon.CurrentRoom()
	var line string
	switch action {
	case ActionChooseKey:
		s.Player.Inventory.Add(dungeon.ItemGoldenKey)
		line = "You took the Golden Key."
	case ActionChoosePotion:
		s.Player.Heal(MaxHealth)
		line = "You drank the Health Potion."
	default:
		return
	}
	res.Applied = true
	s.record(res, line)
	room.Description = line
	room.ChoiceRoom = false
	s.Phase = PhaseExploring
}

func (s *Session) applyMessage(action Action, res *Result) {
	if action != ActionAcknowledge {
		return
	}
	res.Applied = true
	s.Message = ""
	s.Phase = PhaseExploring
}
