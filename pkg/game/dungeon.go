package game

import "github.com/oubliette-games/dungeon-escape/pkg/dungeon"

// Dungeon is the runtime traversal state over a session's copy of the
// room chain: an owning slice, the current-room index, and a back-stack
// of visited indices. The stack permits only retracing the exact
// visited path, never arbitrary jumps.
type Dungeon struct {
	Rooms   []dungeon.Room `json:"rooms"`
	Current int            `json:"current"`
	History []int          `json:"history,omitempty"`
}

// NewDungeon builds runtime state over a fresh copy of the default
// layout, starting in the first room.
func NewDungeon() Dungeon {
	return Dungeon{Rooms: dungeon.DefaultRooms()}
}

// CurrentRoom returns the room under the cursor. The pointer aliases
// the dungeon's own storage so encounter resolution mutates in place.
func (d *Dungeon) CurrentRoom() *dungeon.Room {
	return &d.Rooms[d.Current]
}

// CanMoveForward reports whether the current room has a successor.
func (d *Dungeon) CanMoveForward() bool {
	return d.Current+1 < len(d.Rooms)
}

// CanMoveBack reports whether any visited room remains on the stack.
func (d *Dungeon) CanMoveBack() bool {
	return len(d.History) > 0
}

// MoveForward advances to the successor room, spending one of the
// player's moves and recording the departed room on the back-stack.
// No-op when there is no successor.
func (d *Dungeon) MoveForward(p *Player) bool {
	if !d.CanMoveForward() {
		return false
	}
	p.UseMove()
	d.History = append(d.History, d.Current)
	d.Current++
	return true
}

// MoveBack returns to the most recently departed room, spending one of
// the player's moves. No-op when the stack is empty.
func (d *Dungeon) MoveBack(p *Player) bool {
	if !d.CanMoveBack() {
		return false
	}
	p.UseMove()
	d.Current = d.History[len(d.History)-1]
	d.History = d.History[:len(d.History)-1]
	return true
}
