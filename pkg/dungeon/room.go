package dungeon

// Room is one node in the dungeon chain. Rooms are owned by value in a
// slice and the forward link is positional, so room N's successor is
// room N+1. Description is rewritten in place when an encounter
// resolves, and Entity is set to nil once consumed; at most one
// encounter ever happens in a room.
type Room struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Entity      *Entity `json:"entity,omitempty"`
	FinalDoor   bool    `json:"final_door,omitempty"`
	ChoiceRoom  bool    `json:"choice_room,omitempty"`
	Background  string  `json:"background,omitempty"`
}

// HasEntity reports whether the room's occupant is still unresolved.
func (r *Room) HasEntity() bool {
	return r.Entity != nil
}

// ConsumeEntity removes the room's occupant. Called exactly once, when
// the encounter resolves.
func (r *Room) ConsumeEntity() {
	r.Entity = nil
}
