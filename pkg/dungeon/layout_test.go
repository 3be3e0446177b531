package dungeon

import "testing"

func TestDefaultRooms(t *testing.T) {
	rooms := DefaultRooms()

	if len(rooms) != 9 {
		t.Fatalf("expected 9 rooms, got %d", len(rooms))
	}

	wantNames := []string{
		"Dungeon Entrance",
		"Sanctum of Fire and Frost",
		"Dragon's Lair",
		"Zombie's Crypt",
		CursedBladesRoom,
		"Room of Choice",
		"Giant Monster's Den",
		"Final Boss Chamber",
		"The Final Door",
	}
	for i, want := range wantNames {
		if rooms[i].Name != want {
			t.Errorf("room %d: expected name %q, got %q", i+1, want, rooms[i].Name)
		}
	}

	t.Run("entity assignments", func(t *testing.T) {
		type enemy struct {
			kind   EntityKind
			name   string
			damage int
		}
		wantEnemies := map[int]enemy{
			1: {EntityMinion, "Wizard", 10},
			2: {EntityMinion, "Dragon", 15},
			3: {EntityMinion, "Zombie", 5},
			6: {EntityMinion, "Giant Monster", 10},
			7: {EntityBoss, "Final Boss", 75},
		}
		for i, want := range wantEnemies {
			e := rooms[i].Entity
			if e == nil {
				t.Errorf("room %d: expected entity %q, got none", i+1, want.name)
				continue
			}
			if e.Kind != want.kind || e.Name != want.name || e.Damage != want.damage {
				t.Errorf("room %d: expected %s %q damage %d, got %s %q damage %d",
					i+1, want.kind, want.name, want.damage, e.Kind, e.Name, e.Damage)
			}
		}

		if e := rooms[4].Entity; e == nil || e.Kind != EntityWeapon || e.Name != ItemSword {
			t.Errorf("expected %q in the cursed blades room, got %+v", ItemSword, e)
		}
		for _, i := range []int{0, 5, 8} {
			if rooms[i].Entity != nil {
				t.Errorf("room %d: expected no entity, got %q", i+1, rooms[i].Entity.Name)
			}
		}
	})

	t.Run("flags", func(t *testing.T) {
		if !rooms[5].ChoiceRoom {
			t.Error("expected room 6 to be the choice room")
		}
		if !rooms[8].FinalDoor {
			t.Error("expected room 9 to be the final door")
		}
		for i, r := range rooms[:8] {
			if r.FinalDoor {
				t.Errorf("room %d: unexpected final door flag", i+1)
			}
		}
	})

	t.Run("every call returns an independent copy", func(t *testing.T) {
		a := DefaultRooms()
		b := DefaultRooms()
		a[1].Entity = nil
		a[0].Description = "changed"
		if b[1].Entity == nil {
			t.Error("consuming an entity in one copy leaked into another")
		}
		if b[0].Description == "changed" {
			t.Error("description change leaked into another copy")
		}
	})
}

func TestValidateDefaultLayout(t *testing.T) {
	if errs := Validate(DefaultRooms()); len(errs) != 0 {
		t.Errorf("expected default layout to validate, got %v", errs)
	}
}

func TestValidateCatchesViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Room) []Room
		want   string
	}{
		{
			name:   "empty layout",
			mutate: func([]Room) []Room { return nil },
			want:   "layout has no rooms",
		},
		{
			name: "missing final door",
			mutate: func(rooms []Room) []Room {
				rooms[8].FinalDoor = false
				return rooms
			},
			want: "layout has no final door",
		},
		{
			name: "final door not last",
			mutate: func(rooms []Room) []Room {
				rooms[8].FinalDoor = false
				rooms[0].FinalDoor = true
				rooms[0].Entity = nil
				return rooms
			},
			want: "final door must be the last room, found at position 1",
		},
		{
			name: "enemy without damage",
			mutate: func(rooms []Room) []Room {
				rooms[1].Entity.Damage = 0
				return rooms
			},
			want: `enemy "Wizard" in room 2 must deal positive damage`,
		},
		{
			name: "cursed blades room without weapon",
			mutate: func(rooms []Room) []Room {
				rooms[4].Entity = NewKey("Rusty Key")
				return rooms
			},
			want: `room 5 (Chamber of the Cursed Blades) must hold a weapon`,
		},
		{
			name: "missing boss",
			mutate: func(rooms []Room) []Room {
				rooms[7].Entity = nil
				return rooms
			},
			want: "layout has no boss",
		},
		{
			name: "entity on the final door",
			mutate: func(rooms []Room) []Room {
				rooms[8].Entity = NewKey("Golden Key")
				return rooms
			},
			want: "final door room 9 (The Final Door) must not hold an entity",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(tc.mutate(DefaultRooms()))
			for _, e := range errs {
				if e == tc.want {
					return
				}
			}
			t.Errorf("expected violation %q, got %v", tc.want, errs)
		})
	}
}
