package dungeon

import "fmt"

// Validate checks the structural invariants of a room chain and returns
// one message per violation. An empty result means the layout is sound.
// The winnability-critical checks are the weapon in the cursed-blades
// room (the boss is unbeatable on key-path health without it) and the
// final door sitting last in the chain.
func Validate(rooms []Room) []string {
	var errs []string
	if len(rooms) == 0 {
		return []string{"layout has no rooms"}
	}

	finalDoors := 0
	choiceRooms := 0
	doorIndex := -1
	bossIndex := -1
	cursedBlades := false

	for i, r := range rooms {
		pos := i + 1
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("room %d has no name", pos))
		}
		if r.Description == "" {
			errs = append(errs, fmt.Sprintf("room %d (%s) has no description", pos, r.Name))
		}
		if r.Background == "" {
			errs = append(errs, fmt.Sprintf("room %d (%s) has no background", pos, r.Name))
		}
		if r.FinalDoor {
			finalDoors++
			doorIndex = i
			if r.Entity != nil {
				errs = append(errs, fmt.Sprintf("final door room %d (%s) must not hold an entity", pos, r.Name))
			}
			if r.ChoiceRoom {
				errs = append(errs, fmt.Sprintf("room %d (%s) cannot be both final door and choice room", pos, r.Name))
			}
		}
		if r.ChoiceRoom {
			choiceRooms++
			if r.Entity != nil {
				errs = append(errs, fmt.Sprintf("choice room %d (%s) must not hold an entity", pos, r.Name))
			}
		}
		if e := r.Entity; e != nil {
			if e.Name == "" {
				errs = append(errs, fmt.Sprintf("entity in room %d (%s) has no name", pos, r.Name))
			}
			switch e.Kind {
			case EntityWeapon, EntityPotion, EntityKey:
				if e.Damage != 0 {
					errs = append(errs, fmt.Sprintf("item %q in room %d must not deal damage", e.Name, pos))
				}
			case EntityMinion, EntityBoss:
				if e.Damage <= 0 {
					errs = append(errs, fmt.Sprintf("enemy %q in room %d must deal positive damage", e.Name, pos))
				}
				if e.Kind == EntityBoss {
					bossIndex = i
				}
			default:
				errs = append(errs, fmt.Sprintf("entity %q in room %d has unknown kind %q", e.Name, pos, e.Kind))
			}
		}
		if r.Name == CursedBladesRoom {
			cursedBlades = true
			if r.Entity == nil || r.Entity.Kind != EntityWeapon {
				errs = append(errs, fmt.Sprintf("room %d (%s) must hold a weapon", pos, r.Name))
			}
		}
	}

	switch {
	case finalDoors == 0:
		errs = append(errs, "layout has no final door")
	case finalDoors > 1:
		errs = append(errs, fmt.Sprintf("layout has %d final doors, want exactly one", finalDoors))
	case doorIndex != len(rooms)-1:
		errs = append(errs, fmt.Sprintf("final door must be the last room, found at position %d", doorIndex+1))
	}
	if choiceRooms != 1 {
		errs = append(errs, fmt.Sprintf("layout has %d choice rooms, want exactly one", choiceRooms))
	}
	if !cursedBlades {
		errs = append(errs, fmt.Sprintf("layout is missing the %q room", CursedBladesRoom))
	}
	if bossIndex == -1 {
		errs = append(errs, "layout has no boss")
	} else if doorIndex >= 0 && bossIndex > doorIndex {
		errs = append(errs, "boss must come before the final door")
	}
	return errs
}
