package dungeon

// EntityKind identifies which variant of occupant an Entity is. The set
// is closed: behavior dispatches on the kind, never on type assertions.
type EntityKind string

const (
	EntityWeapon EntityKind = "weapon"
	EntityPotion EntityKind = "potion"
	EntityKey    EntityKind = "key"
	EntityMinion EntityKind = "minion"
	EntityBoss   EntityKind = "boss"
)

// Entity is a room's single interactive occupant. Kind is fixed at
// creation. Damage is meaningful only for enemy kinds.
type Entity struct {
	Kind   EntityKind `json:"kind"`
	Name   string     `json:"name"`
	Damage int        `json:"damage,omitempty"`
}

func NewWeapon(name string) *Entity {
	return &Entity{Kind: EntityWeapon, Name: name}
}

func NewPotion(name string) *Entity {
	return &Entity{Kind: EntityPotion, Name: name}
}

func NewKey(name string) *Entity {
	return &Entity{Kind: EntityKey, Name: name}
}

func NewMinion(name string, damage int) *Entity {
	return &Entity{Kind: EntityMinion, Name: name, Damage: damage}
}

func NewBoss(name string, damage int) *Entity {
	return &Entity{Kind: EntityBoss, Name: name, Damage: damage}
}

// IsEnemy reports whether the entity must be fought to clear its room.
func (e *Entity) IsEnemy() bool {
	return e.Kind == EntityMinion || e.Kind == EntityBoss
}

// Description returns the flavor line shown while the entity occupies
// its room.
func (e *Entity) Description() string {
	switch e.Kind {
	case EntityWeapon:
		return "A powerful " + e.Name + " rests here."
	case EntityPotion:
		return "A bubbling " + e.Name + " is on a pedestal."
	case EntityKey:
		return "A shiny " + e.Name + " catches your eye."
	case EntityMinion, EntityBoss:
		return "DANGER! A " + e.Name + " blocks your path."
	default:
		return "You see a " + e.Name + "."
	}
}
