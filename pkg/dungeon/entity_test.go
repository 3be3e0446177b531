package dungeon

import "testing"

func TestEntityDescription(t *testing.T) {
	tests := []struct {
		name   string
		entity *Entity
		want   string
	}{
		{
			name:   "weapon",
			entity: NewWeapon("Sword"),
			want:   "A powerful Sword rests here.",
		},
		{
			name:   "potion",
			entity: NewPotion("Health Potion"),
			want:   "A bubbling Health Potion is on a pedestal.",
		},
		{
			name:   "key",
			entity: NewKey("Rusty Key"),
			want:   "A shiny Rusty Key catches your eye.",
		},
		{
			name:   "minion",
			entity: NewMinion("Wizard", 10),
			want:   "DANGER! A Wizard blocks your path.",
		},
		{
			name:   "boss",
			entity: NewBoss("Final Boss", 75),
			want:   "DANGER! A Final Boss blocks your path.",
		},
		{
			name:   "unknown kind falls back to generic line",
			entity: &Entity{Kind: EntityKind("relic"), Name: "Orb"},
			want:   "You see a Orb.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entity.Description(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEntityIsEnemy(t *testing.T) {
	tests := []struct {
		name   string
		entity *Entity
		want   bool
	}{
		{"weapon is not an enemy", NewWeapon("Sword"), false},
		{"potion is not an enemy", NewPotion("Health Potion"), false},
		{"key is not an enemy", NewKey("Golden Key"), false},
		{"minion is an enemy", NewMinion("Zombie", 5), true},
		{"boss is an enemy", NewBoss("Final Boss", 75), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entity.IsEnemy(); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestConstructorsSetDamage(t *testing.T) {
	if m := NewMinion("Dragon", 15); m.Damage != 15 {
		t.Errorf("expected minion damage 15, got %d", m.Damage)
	}
	if b := NewBoss("Final Boss", 75); b.Damage != 75 {
		t.Errorf("expected boss damage 75, got %d", b.Damage)
	}
	if w := NewWeapon("Sword"); w.Damage != 0 {
		t.Errorf("expected weapon damage 0, got %d", w.Damage)
	}
}
