package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewFreshSession(t *testing.T) {
	s := NewSession("Hero")
	v := s.View()

	assert.Equal(t, s.ID, v.ID)
	assert.Equal(t, "Hero", v.PlayerName)
	assert.Equal(t, MaxHealth, v.Health)
	assert.Equal(t, MaxHealth, v.MaxHealth)
	assert.Equal(t, StartingMoves, v.Moves)
	assert.Empty(t, v.Inventory)
	assert.Equal(t, "Dungeon Entrance", v.RoomName)
	assert.Equal(t, "The heavy stone door slams shut behind you. Your only way is forward.", v.RoomDescription)
	assert.Equal(t, "dungeon.png", v.Background)
	assert.Empty(t, v.EntityLine)
	assert.Equal(t, PhaseExploring, v.Phase)
	assert.Equal(t, []string{"Entered The Dungeon Entrance", "Your adventure begins..."}, v.RecentActions)
	assert.False(t, v.Ended)
	assert.Nil(t, v.Outcome)
}

func TestViewEntityLine(t *testing.T) {
	s := NewSession("Hero")
	require.True(t, s.Apply(ActionForward).Applied)

	v := s.View()
	assert.Equal(t, "DANGER! A Wizard blocks your path.", v.EntityLine)
	assert.Equal(t, PhaseCombat, v.Phase)
}

func TestViewInventoryIsSorted(t *testing.T) {
	s := NewSession("Hero")
	s.Player.Inventory.Add("Sword")
	s.Player.Inventory.Add("Golden Key")

	assert.Equal(t, []string{"Golden Key", "Sword"}, s.View().Inventory)
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Session)
		want    []Action
	}{
		{
			name:    "at the entrance there is nowhere to go back to",
			prepare: func(s *Session) {},
			want:    []Action{ActionForward, ActionQuit},
		},
		{
			name: "in combat",
			prepare: func(s *Session) {
				s.Apply(ActionForward)
			},
			want: []Action{ActionFight, ActionFlee},
		},
		{
			name: "facing the choice",
			prepare: func(s *Session) {
				s.Dungeon.Current = 5
				s.Phase = PhaseChoice
			},
			want: []Action{ActionChooseKey, ActionChoosePotion},
		},
		{
			name: "reading a combat summary",
			prepare: func(s *Session) {
				s.Apply(ActionForward)
				s.Apply(ActionFight)
			},
			want: []Action{ActionAcknowledge},
		},
		{
			name: "the cursed blades lock the exit until collected",
			prepare: func(s *Session) {
				s.Dungeon.Current = 4
				s.Dungeon.History = []int{0, 1, 2, 3}
			},
			want: []Action{ActionCollect, ActionForward, ActionBack},
		},
		{
			name: "after collecting the sword quit returns",
			prepare: func(s *Session) {
				s.Dungeon.Current = 4
				s.Dungeon.History = []int{0, 1, 2, 3}
				s.Apply(ActionCollect)
			},
			want: []Action{ActionForward, ActionBack, ActionQuit},
		},
		{
			name: "an ended session offers nothing",
			prepare: func(s *Session) {
				s.Apply(ActionQuit)
			},
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession("Hero")
			tc.prepare(s)
			assert.Equal(t, tc.want, s.AvailableActions())
		})
	}
}
