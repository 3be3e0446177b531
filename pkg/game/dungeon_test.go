package game

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDungeonStartsAtEntrance(t *testing.T) {
	d := NewDungeon()
	if d.Current != 0 {
		t.Errorf("expected cursor at 0, got %d", d.Current)
	}
	if d.CurrentRoom().Name != "Dungeon Entrance" {
		t.Errorf("expected 'Dungeon Entrance', got %q", d.CurrentRoom().Name)
	}
	if d.CanMoveBack() {
		t.Error("fresh dungeon should have no history")
	}
	if !d.CanMoveForward() {
		t.Error("fresh dungeon should have a successor")
	}
}

func TestMoveForwardAndBack(t *testing.T) {
	d := NewDungeon()
	p := NewPlayer("Test")

	if !d.MoveForward(&p) {
		t.Fatal("expected forward move to succeed")
	}
	if d.Current != 1 {
		t.Errorf("expected cursor at 1, got %d", d.Current)
	}
	if p.Moves != StartingMoves-1 {
		t.Errorf("expected moves %d, got %d", StartingMoves-1, p.Moves)
	}
	if len(d.History) != 1 || d.History[0] != 0 {
		t.Errorf("expected history [0], got %v", d.History)
	}

	if !d.MoveBack(&p) {
		t.Fatal("expected back move to succeed")
	}
	if d.Current != 0 {
		t.Errorf("expected cursor back at 0, got %d", d.Current)
	}
	if p.Moves != StartingMoves-2 {
		t.Errorf("round trip should cost 2 moves, got %d spent", StartingMoves-p.Moves)
	}
	if len(d.History) != 0 {
		t.Errorf("expected empty history, got %v", d.History)
	}
}

func TestMoveBlockedAtEnds(t *testing.T) {
	d := NewDungeon()
	p := NewPlayer("Test")

	if d.MoveBack(&p) {
		t.Error("back with empty history must be a no-op")
	}
	if p.Moves != StartingMoves {
		t.Errorf("blocked move must not spend moves, got %d", p.Moves)
	}

	d.Current = len(d.Rooms) - 1
	if d.MoveForward(&p) {
		t.Error("forward from the last room must be a no-op")
	}
	if p.Moves != StartingMoves {
		t.Errorf("blocked move must not spend moves, got %d", p.Moves)
	}
}

func TestBackRetracesExactPath(t *testing.T) {
	d := NewDungeon()
	p := NewPlayer("Test")
	p.Moves = 100

	for i := 0; i < 4; i++ {
		d.MoveForward(&p)
	}
	for want := 3; want >= 0; want-- {
		if !d.MoveBack(&p) {
			t.Fatalf("expected back move to succeed at depth %d", want)
		}
		if d.Current != want {
			t.Errorf("expected cursor %d, got %d", want, d.Current)
		}
	}
	if d.CanMoveBack() {
		t.Error("expected history to be empty after full retrace")
	}
}

// Forward immediately followed by back restores the cursor and stack
// depth at a cost of exactly 2 moves, from any reachable position.
func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := NewDungeon()
		p := NewPlayer("Prop")
		p.Moves = 1000

		steps := rapid.IntRange(0, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(rt, "forward") {
				d.MoveForward(&p)
			} else {
				d.MoveBack(&p)
			}
		}
		if !d.CanMoveForward() {
			return
		}

		prior := d.Current
		depth := len(d.History)
		movesBefore := p.Moves

		if !d.MoveForward(&p) {
			rt.Fatal("forward should succeed when a successor exists")
		}
		if !d.MoveBack(&p) {
			rt.Fatal("back should succeed right after forward")
		}
		if d.Current != prior {
			rt.Fatalf("expected cursor restored to %d, got %d", prior, d.Current)
		}
		if len(d.History) != depth {
			rt.Fatalf("expected stack depth restored to %d, got %d", depth, len(d.History))
		}
		if p.Moves != movesBefore-2 {
			rt.Fatalf("expected round trip to cost 2 moves, cost %d", movesBefore-p.Moves)
		}
	})
}
