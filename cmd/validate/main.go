package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/oubliette-games/dungeon-escape/pkg/dungeon"
)

// validate checks a dungeon layout against the structural invariants the
// resolver depends on. With no arguments it checks the compiled-in
// layout, which guards edits to the room table. With a JSON file
// argument it checks that file instead, for trying out layout changes
// before wiring them in.
func main() {
	var rooms []dungeon.Room
	source := "compiled-in layout"

	if len(os.Args) >= 2 {
		filename := os.Args[1]
		source = filename
		loaded, err := loadLayout(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		rooms = loaded
	} else {
		rooms = dungeon.DefaultRooms()
	}

	fmt.Printf("Validating %s...\n\n", source)
	printSummary(rooms)

	if errs := dungeon.Validate(rooms); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "\nValidation failed:\n")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}

	fmt.Println("\nDungeon layout is valid!")
}

func loadLayout(filename string) ([]dungeon.Room, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var rooms []dungeon.Room
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rooms); err != nil {
		return nil, fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}
	return rooms, nil
}

func printSummary(rooms []dungeon.Room) {
	for i, r := range rooms {
		occupant := "empty"
		if r.Entity != nil {
			occupant = fmt.Sprintf("%s %q", r.Entity.Kind, r.Entity.Name)
			if r.Entity.Damage > 0 {
				occupant += fmt.Sprintf(" (damage %d)", r.Entity.Damage)
			}
		}
		var flags []string
		if r.ChoiceRoom {
			flags = append(flags, "choice")
		}
		if r.FinalDoor {
			flags = append(flags, "final door")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " [" + strings.Join(flags, ", ") + "]"
		}
		fmt.Printf("  %d. %s - %s%s\n", i+1, r.Name, occupant, suffix)
	}
}
