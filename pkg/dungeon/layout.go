package dungeon

// Names the rules engine keys on. The cursed-blades room gates both the
// collect action and the quit restriction; the item names feed the
// boss-damage rule and the final-door check.
const (
	CursedBladesRoom = "Chamber of the Cursed Blades"

	ItemSword        = "Sword"
	ItemGoldenKey    = "Golden Key"
	ItemHealthPotion = "Health Potion"
)

// DefaultRooms returns a fresh copy of the fixed nine-room dungeon.
// Sessions mutate their copy in place, so every call allocates new
// rooms and entities.
func DefaultRooms() []Room {
	return []Room{
		{
			Name:        "Dungeon Entrance",
			Description: "The heavy stone door slams shut behind you. Your only way is forward.",
			Background:  "dungeon.png",
		},
		{
			Name:        "Sanctum of Fire and Frost",
			Description: "You dare enter my domain, mortal? The fire and frost bend to my will. If you wish to pass, you must defeat me first.",
			Entity:      NewMinion("Wizard", 10),
			Background:  "wizard.png",
		},
		{
			Name:        "Dragon's Lair",
			Description: "The air is hot and smells of sulfur. A scaly beast awakens from its slumber.",
			Entity:      NewMinion("Dragon", 15),
			Background:  "dragon.png",
		},
		{
			Name:        "Zombie's Crypt",
			Description: "Dust swirls through shafts of cold light. From the gloom, a corpse lurches forward with dead, hungry eyes.",
			Entity:      NewMinion("Zombie", 5),
			Background:  "zombie.png",
		},
		{
			Name:        CursedBladesRoom,
			Description: "Dark swords float mid-air, glowing with runes. A red sigil burns behind them, pulsing with power.",
			Entity:      NewWeapon(ItemSword),
			Background:  "sword.png",
		},
		{
			Name:        "Room of Choice",
			Description: "The hooded figure looks up from his book. 'You can only take one,' he says. 'The golden key... or the potion that gives you health'",
			ChoiceRoom:  true,
			Background:  "potion.png",
		},
		{
			Name:        "Giant Monster's Den",
			Description: "Huge claw marks scar the walls. A hulking creature guards the path ahead.",
			Entity:      NewMinion("Giant Monster", 10),
			Background:  "monster.png",
		},
		{
			Name:        "Final Boss Chamber",
			Description: "This is it. The final guardian.",
			Entity:      NewBoss("Final Boss", 75),
			Background:  "finalboss.png",
		},
		{
			Name:        "The Final Door",
			Description: "You see a massive, ornate door with a single large keyhole. This must be the exit.",
			FinalDoor:   true,
			Background:  "finaldoor.png",
		},
	}
}
