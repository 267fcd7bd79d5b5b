package sheet

// Ability keys of the default ranger sheet
const (
	AbilityDreadfulStrike = "dreadful_strike"
	AbilityFavoredEnemy   = "favored_enemy"
)

// Item keys the rules touch
const (
	ItemArrows = "arrows"
	ItemGold   = "gold"
)

// Default returns the session-start sheet: Aegis, a level 3 Gloom Stalker
func Default() *CharacterSheet {
	return &CharacterSheet{
		Identity: Identity{
			Name:  "Aegis",
			Class: "Ranger (Gloom Stalker)",
			Level: 3,
		},
		Combat: Combat{
			HP: HitPoints{
				Current:        22,
				Max:            28,
				HitDiceCurrent: 2,
				HitDiceTotal:   3,
			},
			ArmorClass: 14,
			Initiative: 5,
			Speed:      30,
			Conditions: Conditions{},
		},
		Resources: Resources{
			SpellSlots: map[int]*SlotPool{
				1: {Total: 3, Expended: 0},
			},
			Abilities: map[string]*Counter{
				AbilityDreadfulStrike: {Current: 3, Total: 3}, // WIS mod per long rest
				AbilityFavoredEnemy:   {Current: 2, Total: 2},
			},
		},
		Attacks: []Attack{
			{Name: "Longbow", Bonus: 6, Damage: "1d8 + 2", DamageType: "Piercing", Mastery: "Slow"},
			{Name: "Scimitar", Bonus: 4, Damage: "1d6 + 2", DamageType: "Slashing", Mastery: "Nick"},
			{Name: "Shortbow", Bonus: 6, Damage: "1d6 + 2", DamageType: "Piercing", Mastery: "Vex"},
		},
		SpellsKnown: map[int][]Spell{
			1: {
				{Name: "Hunter's Mark", School: "Divination", Concentration: true},
				{Name: "Ensnaring Strike", School: "Conjuration", Concentration: true},
				{Name: "Cure Wounds", School: "Abjuration"},
				{Name: "Disguise Self", School: "Illusion"},
			},
		},
		Inventory: map[string]int{
			ItemArrows: 67,
			ItemGold:   123,
		},
	}
}
