package srd

import "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"

// ASI schedules. Most classes improve at 4/8/12/16/19; fighter and rogue
// get extra improvements.
var (
	asiStandard = []int{4, 8, 12, 16, 19}
	asiFighter  = []int{4, 6, 8, 12, 14, 16, 19}
	asiRogue    = []int{4, 8, 10, 12, 16, 19}
)

var classes = []*catalog.Class{
	{
		Slug:   "barbarian",
		Name:   "Barbarian",
		HitDie: 12,
		Caster: catalog.CasterNone,

		ASILevels: asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"animal-handling", "athletics", "intimidation", "nature", "perception", "survival"},
		},
		Features: []catalog.Feature{
			{
				Slug: "rage", Name: "Rage", Level: 1,
				Description: "Enter a battle rage as a bonus action.",
				MaxUses: []catalog.UsesAtLevel{
					{Level: 1, Uses: 2}, {Level: 3, Uses: 3}, {Level: 6, Uses: 4},
					{Level: 12, Uses: 5}, {Level: 17, Uses: 6}, {Level: 20, Uses: -1},
				},
				ResetsOn: catalog.ResetLongRest,
			},
			{
				Slug: "unarmored-defense-barbarian", Name: "Unarmored Defense", Level: 1,
				Description: "While not wearing armor, AC equals 10 + DEX + CON.",
			},
			{
				Slug: "reckless-attack", Name: "Reckless Attack", Level: 2,
				Description: "Attack with advantage at the cost of advantage against you.",
			},
			{
				Slug: "extra-attack-barbarian", Name: "Extra Attack", Level: 5,
				Description: "Attack twice when you take the Attack action.",
			},
		},
	},
	{
		Slug:   "bard",
		Name:   "Bard",
		HitDie: 8,
		Caster: catalog.CasterFull,

		Preparation:         catalog.PrepareKnown,
		SpellcastingAbility: "CHA",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 3,
			From: []string{
				"acrobatics", "animal-handling", "arcana", "athletics", "deception",
				"history", "insight", "intimidation", "investigation", "medicine",
				"nature", "perception", "performance", "persuasion", "religion",
				"sleight-of-hand", "stealth", "survival",
			},
		},
		ExpertiseChoices: []catalog.ExpertiseChoiceSpec{
			{Group: "expertise_1", Level: 3, Choose: 2},
			{Group: "expertise_2", Level: 10, Choose: 2},
		},
		SpellChoices: []catalog.SpellChoiceSpec{
			{Group: "spells_known_1", Level: 1, Choose: 4, MaxLevel: 1},
		},
		Features: []catalog.Feature{
			{
				Slug: "bardic-inspiration", Name: "Bardic Inspiration", Level: 1,
				Description: "Grant an inspiration die as a bonus action.",
				MaxUses: []catalog.UsesAtLevel{
					{Level: 1, Uses: 3}, {Level: 5, Uses: 4}, {Level: 10, Uses: 5}, {Level: 15, Uses: 6},
				},
				ResetsOn: catalog.ResetLongRest,
			},
			{
				Slug: "song-of-rest", Name: "Song of Rest", Level: 2,
				Description: "Extra healing for allies who spend hit dice during a short rest.",
			},
		},
		SpellList: []string{
			"vicious-mockery", "charm-person", "healing-word", "thunderwave",
			"dissonant-whispers", "invisibility",
		},
	},
	{
		Slug:   "cleric",
		Name:   "Cleric",
		HitDie: 8,
		Caster: catalog.CasterFull,

		Preparation:         catalog.PreparePrepared,
		SpellcastingAbility: "WIS",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"history", "insight", "medicine", "persuasion", "religion"},
		},
		Features: []catalog.Feature{
			{
				Slug: "channel-divinity", Name: "Channel Divinity", Level: 2,
				Description: "Channel divine energy to fuel magical effects.",
				MaxUses: []catalog.UsesAtLevel{
					{Level: 2, Uses: 1}, {Level: 6, Uses: 2}, {Level: 18, Uses: 3},
				},
				ResetsOn: catalog.ResetShortRest,
			},
			{
				Slug: "divine-intervention", Name: "Divine Intervention", Level: 10,
				Description: "Call on your deity to intervene.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 10, Uses: 1}},
				ResetsOn:    catalog.ResetDawn,
			},
		},
		SpellList: []string{
			"sacred-flame", "bless", "cure-wounds", "guiding-bolt", "healing-word",
			"spiritual-weapon", "lesser-restoration",
		},
	},
	{
		Slug:   "druid",
		Name:   "Druid",
		HitDie: 8,
		Caster: catalog.CasterFull,

		Preparation:         catalog.PreparePrepared,
		SpellcastingAbility: "WIS",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"arcana", "animal-handling", "insight", "medicine", "nature", "perception", "religion", "survival"},
		},
		Features: []catalog.Feature{
			{
				Slug: "wild-shape", Name: "Wild Shape", Level: 2,
				Description: "Magically assume the shape of a beast.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 2, Uses: 2}, {Level: 20, Uses: -1}},
				ResetsOn:    catalog.ResetShortRest,
			},
		},
		SpellList: []string{
			"druidcraft", "cure-wounds", "entangle", "faerie-fire", "thunderwave",
			"lesser-restoration",
		},
	},
	{
		Slug:   "fighter",
		Name:   "Fighter",
		HitDie: 10,
		Caster: catalog.CasterNone,

		ASILevels: asiFighter,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"acrobatics", "animal-handling", "athletics", "history", "insight", "intimidation", "perception", "survival"},
		},
		EquipmentChoices: []catalog.EquipmentChoice{
			{
				Group: "armor",
				Options: []catalog.EquipmentOption{
					{Key: "chain-mail", Items: []catalog.ItemGrant{{ItemSlug: "chain-mail", Quantity: 1}}},
					{Key: "leather-and-bow", Items: []catalog.ItemGrant{
						{ItemSlug: "leather-armor", Quantity: 1},
						{ItemSlug: "longbow", Quantity: 1},
					}},
				},
			},
			{
				Group: "weapons",
				Options: []catalog.EquipmentOption{
					{Key: "sword-and-shield", Items: []catalog.ItemGrant{
						{ItemSlug: "longsword", Quantity: 1},
						{ItemSlug: "shield", Quantity: 1},
					}},
					{Key: "two-swords", Items: []catalog.ItemGrant{{ItemSlug: "shortsword", Quantity: 2}}},
				},
			},
		},
		Features: []catalog.Feature{
			{
				Slug: "second-wind", Name: "Second Wind", Level: 1,
				Description: "Regain hit points as a bonus action.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 1, Uses: 1}},
				ResetsOn:    catalog.ResetShortRest,
			},
			{
				Slug: "action-surge", Name: "Action Surge", Level: 2,
				Description: "Take one additional action on your turn.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 2, Uses: 1}, {Level: 17, Uses: 2}},
				ResetsOn:    catalog.ResetShortRest,
			},
			{
				Slug: "extra-attack-fighter", Name: "Extra Attack", Level: 5,
				Description: "Attack twice when you take the Attack action.",
			},
			{
				Slug: "indomitable", Name: "Indomitable", Level: 9,
				Description: "Reroll a failed saving throw.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 9, Uses: 1}, {Level: 13, Uses: 2}, {Level: 17, Uses: 3}},
				ResetsOn:    catalog.ResetLongRest,
			},
		},
	},
	{
		Slug:   "monk",
		Name:   "Monk",
		HitDie: 8,
		Caster: catalog.CasterNone,

		ASILevels: asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"acrobatics", "athletics", "history", "insight", "religion", "stealth"},
		},
		Features: []catalog.Feature{
			{
				Slug: "ki", Name: "Ki", Level: 2,
				Description: "Harness mystic energy; ki points equal monk level.",
				MaxUses: []catalog.UsesAtLevel{
					{Level: 2, Uses: 2}, {Level: 3, Uses: 3}, {Level: 4, Uses: 4}, {Level: 5, Uses: 5},
					{Level: 6, Uses: 6}, {Level: 7, Uses: 7}, {Level: 8, Uses: 8}, {Level: 9, Uses: 9},
					{Level: 10, Uses: 10},
				},
				ResetsOn: catalog.ResetShortRest,
			},
			{
				Slug: "unarmored-defense-monk", Name: "Unarmored Defense", Level: 1,
				Description: "While unarmored, AC equals 10 + DEX + WIS.",
			},
		},
	},
	{
		Slug:   "paladin",
		Name:   "Paladin",
		HitDie: 10,
		Caster: catalog.CasterHalf,

		Preparation:         catalog.PreparePrepared,
		SpellcastingAbility: "CHA",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"athletics", "insight", "intimidation", "medicine", "persuasion", "religion"},
		},
		Features: []catalog.Feature{
			{
				Slug: "divine-sense", Name: "Divine Sense", Level: 1,
				Description: "Detect celestials, fiends, and undead.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 1, Uses: 4}},
				ResetsOn:    catalog.ResetLongRest,
			},
			{
				Slug: "lay-on-hands", Name: "Lay on Hands", Level: 1,
				Description: "Healing pool of 5 hit points per paladin level.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 1, Uses: 5}, {Level: 2, Uses: 10}, {Level: 3, Uses: 15}},
				ResetsOn:    catalog.ResetLongRest,
			},
		},
		SpellList: []string{"bless", "cure-wounds", "lesser-restoration"},
	},
	{
		Slug:   "ranger",
		Name:   "Ranger",
		HitDie: 10,
		Caster: catalog.CasterHalf,

		Preparation:         catalog.PrepareKnown,
		SpellcastingAbility: "WIS",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 3,
			From:   []string{"animal-handling", "athletics", "insight", "investigation", "nature", "perception", "stealth", "survival"},
		},
		Features: []catalog.Feature{
			{
				Slug: "natural-explorer", Name: "Natural Explorer", Level: 1,
				Description: "Favored terrain benefits while traveling.",
			},
		},
		SpellList: []string{"cure-wounds", "entangle", "hunters-mark"},
	},
	{
		Slug:   "rogue",
		Name:   "Rogue",
		HitDie: 8,
		Caster: catalog.CasterNone,

		ASILevels: asiRogue,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 4,
			From: []string{
				"acrobatics", "athletics", "deception", "insight", "intimidation",
				"investigation", "perception", "performance", "persuasion",
				"sleight-of-hand", "stealth",
			},
		},
		ExpertiseChoices: []catalog.ExpertiseChoiceSpec{
			{Group: "expertise_1", Level: 1, Choose: 2},
			{Group: "expertise_2", Level: 6, Choose: 2},
		},
		Features: []catalog.Feature{
			{
				Slug: "sneak-attack", Name: "Sneak Attack", Level: 1,
				Description: "Extra damage once per turn against distracted foes.",
			},
			{
				Slug: "cunning-action", Name: "Cunning Action", Level: 2,
				Description: "Dash, Disengage, or Hide as a bonus action.",
			},
			{
				Slug: "stroke-of-luck", Name: "Stroke of Luck", Level: 20,
				Description: "Turn a miss into a hit or a failed check into a 20.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 20, Uses: 1}},
				ResetsOn:    catalog.ResetShortRest,
			},
		},
	},
	{
		Slug:   "sorcerer",
		Name:   "Sorcerer",
		HitDie: 6,
		Caster: catalog.CasterFull,

		Preparation:         catalog.PrepareKnown,
		SpellcastingAbility: "CHA",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"arcana", "deception", "insight", "intimidation", "persuasion", "religion"},
		},
		SpellChoices: []catalog.SpellChoiceSpec{
			{Group: "spells_known_1", Level: 1, Choose: 2, MaxLevel: 1},
		},
		Features: []catalog.Feature{
			{
				Slug: "sorcery-points", Name: "Sorcery Points", Level: 2,
				Description: "Fuel metamagic; points equal sorcerer level.",
				MaxUses: []catalog.UsesAtLevel{
					{Level: 2, Uses: 2}, {Level: 3, Uses: 3}, {Level: 4, Uses: 4},
					{Level: 5, Uses: 5}, {Level: 10, Uses: 10},
				},
				ResetsOn: catalog.ResetLongRest,
			},
		},
		SpellList: []string{"fire-bolt", "burning-hands", "charm-person", "shield", "magic-missile"},
	},
	{
		Slug:   "warlock",
		Name:   "Warlock",
		HitDie: 8,
		Caster: catalog.CasterPact,

		Preparation:         catalog.PrepareKnown,
		SpellcastingAbility: "CHA",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"arcana", "deception", "history", "intimidation", "investigation", "nature", "religion"},
		},
		SpellChoices: []catalog.SpellChoiceSpec{
			{Group: "spells_known_1", Level: 1, Choose: 2, MaxLevel: 1},
		},
		Features: []catalog.Feature{
			{
				Slug: "eldritch-invocations", Name: "Eldritch Invocations", Level: 2,
				Description: "Fragments of forbidden knowledge.",
			},
		},
		SpellList: []string{"eldritch-blast", "hex", "charm-person", "witch-bolt"},
	},
	{
		Slug:   "wizard",
		Name:   "Wizard",
		HitDie: 6,
		Caster: catalog.CasterFull,

		Preparation:         catalog.PrepareSpellbook,
		SpellcastingAbility: "INT",
		ASILevels:           asiStandard,
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "skill_choice_1",
			Choose: 2,
			From:   []string{"arcana", "history", "insight", "investigation", "medicine", "religion"},
		},
		SpellChoices: []catalog.SpellChoiceSpec{
			{Group: "spellbook_1", Level: 1, Choose: 6, MaxLevel: 1},
		},
		EquipmentChoices: []catalog.EquipmentChoice{
			{
				Group: "focus",
				Options: []catalog.EquipmentOption{
					{Key: "quarterstaff", Items: []catalog.ItemGrant{{ItemSlug: "quarterstaff", Quantity: 1}}},
					{Key: "dagger", Items: []catalog.ItemGrant{{ItemSlug: "dagger", Quantity: 1}}},
				},
			},
		},
		Features: []catalog.Feature{
			{
				Slug: "arcane-recovery", Name: "Arcane Recovery", Level: 1,
				Description: "Recover expended spell slots during a short rest.",
				MaxUses:     []catalog.UsesAtLevel{{Level: 1, Uses: 1}},
				ResetsOn:    catalog.ResetLongRest,
			},
		},
		SpellList: []string{
			"fire-bolt", "burning-hands", "charm-person", "detect-magic",
			"mage-armor", "magic-missile", "shield", "sleep", "thunderwave",
			"invisibility", "misty-step",
		},
	},
}

var races = []*catalog.Race{
	{
		Slug: "human", Name: "Human", Size: "Medium",
		Speed: map[string]int{"walk": 30},
		AbilityBonuses: map[string]int{
			"STR": 1, "DEX": 1, "CON": 1, "INT": 1, "WIS": 1, "CHA": 1,
		},
	},
	{
		Slug: "hill-dwarf", Name: "Hill Dwarf", Size: "Medium",
		Speed:          map[string]int{"walk": 25},
		AbilityBonuses: map[string]int{"CON": 2, "WIS": 1},
		// Dwarven Toughness
		HPPerLevel: 1,
		SkillAdvantages: []catalog.SkillAdvantage{
			{Skill: "history", Condition: "related to the origin of stonework"},
		},
	},
	{
		Slug: "wood-elf", Name: "Wood Elf", Size: "Medium",
		Speed:          map[string]int{"walk": 35},
		AbilityBonuses: map[string]int{"DEX": 2, "WIS": 1},
		SkillAdvantages: []catalog.SkillAdvantage{
			{Skill: "perception", Condition: ""},
		},
	},
	{
		Slug: "half-elf", Name: "Half-Elf", Size: "Medium",
		Speed:          map[string]int{"walk": 30},
		AbilityBonuses: map[string]int{"CHA": 2},
		SkillChoices: &catalog.SkillChoiceSpec{
			Group:  "versatility",
			Choose: 2,
			From: []string{
				"acrobatics", "animal-handling", "arcana", "athletics", "deception",
				"history", "insight", "intimidation", "investigation", "medicine",
				"nature", "perception", "performance", "persuasion", "religion",
				"sleight-of-hand", "stealth", "survival",
			},
		},
	},
	{
		Slug: "lightfoot-halfling", Name: "Lightfoot Halfling", Size: "Small",
		Speed:          map[string]int{"walk": 25},
		AbilityBonuses: map[string]int{"DEX": 2, "CHA": 1},
		SkillAdvantages: []catalog.SkillAdvantage{
			{Skill: "stealth", Condition: "when obscured by a larger creature"},
		},
	},
	{
		Slug: "aarakocra", Name: "Aarakocra", Size: "Medium",
		Speed:          map[string]int{"walk": 25, "fly": 50},
		AbilityBonuses: map[string]int{"DEX": 2, "WIS": 1},
	},
}

var feats = []*catalog.Feat{
	{
		Slug: "tough", Name: "Tough",
		Description: "Your hit point maximum increases by 2 per level.",
		HPPerLevel:  2,
	},
	{
		Slug: "alert", Name: "Alert",
		Description: "+5 initiative; you can't be surprised while conscious.",
	},
	{
		Slug: "lucky", Name: "Lucky",
		Description: "Reroll d20s three times per long rest.",
	},
	{
		Slug: "resilient-constitution", Name: "Resilient (Constitution)",
		Description:    "+1 Constitution and proficiency in CON saving throws.",
		AbilityBonuses: map[string]int{"CON": 1},
	},
	{
		Slug: "observant", Name: "Observant",
		Description:    "+1 Wisdom; read lips; +5 passive Perception and Investigation.",
		AbilityBonuses: map[string]int{"WIS": 1},
	},
	{
		Slug: "war-caster", Name: "War Caster",
		Description: "Advantage on CON saves to maintain concentration.",
		SkillAdvantages: []catalog.SkillAdvantage{
			{Skill: "concentration", Condition: "to maintain concentration on a spell"},
		},
	},
	{
		Slug: "actor", Name: "Actor",
		Description:    "+1 Charisma; advantage on checks to pass as someone else.",
		AbilityBonuses: map[string]int{"CHA": 1},
		SkillAdvantages: []catalog.SkillAdvantage{
			{Skill: "deception", Condition: "when impersonating another person"},
			{Skill: "performance", Condition: "when impersonating another person"},
		},
	},
}

var items = []*catalog.Item{
	{Slug: "leather-armor", Name: "Leather Armor", Weight: 10, ArmorClass: 11, ArmorType: "light"},
	{Slug: "chain-shirt", Name: "Chain Shirt", Weight: 20, ArmorClass: 13, ArmorType: "medium"},
	{Slug: "chain-mail", Name: "Chain Mail", Weight: 55, ArmorClass: 16, ArmorType: "heavy"},
	{Slug: "plate-armor", Name: "Plate Armor", Weight: 65, ArmorClass: 18, ArmorType: "heavy"},
	{Slug: "shield", Name: "Shield", Weight: 6, ArmorClass: 2, ArmorType: "shield"},
	{Slug: "longsword", Name: "Longsword", Weight: 3},
	{Slug: "shortsword", Name: "Shortsword", Weight: 2},
	{Slug: "greataxe", Name: "Greataxe", Weight: 7},
	{Slug: "dagger", Name: "Dagger", Weight: 1},
	{Slug: "quarterstaff", Name: "Quarterstaff", Weight: 4},
	{Slug: "longbow", Name: "Longbow", Weight: 2},
	{Slug: "explorers-pack", Name: "Explorer's Pack", Weight: 59},
	{Slug: "iron-rations", Name: "Iron Rations", Weight: 2},
}

var skills = []*catalog.Skill{
	{Slug: "acrobatics", Name: "Acrobatics", Ability: "DEX"},
	{Slug: "animal-handling", Name: "Animal Handling", Ability: "WIS"},
	{Slug: "arcana", Name: "Arcana", Ability: "INT"},
	{Slug: "athletics", Name: "Athletics", Ability: "STR"},
	{Slug: "deception", Name: "Deception", Ability: "CHA"},
	{Slug: "history", Name: "History", Ability: "INT"},
	{Slug: "insight", Name: "Insight", Ability: "WIS"},
	{Slug: "intimidation", Name: "Intimidation", Ability: "CHA"},
	{Slug: "investigation", Name: "Investigation", Ability: "INT"},
	{Slug: "medicine", Name: "Medicine", Ability: "WIS"},
	{Slug: "nature", Name: "Nature", Ability: "INT"},
	{Slug: "perception", Name: "Perception", Ability: "WIS"},
	{Slug: "performance", Name: "Performance", Ability: "CHA"},
	{Slug: "persuasion", Name: "Persuasion", Ability: "CHA"},
	{Slug: "religion", Name: "Religion", Ability: "INT"},
	{Slug: "sleight-of-hand", Name: "Sleight of Hand", Ability: "DEX"},
	{Slug: "stealth", Name: "Stealth", Ability: "DEX"},
	{Slug: "survival", Name: "Survival", Ability: "WIS"},
}

var spells = []*catalog.Spell{
	{Slug: "fire-bolt", Name: "Fire Bolt", Level: 0, School: "evocation", Classes: []string{"wizard", "sorcerer"}},
	{Slug: "sacred-flame", Name: "Sacred Flame", Level: 0, School: "evocation", Classes: []string{"cleric"}},
	{Slug: "vicious-mockery", Name: "Vicious Mockery", Level: 0, School: "enchantment", Classes: []string{"bard"}},
	{Slug: "druidcraft", Name: "Druidcraft", Level: 0, School: "transmutation", Classes: []string{"druid"}},
	{Slug: "eldritch-blast", Name: "Eldritch Blast", Level: 0, School: "evocation", Classes: []string{"warlock"}},
	{Slug: "bless", Name: "Bless", Level: 1, School: "enchantment", Classes: []string{"cleric", "paladin"}},
	{Slug: "burning-hands", Name: "Burning Hands", Level: 1, School: "evocation", Classes: []string{"wizard", "sorcerer"}},
	{Slug: "charm-person", Name: "Charm Person", Level: 1, School: "enchantment", Classes: []string{"wizard", "sorcerer", "bard", "warlock"}},
	{Slug: "cure-wounds", Name: "Cure Wounds", Level: 1, School: "evocation", Classes: []string{"cleric", "druid", "paladin", "ranger"}},
	{Slug: "detect-magic", Name: "Detect Magic", Level: 1, School: "divination", Classes: []string{"wizard", "cleric", "bard"}},
	{Slug: "dissonant-whispers", Name: "Dissonant Whispers", Level: 1, School: "enchantment", Classes: []string{"bard"}},
	{Slug: "entangle", Name: "Entangle", Level: 1, School: "conjuration", Classes: []string{"druid", "ranger"}},
	{Slug: "faerie-fire", Name: "Faerie Fire", Level: 1, School: "evocation", Classes: []string{"druid", "bard"}},
	{Slug: "guiding-bolt", Name: "Guiding Bolt", Level: 1, School: "evocation", Classes: []string{"cleric"}},
	{Slug: "healing-word", Name: "Healing Word", Level: 1, School: "evocation", Classes: []string{"cleric", "bard"}},
	{Slug: "hex", Name: "Hex", Level: 1, School: "enchantment", Classes: []string{"warlock"}},
	{Slug: "hunters-mark", Name: "Hunter's Mark", Level: 1, School: "divination", Classes: []string{"ranger"}},
	{Slug: "mage-armor", Name: "Mage Armor", Level: 1, School: "abjuration", Classes: []string{"wizard"}},
	{Slug: "magic-missile", Name: "Magic Missile", Level: 1, School: "evocation", Classes: []string{"wizard", "sorcerer"}},
	{Slug: "shield", Name: "Shield", Level: 1, School: "abjuration", Classes: []string{"wizard", "sorcerer"}},
	{Slug: "sleep", Name: "Sleep", Level: 1, School: "enchantment", Classes: []string{"wizard", "bard"}},
	{Slug: "thunderwave", Name: "Thunderwave", Level: 1, School: "evocation", Classes: []string{"wizard", "bard", "druid"}},
	{Slug: "witch-bolt", Name: "Witch Bolt", Level: 1, School: "evocation", Classes: []string{"warlock", "wizard"}},
	{Slug: "invisibility", Name: "Invisibility", Level: 2, School: "illusion", Classes: []string{"wizard", "bard"}},
	{Slug: "lesser-restoration", Name: "Lesser Restoration", Level: 2, School: "abjuration", Classes: []string{"cleric", "druid", "paladin", "ranger"}},
	{Slug: "misty-step", Name: "Misty Step", Level: 2, School: "conjuration", Classes: []string{"wizard", "sorcerer", "warlock"}},
	{Slug: "spiritual-weapon", Name: "Spiritual Weapon", Level: 2, School: "evocation", Classes: []string{"cleric"}},
}
