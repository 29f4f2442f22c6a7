// Package rules holds the pure derived-stat calculations: modifier and
// proficiency formulas, spell slot tables, hit point math, encumbrance,
// and the experience table. Nothing here touches storage; every function
// maps inputs to outputs and can be re-run on any read.
package rules

// MaxLevel is the level cap for characters and single classes.
const MaxLevel = 20

// AbilityModifier converts an ability score to its modifier using floor
// division toward negative infinity (score 7 yields -2).
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// ProficiencyBonus returns the bonus for a total character level.
func ProficiencyBonus(totalLevel int) int {
	if totalLevel < 1 {
		return 2
	}
	if totalLevel > MaxLevel {
		totalLevel = MaxLevel
	}
	return 2 + (totalLevel-1)/4
}

// SkillModifier computes a skill check bonus. Proficiency doubles under
// expertise.
func SkillModifier(abilityScore int, proficient, expertise bool, totalLevel int) int {
	mod := AbilityModifier(abilityScore)
	if expertise {
		return mod + 2*ProficiencyBonus(totalLevel)
	}
	if proficient {
		return mod + ProficiencyBonus(totalLevel)
	}
	return mod
}

// SpellSaveDC computes the save DC for a casting ability score.
func SpellSaveDC(abilityScore, totalLevel int) int {
	return 8 + ProficiencyBonus(totalLevel) + AbilityModifier(abilityScore)
}

// SpellAttackBonus computes the spell attack modifier.
func SpellAttackBonus(abilityScore, totalLevel int) int {
	return ProficiencyBonus(totalLevel) + AbilityModifier(abilityScore)
}

// HitPointGain is the average hit point increase for one level in a
// class with the given hit die. The gain is never below 1 regardless of
// how negative the Constitution modifier is.
func HitPointGain(hitDie, conMod int) int {
	gain := hitDie/2 + 1 + conMod
	if gain < 1 {
		return 1
	}
	return gain
}

// FirstLevelHP is the maximum hit points granted by the first class
// level: the full hit die plus the Constitution modifier, minimum 1.
func FirstLevelHP(hitDie, conMod int) int {
	hp := hitDie + conMod
	if hp < 1 {
		return 1
	}
	return hp
}

// ArmorClass computes AC from the equipped armor. With no armor it is
// 10 + DEX. Light armor adds full DEX, medium caps DEX at +2, heavy
// ignores DEX. Shield bonuses stack on top.
func ArmorClass(dexMod int, armorBase int, armorType string, shieldBonus int) int {
	switch armorType {
	case "light":
		return armorBase + dexMod + shieldBonus
	case "medium":
		capped := dexMod
		if capped > 2 {
			capped = 2
		}
		return armorBase + capped + shieldBonus
	case "heavy":
		return armorBase + shieldBonus
	default:
		return 10 + dexMod + shieldBonus
	}
}
