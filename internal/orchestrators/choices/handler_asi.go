package choices

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

const asiGroup = "asi"

// MaxAbilityScore caps base scores raised by ability improvements.
const MaxAbilityScore = 20

var abilityCodes = []string{"str", "dex", "con", "int", "wis", "cha"}

// ASIHandler covers ability score improvements. A selection is either
// ["str:+2"] or two +1 entries like ["str:+1", "dex:+1"]. Each class
// level on the class's improvement schedule opens one slot, shared with
// the feat handler through the asi_choices_remaining counter.
type ASIHandler struct{}

var _ Handler = (*ASIHandler)(nil)

// Type returns the handler's choice type tag.
func (h *ASIHandler) Type() string { return "asi" }

// Pending lists one choice per reached improvement level per class. An
// unresolved slot is live only while the character has improvement
// choices left to spend.
func (h *ASIHandler) Pending(c *entities.Character, store catalog.Store) ([]Choice, error) {
	return asiSlotChoices(h.Type(), c, store, func(class *catalog.Class, level int) Choice {
		return Choice{
			Description: fmt.Sprintf("Ability Score Improvement (%s %d): +2 to one score or +1 to two", class.Name, level),
			Choose:      0,
		}
	})
}

// asiSlotChoices derives the improvement-slot choices shared by the asi
// and feat handlers, differing only in type tag and description.
func asiSlotChoices(
	choiceType string,
	c *entities.Character,
	store catalog.Store,
	describe func(class *catalog.Class, level int) Choice,
) ([]Choice, error) {
	var out []Choice
	for _, cl := range c.Classes {
		class, err := store.Class(cl.ClassSlug)
		if err != nil {
			return nil, err
		}
		for _, level := range class.ASILevels {
			if level > cl.Level {
				continue
			}
			choice := describe(class, level)
			choice.ID = ChoiceID{
				Type:       choiceType,
				Source:     SourceClass,
				SourceSlug: class.Slug,
				Level:      level,
				Group:      asiGroup,
			}
			if record := c.Choice(choice.ID.String()); record != nil {
				choice.Resolved = true
				choice.Selection = record.Selections
			} else if c.AsiChoicesRemaining <= 0 {
				continue
			}
			out = append(out, choice)
		}
	}
	return out, nil
}

// Validate checks the increment grammar: entries "ability:+n" totaling
// +2, no score pushed past 20.
func (h *ASIHandler) Validate(c *entities.Character, _ *Choice, selection []string) error {
	increments, err := parseIncrements(selection)
	if err != nil {
		return err
	}
	vb := errors.NewValidationBuilder()
	total := 0
	for ability, inc := range increments {
		total += inc
		if inc < 1 || inc > 2 {
			vb.Fieldf("selection", "increment for %s must be +1 or +2", ability)
		}
		score, ok := c.AbilityScores.Get(strings.ToUpper(ability))
		if !ok {
			vb.Fieldf("selection", "ability %s has no score set", ability)
			continue
		}
		if score+inc > MaxAbilityScore {
			vb.Fieldf("selection", "%s cannot rise above %d", ability, MaxAbilityScore)
		}
	}
	if total != 2 {
		vb.Fieldf("selection", "increments must total +2, got +%d", total)
	}
	return vb.Build()
}

// Apply raises the scores, spends the improvement slot, and keeps
// calculated hit points in line with any Constitution change.
func (h *ASIHandler) Apply(c *entities.Character, choice *Choice, selection []string, store catalog.Store) error {
	if !choice.Resolved && c.AsiChoicesRemaining <= 0 {
		return errors.FailedPrecondition("no ability score improvement available")
	}
	increments, err := parseIncrements(selection)
	if err != nil {
		return err
	}
	for ability, inc := range increments {
		if err := adjustAbility(c, store, strings.ToUpper(ability), inc); err != nil {
			return err
		}
	}
	c.AsiChoicesRemaining--
	return nil
}

// Reverse lowers the scores and refunds the improvement slot.
func (h *ASIHandler) Reverse(c *entities.Character, _ *Choice, selection []string, store catalog.Store) error {
	increments, err := parseIncrements(selection)
	if err != nil {
		return err
	}
	for ability, inc := range increments {
		if err := adjustAbility(c, store, strings.ToUpper(ability), -inc); err != nil {
			return err
		}
	}
	c.AsiChoicesRemaining++
	return nil
}

// parseIncrements parses ["con:+2"] style entries into ability → delta.
func parseIncrements(selection []string) (map[string]int, error) {
	vb := errors.NewValidationBuilder()
	increments := make(map[string]int, len(selection))
	for _, entry := range selection {
		ability, raw, found := strings.Cut(entry, ":")
		ability = strings.ToLower(ability)
		if !found || !containsValue(abilityCodes, ability) {
			vb.Fieldf("selection", "entry %q is not of the form ability:+n", entry)
			continue
		}
		inc, err := strconv.Atoi(strings.TrimPrefix(raw, "+"))
		if err != nil {
			vb.Fieldf("selection", "entry %q is not of the form ability:+n", entry)
			continue
		}
		if _, dup := increments[ability]; dup {
			vb.Fieldf("selection", "ability %s appears twice", ability)
			continue
		}
		increments[ability] = inc
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return increments, nil
}

// adjustAbility shifts a base score by delta. A Constitution modifier
// change under calculated HP mode retroactively adjusts max and current
// hit points by the modifier delta per character level.
func adjustAbility(c *entities.Character, store catalog.Store, ability string, delta int) error {
	base, ok := c.AbilityScores.Get(ability)
	if !ok {
		return errors.FailedPreconditionf("ability %s has no score set", ability)
	}

	raceBonus := 0
	if c.RaceSlug != "" {
		race, err := store.Race(c.RaceSlug)
		if err != nil {
			return err
		}
		raceBonus = race.AbilityBonuses[ability]
	}

	c.AbilityScores.Set(ability, base+delta)

	if ability == "CON" && c.HPMode == entities.HPModeCalculated {
		oldMod := rules.AbilityModifier(base + raceBonus)
		newMod := rules.AbilityModifier(base + delta + raceBonus)
		hpDelta := (newMod - oldMod) * c.TotalLevel()
		if hpDelta != 0 {
			c.MaxHP += hpDelta
			if c.MaxHP < 1 {
				c.MaxHP = 1
			}
			c.CurrentHP += hpDelta
			if c.CurrentHP > c.MaxHP {
				c.CurrentHP = c.MaxHP
			}
			if c.CurrentHP < 0 {
				c.CurrentHP = 0
			}
		}
	}
	return nil
}
