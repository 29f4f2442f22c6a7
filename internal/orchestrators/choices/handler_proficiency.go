package choices

import (
	"fmt"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// ProficiencyHandler covers skill proficiency picks granted by the
// primary class and the race.
type ProficiencyHandler struct{}

var _ Handler = (*ProficiencyHandler)(nil)

// Type returns the handler's choice type tag.
func (h *ProficiencyHandler) Type() string { return "proficiency" }

// Pending derives one choice per skill-choice grant on the primary
// class and the race.
func (h *ProficiencyHandler) Pending(c *entities.Character, store catalog.Store) ([]Choice, error) {
	var out []Choice

	if primary := c.PrimaryClass(); primary != nil {
		class, err := store.Class(primary.ClassSlug)
		if err != nil {
			return nil, err
		}
		if class.SkillChoices != nil {
			out = append(out, h.choiceFromSpec(c, SourceClass, class.Slug, class.SkillChoices,
				fmt.Sprintf("Choose %d %s skill proficiencies", class.SkillChoices.Choose, class.Name)))
		}
	}

	if c.RaceSlug != "" {
		race, err := store.Race(c.RaceSlug)
		if err != nil {
			return nil, err
		}
		if race.SkillChoices != nil {
			out = append(out, h.choiceFromSpec(c, SourceRace, race.Slug, race.SkillChoices,
				fmt.Sprintf("Choose %d skill proficiencies from your %s heritage", race.SkillChoices.Choose, race.Name)))
		}
	}

	return out, nil
}

func (h *ProficiencyHandler) choiceFromSpec(
	c *entities.Character, source, slug string, spec *catalog.SkillChoiceSpec, description string,
) Choice {
	choice := Choice{
		ID: ChoiceID{
			Type:       h.Type(),
			Source:     source,
			SourceSlug: slug,
			Level:      1,
			Group:      spec.Group,
		},
		Description: description,
		Required:    true,
		Choose:      spec.Choose,
		Options:     spec.From,
	}
	if record := c.Choice(choice.ID.String()); record != nil {
		choice.Resolved = true
		choice.Selection = record.Selections
	}
	return choice
}

// Validate checks quantity, allowed values, and that no picked skill is
// already held through another source.
func (h *ProficiencyHandler) Validate(c *entities.Character, choice *Choice, selection []string) error {
	vb := errors.NewValidationBuilder()
	if len(selection) != choice.Choose {
		vb.Fieldf("selection", "must pick exactly %d skills, got %d", choice.Choose, len(selection))
	}
	seen := map[string]bool{}
	for _, skill := range selection {
		if seen[skill] {
			vb.Fieldf("selection", "duplicate skill %s", skill)
			continue
		}
		seen[skill] = true
		if !containsValue(choice.Options, skill) {
			vb.Fieldf("selection", "skill %s is not an option for this choice", skill)
			continue
		}
		if c.HasSkill(skill) && !containsValue(choice.Selection, skill) {
			vb.Fieldf("selection", "already proficient in %s", skill)
		}
	}
	return vb.Build()
}

// Apply adds the picked skills to the character.
func (h *ProficiencyHandler) Apply(c *entities.Character, _ *Choice, selection []string, _ catalog.Store) error {
	for _, skill := range selection {
		if !c.HasSkill(skill) {
			c.Skills = append(c.Skills, skill)
		}
	}
	return nil
}

// Reverse removes the picked skills.
func (h *ProficiencyHandler) Reverse(c *entities.Character, _ *Choice, selection []string, _ catalog.Store) error {
	kept := c.Skills[:0]
	for _, skill := range c.Skills {
		if !containsValue(selection, skill) {
			kept = append(kept, skill)
		}
	}
	c.Skills = kept
	return nil
}
