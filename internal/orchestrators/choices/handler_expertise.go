package choices

import (
	"fmt"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// ExpertiseHandler covers expertise grants: rogues and bards pick
// proficient skills whose proficiency bonus doubles on checks.
type ExpertiseHandler struct{}

var _ Handler = (*ExpertiseHandler)(nil)

// Type returns the handler's choice type tag.
func (h *ExpertiseHandler) Type() string { return "expertise" }

// Pending lists one choice per reached expertise grant per class. The
// options are the skills the character is proficient in, minus skills
// already under expertise through another choice.
func (h *ExpertiseHandler) Pending(c *entities.Character, store catalog.Store) ([]Choice, error) {
	var out []Choice
	for _, cl := range c.Classes {
		class, err := store.Class(cl.ClassSlug)
		if err != nil {
			return nil, err
		}
		for _, spec := range class.ExpertiseChoices {
			if spec.Level > cl.Level {
				continue
			}
			choice := Choice{
				ID: ChoiceID{
					Type:       h.Type(),
					Source:     SourceClass,
					SourceSlug: class.Slug,
					Level:      spec.Level,
					Group:      spec.Group,
				},
				Description: fmt.Sprintf("Expertise (%s %d): choose %d proficient skills", class.Name, spec.Level, spec.Choose),
				Required:    true,
				Choose:      spec.Choose,
			}
			if record := c.Choice(choice.ID.String()); record != nil {
				choice.Resolved = true
				choice.Selection = record.Selections
			}
			for _, skill := range c.Skills {
				if !c.HasExpertise(skill) || containsValue(choice.Selection, skill) {
					choice.Options = append(choice.Options, skill)
				}
			}
			out = append(out, choice)
		}
	}
	return out, nil
}

// Validate checks quantity, proficiency, and that no picked skill
// already carries expertise from another source.
func (h *ExpertiseHandler) Validate(c *entities.Character, choice *Choice, selection []string) error {
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
		if !c.HasSkill(skill) {
			vb.Fieldf("selection", "not proficient in %s", skill)
			continue
		}
		if c.HasExpertise(skill) && !containsValue(choice.Selection, skill) {
			vb.Fieldf("selection", "already has expertise in %s", skill)
		}
	}
	return vb.Build()
}

// Apply marks the picked skills as expertise skills.
func (h *ExpertiseHandler) Apply(c *entities.Character, _ *Choice, selection []string, _ catalog.Store) error {
	for _, skill := range selection {
		if !c.HasExpertise(skill) {
			c.Expertise = append(c.Expertise, skill)
		}
	}
	return nil
}

// Reverse clears expertise on the picked skills.
func (h *ExpertiseHandler) Reverse(c *entities.Character, _ *Choice, selection []string, _ catalog.Store) error {
	kept := c.Expertise[:0]
	for _, skill := range c.Expertise {
		if !containsValue(selection, skill) {
			kept = append(kept, skill)
		}
	}
	c.Expertise = kept
	return nil
}
