package choices

import (
	"fmt"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// SpellHandler covers known-spell and spellbook picks declared by a
// class's spell choice specs, validated against the class spell list
// and the spec's level cap.
type SpellHandler struct{}

var _ Handler = (*SpellHandler)(nil)

// Type returns the handler's choice type tag.
func (h *SpellHandler) Type() string { return "spell" }

// Pending derives one choice per spell-choice spec per class the
// character has reached the spec's level in.
func (h *SpellHandler) Pending(c *entities.Character, store catalog.Store) ([]Choice, error) {
	var out []Choice
	for _, cl := range c.Classes {
		class, err := store.Class(cl.ClassSlug)
		if err != nil {
			return nil, err
		}
		for _, spec := range class.SpellChoices {
			if spec.Level > cl.Level {
				continue
			}
			options, err := h.options(class, spec, store)
			if err != nil {
				return nil, err
			}
			choice := Choice{
				ID: ChoiceID{
					Type:       h.Type(),
					Source:     SourceClass,
					SourceSlug: class.Slug,
					Level:      spec.Level,
					Group:      spec.Group,
				},
				Description: fmt.Sprintf("Choose %d %s spells of level %d or lower", spec.Choose, class.Name, spec.MaxLevel),
				Required:    true,
				Choose:      spec.Choose,
				Options:     options,
			}
			if record := c.Choice(choice.ID.String()); record != nil {
				choice.Resolved = true
				choice.Selection = record.Selections
			}
			out = append(out, choice)
		}
	}
	return out, nil
}

// options filters the class spell list by the spec's level cap,
// excluding cantrips.
func (h *SpellHandler) options(class *catalog.Class, spec catalog.SpellChoiceSpec, store catalog.Store) ([]string, error) {
	var out []string
	for _, slug := range class.SpellList {
		spell, err := store.Spell(slug)
		if err != nil {
			return nil, err
		}
		if spell.Level >= 1 && spell.Level <= spec.MaxLevel {
			out = append(out, spell.Slug)
		}
	}
	return out, nil
}

// Validate checks quantity, list membership, and that no spell is
// already known for the class through another record.
func (h *SpellHandler) Validate(c *entities.Character, choice *Choice, selection []string) error {
	vb := errors.NewValidationBuilder()
	if len(selection) != choice.Choose {
		vb.Fieldf("selection", "must pick exactly %d spells, got %d", choice.Choose, len(selection))
	}
	seen := map[string]bool{}
	for _, slug := range selection {
		if seen[slug] {
			vb.Fieldf("selection", "duplicate spell %s", slug)
			continue
		}
		seen[slug] = true
		if !containsValue(choice.Options, slug) {
			vb.Fieldf("selection", "spell %s is not an option for this choice", slug)
			continue
		}
		if knowsSpell(c, choice.ID.SourceSlug, slug) && !containsValue(choice.Selection, slug) {
			vb.Fieldf("selection", "spell %s already known", slug)
		}
	}
	return vb.Build()
}

// Apply records the picked spells as known for the class.
func (h *SpellHandler) Apply(c *entities.Character, choice *Choice, selection []string, _ catalog.Store) error {
	for _, slug := range selection {
		if !knowsSpell(c, choice.ID.SourceSlug, slug) {
			c.Spells = append(c.Spells, &entities.KnownSpell{
				SpellSlug: slug,
				ClassSlug: choice.ID.SourceSlug,
			})
		}
	}
	return nil
}

// Reverse forgets the picked spells.
func (h *SpellHandler) Reverse(c *entities.Character, choice *Choice, selection []string, _ catalog.Store) error {
	kept := c.Spells[:0]
	for _, sp := range c.Spells {
		if sp.ClassSlug == choice.ID.SourceSlug && containsValue(selection, sp.SpellSlug) {
			continue
		}
		kept = append(kept, sp)
	}
	c.Spells = kept
	return nil
}

func knowsSpell(c *entities.Character, classSlug, spellSlug string) bool {
	for _, sp := range c.Spells {
		if sp.ClassSlug == classSlug && sp.SpellSlug == spellSlug {
			return true
		}
	}
	return false
}
