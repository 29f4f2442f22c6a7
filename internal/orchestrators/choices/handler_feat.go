package choices

import (
	"fmt"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// FeatHandler covers feat picks. A feat spends the same improvement
// slot as an ability score increase, so its choices mirror the asi
// handler's slots; resolving one consumes the shared counter and the
// other type's unresolved slot disappears with it.
type FeatHandler struct{}

var _ Handler = (*FeatHandler)(nil)

// Type returns the handler's choice type tag.
func (h *FeatHandler) Type() string { return "feat" }

// Pending lists one feat slot per reached improvement level per class.
func (h *FeatHandler) Pending(c *entities.Character, store catalog.Store) ([]Choice, error) {
	feats := store.Feats()
	options := make([]string, 0, len(feats))
	for _, f := range feats {
		options = append(options, f.Slug)
	}
	return asiSlotChoices(h.Type(), c, store, func(class *catalog.Class, level int) Choice {
		return Choice{
			Description: fmt.Sprintf("Feat (%s %d): take a feat instead of an ability score improvement", class.Name, level),
			Choose:      1,
			Options:     options,
		}
	})
}

// Validate checks the pick is a single known feat not already held.
func (h *FeatHandler) Validate(c *entities.Character, choice *Choice, selection []string) error {
	vb := errors.NewValidationBuilder()
	if len(selection) != 1 {
		vb.Fieldf("selection", "must pick exactly 1 feat, got %d", len(selection))
		return vb.Build()
	}
	slug := selection[0]
	if !containsValue(choice.Options, slug) {
		vb.Fieldf("selection", "unknown feat %s", slug)
	}
	if c.HasFeat(slug) && !containsValue(choice.Selection, slug) {
		vb.Fieldf("selection", "feat %s already taken", slug)
	}
	return vb.Build()
}

// Apply grants the feat, spends the improvement slot, and applies the
// feat's ability and hit point modifiers.
func (h *FeatHandler) Apply(c *entities.Character, choice *Choice, selection []string, store catalog.Store) error {
	if !choice.Resolved && c.AsiChoicesRemaining <= 0 {
		return errors.FailedPrecondition("no ability score improvement available")
	}
	feat, err := store.Feat(selection[0])
	if err != nil {
		return err
	}
	if c.HasFeat(feat.Slug) {
		return nil
	}
	for ability, delta := range feat.AbilityBonuses {
		if err := adjustAbility(c, store, ability, delta); err != nil {
			return err
		}
	}
	if feat.HPPerLevel != 0 && c.HPMode == entities.HPModeCalculated {
		gain := feat.HPPerLevel * c.TotalLevel()
		c.MaxHP += gain
		c.CurrentHP += gain
	}
	c.Feats = append(c.Feats, feat.Slug)
	c.AsiChoicesRemaining--
	return nil
}

// Reverse removes the feat and un-applies its modifiers.
func (h *FeatHandler) Reverse(c *entities.Character, _ *Choice, selection []string, store catalog.Store) error {
	feat, err := store.Feat(selection[0])
	if err != nil {
		return err
	}
	if !c.HasFeat(feat.Slug) {
		return nil
	}
	for ability, delta := range feat.AbilityBonuses {
		if err := adjustAbility(c, store, ability, -delta); err != nil {
			return err
		}
	}
	if feat.HPPerLevel != 0 && c.HPMode == entities.HPModeCalculated {
		loss := feat.HPPerLevel * c.TotalLevel()
		c.MaxHP -= loss
		if c.MaxHP < 1 {
			c.MaxHP = 1
		}
		if c.CurrentHP > c.MaxHP {
			c.CurrentHP = c.MaxHP
		}
	}
	kept := c.Feats[:0]
	for _, slug := range c.Feats {
		if slug != feat.Slug {
			kept = append(kept, slug)
		}
	}
	c.Feats = kept
	c.AsiChoicesRemaining++
	return nil
}
