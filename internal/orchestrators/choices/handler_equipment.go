package choices

import (
	"fmt"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// EquipmentHandler covers starting-equipment option groups from the
// primary class: each group is one choice, the selection is a single
// option key, and applying grants the option's item bundle.
type EquipmentHandler struct{}

var _ Handler = (*EquipmentHandler)(nil)

// Type returns the handler's choice type tag.
func (h *EquipmentHandler) Type() string { return "equipment" }

// Pending derives one choice per equipment group on the primary class.
func (h *EquipmentHandler) Pending(c *entities.Character, store catalog.Store) ([]Choice, error) {
	primary := c.PrimaryClass()
	if primary == nil {
		return nil, nil
	}
	class, err := store.Class(primary.ClassSlug)
	if err != nil {
		return nil, err
	}

	var out []Choice
	for _, group := range class.EquipmentChoices {
		options := make([]string, 0, len(group.Options))
		for _, opt := range group.Options {
			options = append(options, opt.Key)
		}
		choice := Choice{
			ID: ChoiceID{
				Type:       h.Type(),
				Source:     SourceClass,
				SourceSlug: class.Slug,
				Level:      1,
				Group:      group.Group,
			},
			Description: fmt.Sprintf("Starting equipment (%s): choose your %s", class.Name, group.Group),
			Required:    true,
			Choose:      1,
			Options:     options,
		}
		if record := c.Choice(choice.ID.String()); record != nil {
			choice.Resolved = true
			choice.Selection = record.Selections
		}
		out = append(out, choice)
	}
	return out, nil
}

// Validate checks the selection is exactly one of the group's options.
func (h *EquipmentHandler) Validate(_ *entities.Character, choice *Choice, selection []string) error {
	vb := errors.NewValidationBuilder()
	if len(selection) != 1 {
		vb.Fieldf("selection", "must pick exactly 1 equipment option, got %d", len(selection))
		return vb.Build()
	}
	if !containsValue(choice.Options, selection[0]) {
		vb.Fieldf("selection", "option %s is not available for this choice", selection[0])
	}
	return vb.Build()
}

// Apply grants the chosen option's items.
func (h *EquipmentHandler) Apply(c *entities.Character, choice *Choice, selection []string, store catalog.Store) error {
	option, err := h.option(choice, selection[0], store)
	if err != nil {
		return err
	}
	for _, grant := range option.Items {
		addItem(c, grant.ItemSlug, grant.Quantity)
	}
	return nil
}

// Reverse removes the chosen option's items.
func (h *EquipmentHandler) Reverse(c *entities.Character, choice *Choice, selection []string, store catalog.Store) error {
	option, err := h.option(choice, selection[0], store)
	if err != nil {
		return err
	}
	for _, grant := range option.Items {
		removeItem(c, grant.ItemSlug, grant.Quantity)
	}
	return nil
}

func (h *EquipmentHandler) option(choice *Choice, key string, store catalog.Store) (*catalog.EquipmentOption, error) {
	class, err := store.Class(choice.ID.SourceSlug)
	if err != nil {
		return nil, err
	}
	for _, group := range class.EquipmentChoices {
		if group.Group != choice.ID.Group {
			continue
		}
		for i := range group.Options {
			if group.Options[i].Key == key {
				return &group.Options[i], nil
			}
		}
	}
	return nil, errors.NotFoundf("equipment option %s not found in group %s", key, choice.ID.Group)
}

func addItem(c *entities.Character, slug string, quantity int) {
	for _, item := range c.Equipment {
		if item.ItemSlug == slug {
			item.Quantity += quantity
			return
		}
	}
	c.Equipment = append(c.Equipment, &entities.EquipmentItem{ItemSlug: slug, Quantity: quantity})
}

func removeItem(c *entities.Character, slug string, quantity int) {
	kept := c.Equipment[:0]
	for _, item := range c.Equipment {
		if item.ItemSlug == slug {
			item.Quantity -= quantity
			if item.Quantity <= 0 {
				continue
			}
		}
		kept = append(kept, item)
	}
	c.Equipment = kept
}
