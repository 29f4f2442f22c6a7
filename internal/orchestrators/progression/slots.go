package progression

import (
	"sort"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

// syncSpellSlots recomputes every slot pool's maximum from the
// multiclass tables, preserving used counts (clamped to the new
// maximum). Pools whose maximum drops to zero are removed and new
// tiers are added unspent.
func syncSpellSlots(char *entities.Character, store catalog.Store) error {
	casterLevels := make([]rules.ClassCasterLevel, 0, len(char.Classes))
	for _, cl := range char.Classes {
		class, err := store.Class(cl.ClassSlug)
		if err != nil {
			return err
		}
		casterLevels = append(casterLevels, rules.ClassCasterLevel{
			Fraction: class.Caster,
			Level:    cl.Level,
		})
	}

	standard := rules.SpellSlots(casterLevels)
	pact := rules.PactMagic(casterLevels)

	var pools []*entities.SpellSlotPool
	for tier := 1; tier <= 9; tier++ {
		max := standard[tier-1]
		if max == 0 {
			continue
		}
		pool := char.Slot(entities.SlotTypeSpell, tier)
		if pool == nil {
			pool = &entities.SpellSlotPool{Type: entities.SlotTypeSpell, Level: tier}
		}
		pool.Max = max
		if pool.Used > max {
			pool.Used = max
		}
		pools = append(pools, pool)
	}
	if pact.Count > 0 {
		pool := char.Slot(entities.SlotTypePact, pact.Level)
		if pool == nil {
			// Pact slots upgrade their level as the warlock grows; carry
			// expenditure across the upgrade.
			used := 0
			for _, p := range char.Slots {
				if p.Type == entities.SlotTypePact {
					used = p.Used
				}
			}
			pool = &entities.SpellSlotPool{Type: entities.SlotTypePact, Level: pact.Level, Used: used}
		}
		pool.Max = pact.Count
		if pool.Used > pact.Count {
			pool.Used = pact.Count
		}
		pools = append(pools, pool)
	}

	sort.Slice(pools, func(i, j int) bool {
		if pools[i].Type != pools[j].Type {
			return pools[i].Type < pools[j].Type
		}
		return pools[i].Level < pools[j].Level
	})
	char.Slots = pools
	return nil
}

// slotViews projects the character's pools into the enriched view the
// level-up result carries.
func slotViews(char *entities.Character) []rules.SlotView {
	views := make([]rules.SlotView, 0, len(char.Slots))
	for _, pool := range char.Slots {
		views = append(views, rules.SlotView{
			Type:      pool.Type,
			Level:     pool.Level,
			Total:     pool.Max,
			Spent:     pool.Used,
			Available: pool.Remaining(),
		})
	}
	return views
}
