// Package srd provides the in-memory reference catalog seeded with the
// System Reference Document subset the rules engine needs. The store is
// immutable after construction and safe for concurrent readers.
package srd

import (
	"sort"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// Store implements catalog.Store over the embedded SRD data.
type Store struct {
	classes map[string]*catalog.Class
	races   map[string]*catalog.Race
	feats   map[string]*catalog.Feat
	items   map[string]*catalog.Item
	skills  map[string]*catalog.Skill
	spells  map[string]*catalog.Spell
}

var _ catalog.Store = (*Store)(nil)

// New builds the SRD-backed catalog store.
func New() *Store {
	s := &Store{
		classes: make(map[string]*catalog.Class),
		races:   make(map[string]*catalog.Race),
		feats:   make(map[string]*catalog.Feat),
		items:   make(map[string]*catalog.Item),
		skills:  make(map[string]*catalog.Skill),
		spells:  make(map[string]*catalog.Spell),
	}

	for _, c := range classes {
		s.classes[c.Slug] = c
	}
	for _, r := range races {
		s.races[r.Slug] = r
	}
	for _, f := range feats {
		s.feats[f.Slug] = f
	}
	for _, i := range items {
		s.items[i.Slug] = i
	}
	for _, sk := range skills {
		s.skills[sk.Slug] = sk
	}
	for _, sp := range spells {
		s.spells[sp.Slug] = sp
	}

	return s
}

// Class looks up a class by slug
func (s *Store) Class(slug string) (*catalog.Class, error) {
	if c, ok := s.classes[slug]; ok {
		return c, nil
	}
	return nil, errors.NotFoundf("class %s not found", slug)
}

// Race looks up a race by slug
func (s *Store) Race(slug string) (*catalog.Race, error) {
	if r, ok := s.races[slug]; ok {
		return r, nil
	}
	return nil, errors.NotFoundf("race %s not found", slug)
}

// Feat looks up a feat by slug
func (s *Store) Feat(slug string) (*catalog.Feat, error) {
	if f, ok := s.feats[slug]; ok {
		return f, nil
	}
	return nil, errors.NotFoundf("feat %s not found", slug)
}

// Feats returns all feats sorted by slug
func (s *Store) Feats() []*catalog.Feat {
	out := make([]*catalog.Feat, 0, len(s.feats))
	for _, f := range s.feats {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Item looks up an item by slug
func (s *Store) Item(slug string) (*catalog.Item, error) {
	if i, ok := s.items[slug]; ok {
		return i, nil
	}
	return nil, errors.NotFoundf("item %s not found", slug)
}

// Skill looks up a skill by slug
func (s *Store) Skill(slug string) (*catalog.Skill, error) {
	if sk, ok := s.skills[slug]; ok {
		return sk, nil
	}
	return nil, errors.NotFoundf("skill %s not found", slug)
}

// Skills returns all skills sorted by slug
func (s *Store) Skills() []*catalog.Skill {
	out := make([]*catalog.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Spell looks up a spell by slug
func (s *Store) Spell(slug string) (*catalog.Spell, error) {
	if sp, ok := s.spells[slug]; ok {
		return sp, nil
	}
	return nil, errors.NotFoundf("spell %s not found", slug)
}
