// Package choices implements the choice resolution orchestrator: pending
// choices are materialized on demand from the character's current grants,
// resolved by writing a selection record and applying its effects, and
// undone by reversing them.
package choices

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

// Choice sources
const (
	SourceRace  = "race"
	SourceClass = "class"
	SourceFeat  = "feat"
)

// ChoiceID is the composite identity of a choice. It is derivable both
// when listing pending choices and when resolving one; there is no
// hidden generated identity.
type ChoiceID struct {
	Type       string
	Source     string
	SourceSlug string
	Level      int
	Group      string
}

// String renders the colon-separated wire form,
// e.g. "proficiency:class:fighter:1:skill_choice_1".
func (id ChoiceID) String() string {
	return fmt.Sprintf("%s:%s:%s:%d:%s", id.Type, id.Source, id.SourceSlug, id.Level, id.Group)
}

// ParseChoiceID parses the wire form of a choice ID.
func ParseChoiceID(s string) (ChoiceID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return ChoiceID{}, errors.InvalidArgumentf(
			"invalid choice ID %q: expected type:source:source_slug:level:group", s).
			WithMeta("choice_id", s)
	}
	level, err := strconv.Atoi(parts[3])
	if err != nil {
		return ChoiceID{}, errors.InvalidArgumentf("invalid choice ID %q: level must be an integer", s).
			WithMeta("choice_id", s)
	}
	for i, part := range parts {
		if part == "" && i != 4 {
			return ChoiceID{}, errors.InvalidArgumentf("invalid choice ID %q: empty segment", s).
				WithMeta("choice_id", s)
		}
	}
	return ChoiceID{
		Type:       parts[0],
		Source:     parts[1],
		SourceSlug: parts[2],
		Level:      level,
		Group:      parts[4],
	}, nil
}

// Choice is one live decision derived from the character's grants,
// together with its resolution state.
type Choice struct {
	ID          ChoiceID
	Description string
	Required    bool
	// Choose is how many values a valid selection contains.
	Choose int
	// Options are the allowed values; empty means the handler validates
	// selections without a fixed option list.
	Options []string
	// Resolved and Selection reflect the character's recorded choice.
	Resolved  bool
	Selection []string
}

// sameSelection compares two selections ignoring order.
func sameSelection(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// containsValue reports whether a selection holds the given value.
func containsValue(selection []string, value string) bool {
	for _, v := range selection {
		if v == value {
			return true
		}
	}
	return false
}
