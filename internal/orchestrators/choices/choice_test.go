package choices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/choices"
)

func TestChoiceIDRoundTrip(t *testing.T) {
	id := choices.ChoiceID{
		Type:       "proficiency",
		Source:     "class",
		SourceSlug: "fighter",
		Level:      1,
		Group:      "skill_choice_1",
	}
	s := id.String()
	assert.Equal(t, "proficiency:class:fighter:1:skill_choice_1", s)

	parsed, err := choices.ParseChoiceID(s)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseChoiceID_Malformed(t *testing.T) {
	for _, bad := range []string{
		"",
		"proficiency",
		"proficiency:class:fighter:one:skill_choice_1",
		"proficiency:class:fighter:1",
		":class:fighter:1:skills",
	} {
		_, err := choices.ParseChoiceID(bad)
		assert.True(t, errors.IsInvalidArgument(err), "input %q", bad)
		meta := errors.GetMeta(err)
		require.NotNil(t, meta, "input %q", bad)
		assert.Equal(t, bad, meta["choice_id"], "input %q", bad)
	}
}
