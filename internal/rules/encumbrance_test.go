package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

func TestComputeEncumbrance(t *testing.T) {
	tests := []struct {
		name     string
		strength int
		weight   float64
		status   string
		penalty  int
	}{
		{"unencumbered", 10, 40, rules.EncumbranceNone, 0},
		{"at threshold still fine", 10, 50, rules.EncumbranceNone, 0},
		{"str 10 carrying 55", 10, 55, rules.EncumbranceLight, 10},
		{"heavily encumbered", 10, 101, rules.EncumbranceHeavy, 20},
		{"strong character", 18, 85, rules.EncumbranceNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := rules.ComputeEncumbrance(tt.strength, tt.weight)
			assert.Equal(t, tt.status, enc.Status)
			assert.Equal(t, tt.penalty, enc.SpeedPenalty)
			assert.Equal(t, tt.strength*5, enc.ThresholdEncumbered)
			assert.Equal(t, tt.strength*10, enc.ThresholdHeavy)
		})
	}
}

func TestComputeEncumbrance_Disadvantage(t *testing.T) {
	assert.False(t, rules.ComputeEncumbrance(10, 55).Disadvantage)
	assert.True(t, rules.ComputeEncumbrance(10, 120).Disadvantage)
}

func TestComputeEncumbrance_StatusOrdering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		str := rapid.IntRange(1, 30).Draw(t, "str")
		weight := rapid.Float64Range(0, 500).Draw(t, "weight")
		enc := rules.ComputeEncumbrance(str, weight)
		switch enc.Status {
		case rules.EncumbranceNone:
			assert.LessOrEqual(t, weight, float64(enc.ThresholdEncumbered))
		case rules.EncumbranceLight:
			assert.Greater(t, weight, float64(enc.ThresholdEncumbered))
			assert.LessOrEqual(t, weight, float64(enc.ThresholdHeavy))
		case rules.EncumbranceHeavy:
			assert.Greater(t, weight, float64(enc.ThresholdHeavy))
		}
	})
}
