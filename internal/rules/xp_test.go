package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/rules"
)

func TestXPLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{299, 1},
		{300, 2},
		{900, 3},
		{6500, 5},
		{14000, 6},
		{100000, 12},
		{354999, 19},
		{355000, 20},
		{1000000, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.XPLevel(tt.xp), "xp %d", tt.xp)
	}
}

func TestXPLevel_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xp := rapid.IntRange(0, 400000).Draw(t, "xp")
		gain := rapid.IntRange(0, 10000).Draw(t, "gain")
		assert.LessOrEqual(t, rules.XPLevel(xp), rules.XPLevel(xp+gain))
	})
}

func TestComputeXPProgress(t *testing.T) {
	p := rules.ComputeXPProgress(450)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 900, p.NextLevelXP)
	assert.Equal(t, 450, p.XPToNextLevel)
	assert.Equal(t, 25, p.ProgressPercent)
}

func TestComputeXPProgress_MaxLevel(t *testing.T) {
	p := rules.ComputeXPProgress(400000)
	assert.Equal(t, 20, p.Level)
	assert.Zero(t, p.NextLevelXP)
	assert.Zero(t, p.XPToNextLevel)
	assert.Equal(t, 100, p.ProgressPercent)
}

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 0, rules.XPForLevel(1))
	assert.Equal(t, 2700, rules.XPForLevel(4))
	assert.Equal(t, 355000, rules.XPForLevel(20))
}
