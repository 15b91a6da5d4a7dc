package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyExpNoLevelUp(t *testing.T) {
	level := NewUserLevel(1)

	leveledUp := level.ApplyExp(50)

	assert.False(t, leveledUp)
	assert.Equal(t, 1, level.Level)
	assert.Equal(t, 50, level.CurrentExp)
	assert.Equal(t, 100, level.NextLevelThreshold)
}

func TestApplyExpSingleLevelUp(t *testing.T) {
	level := NewUserLevel(1)

	leveledUp := level.ApplyExp(100)

	assert.True(t, leveledUp)
	assert.Equal(t, 2, level.Level)
	assert.Equal(t, 0, level.CurrentExp)
	assert.Equal(t, 150, level.NextLevelThreshold)
}

func TestApplyExpMultiLevelRollOver(t *testing.T) {
	level := NewUserLevel(1)
	level.CurrentExp = 90

	// 90+250=340; 340-100=240 -> Lv2, threshold 150; 240-150=90 -> Lv3,
	// threshold 225; 90 < 225 stops the loop.
	leveledUp := level.ApplyExp(250)

	assert.True(t, leveledUp)
	assert.Equal(t, 3, level.Level)
	assert.Equal(t, 90, level.CurrentExp)
	assert.Equal(t, 225, level.NextLevelThreshold)
}

func TestApplyExpThresholdTruncates(t *testing.T) {
	level := UserLevel{Level: 2, CurrentExp: 140, NextLevelThreshold: 150}

	leveledUp := level.ApplyExp(10)

	assert.True(t, leveledUp)
	assert.Equal(t, 3, level.Level)
	assert.Equal(t, 0, level.CurrentExp)
	// 150 * 1.5 = 225, then 225 * 1.5 = 337.5 truncates on the next one
	assert.Equal(t, 225, level.NextLevelThreshold)

	level.ApplyExp(225)
	assert.Equal(t, 4, level.Level)
	assert.Equal(t, 337, level.NextLevelThreshold)
}

func TestApplyExpInvariantHolds(t *testing.T) {
	level := NewUserLevel(1)

	for _, gained := range []int{10, 100, 999, 1, 5000} {
		level.ApplyExp(gained)
		assert.GreaterOrEqual(t, level.CurrentExp, 0)
		assert.Less(t, level.CurrentExp, level.NextLevelThreshold)
	}
}
