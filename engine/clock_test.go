package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockUnlimitedByDefault(t *testing.T) {
	c := NewClock(DefaultRules())
	assert.True(t, c.Unlimited())
	c.Charge(0, 999999)
	assert.False(t, c.Expired(0))
}

func TestClockChargeAndExpire(t *testing.T) {
	rules := DefaultRules()
	rules.TurnTimeMS = 1000
	c := NewClock(rules)

	c.Charge(0, 400)
	assert.Equal(t, int64(600), c.Remaining(0))
	assert.False(t, c.Expired(0))

	c.Charge(0, 700)
	assert.Equal(t, int64(0), c.Remaining(0), "charge floors at zero")
	assert.True(t, c.Expired(0))
}

func TestClockPlayersAreIndependent(t *testing.T) {
	rules := DefaultRules()
	rules.TurnTimeMS = 1000
	c := NewClock(rules)

	c.Charge(0, 1000)
	assert.True(t, c.Expired(0))
	assert.False(t, c.Expired(1))
	assert.Equal(t, int64(1000), c.Remaining(1))
}
