package engine

// Clock tracks each player's remaining time budget (spec §4.9). It never
// reads a wall clock itself: callers supply elapsed durations, which
// keeps the engine deterministic and free of hidden I/O.
type Clock struct {
	budgetMS [2]int64
	limitMS  int64
}

// NewClock builds a Clock from rules.TurnTimeMS. A limit of zero means
// unlimited time; Charge and Expired are then always no-ops/false.
func NewClock(rules Rules) *Clock {
	return &Clock{
		budgetMS: [2]int64{rules.TurnTimeMS, rules.TurnTimeMS},
		limitMS:  rules.TurnTimeMS,
	}
}

// Unlimited reports whether this clock has no time limit configured.
func (c *Clock) Unlimited() bool {
	return c.limitMS <= 0
}

// Remaining returns p's remaining budget in milliseconds.
func (c *Clock) Remaining(p PlayerID) int64 {
	return c.budgetMS[p]
}

// Charge deducts elapsedMS from p's budget, floored at zero. It is a
// no-op on an unlimited clock.
func (c *Clock) Charge(p PlayerID, elapsedMS int64) {
	if c.Unlimited() {
		return
	}
	c.budgetMS[p] -= elapsedMS
	if c.budgetMS[p] < 0 {
		c.budgetMS[p] = 0
	}
}

// Expired reports whether p has run out of time. Always false on an
// unlimited clock.
func (c *Clock) Expired(p PlayerID) bool {
	if c.Unlimited() {
		return false
	}
	return c.budgetMS[p] <= 0
}
