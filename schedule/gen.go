package schedule

import "github.com/siahbug/harmonica/rational"

// Cycling generators, after the itertools.cycle pattern the exploratory
// notebooks leaned on: each one loops its seed list forever.

type cyclePitches struct {
	sets [][]int
	i    int
}

// CyclePitches loops endlessly over the given pitch class sets.
func CyclePitches(sets ...[]int) PitchGen {
	return &cyclePitches{sets: sets}
}

func (c *cyclePitches) Next() ([]int, bool) {
	if len(c.sets) == 0 {
		return nil, false
	}
	set := c.sets[c.i%len(c.sets)]
	c.i++
	return set, true
}

func (c *cyclePitches) Finite() bool { return len(c.sets) == 0 }

type cycleRats struct {
	vals []rational.Rat
	i    int
}

func (c *cycleRats) Next() (rational.Rat, bool) {
	if len(c.vals) == 0 {
		return rational.Rat{}, false
	}
	v := c.vals[c.i%len(c.vals)]
	c.i++
	return v, true
}

func (c *cycleRats) Finite() bool { return len(c.vals) == 0 }

// CycleDurations loops endlessly over the given durations.
func CycleDurations(durs ...rational.Rat) DurationGen {
	return &cycleRats{vals: durs}
}

// CycleVelocities loops endlessly over the given velocities.
func CycleVelocities(vels ...rational.Rat) VelocityGen {
	return &cycleRats{vals: vels}
}

// One-shot generators: they run through their list once and exhaust.

type listPitches struct {
	sets [][]int
	i    int
}

// PitchList yields each pitch class set once, in order.
func PitchList(sets ...[]int) PitchGen {
	return &listPitches{sets: sets}
}

func (l *listPitches) Next() ([]int, bool) {
	if l.i >= len(l.sets) {
		return nil, false
	}
	set := l.sets[l.i]
	l.i++
	return set, true
}

func (l *listPitches) Finite() bool { return true }

type listRats struct {
	vals []rational.Rat
	i    int
}

func (l *listRats) Next() (rational.Rat, bool) {
	if l.i >= len(l.vals) {
		return rational.Rat{}, false
	}
	v := l.vals[l.i]
	l.i++
	return v, true
}

func (l *listRats) Finite() bool { return true }

// DurationList yields each duration once, in order.
func DurationList(durs ...rational.Rat) DurationGen {
	return &listRats{vals: durs}
}
