package schedule

import (
	"errors"

	"github.com/siahbug/harmonica/rational"
)

var (
	ErrUnboundedGeneration = errors.New("neither generator nor bound is finite")
	ErrBadDuration         = errors.New("durations must be positive")
	ErrBadVelocity         = errors.New("velocity must lie in [0, 1]")
)

// Event is one timed musical happening: one or more pitch classes sounding
// together at an onset for a duration. Events are created by the scheduler
// and never mutated; transformations make new ones.
type Event struct {
	Pitches  []int
	Onset    rational.Rat
	Duration rational.Rat
	Velocity rational.Rat
}

// EventSequence is ordered by onset; events at equal onsets keep creation
// order. The scheduler only appends, so the order never needs re-sorting.
type EventSequence []Event

// TotalDuration is the onset past the final event, i.e. the sum of all
// durations under strict left-to-right packing.
func (es EventSequence) TotalDuration() rational.Rat {
	if len(es) == 0 {
		return rational.Zero()
	}
	last := es[len(es)-1]
	return last.Onset.Add(last.Duration)
}

// Transposed returns a copy with every pitch shifted by add (the caller
// wraps into pitch class range if needed).
func (es EventSequence) Transposed(add int) EventSequence {
	res := make(EventSequence, len(es))
	for i, e := range es {
		pitches := make([]int, len(e.Pitches))
		for j, p := range e.Pitches {
			pitches[j] = p + add
		}
		res[i] = Event{Pitches: pitches, Onset: e.Onset, Duration: e.Duration, Velocity: e.Velocity}
	}
	return res
}

// PitchGen produces successive pitch class sets; a set of size > 1 is a
// chord sounding at a single onset. Next reports false on exhaustion.
// Finite reports whether exhaustion can happen at all.
type PitchGen interface {
	Next() ([]int, bool)
	Finite() bool
}

// DurationGen produces successive durations.
type DurationGen interface {
	Next() (rational.Rat, bool)
	Finite() bool
}

// VelocityGen produces successive velocities in [0, 1].
type VelocityGen interface {
	Next() (rational.Rat, bool)
	Finite() bool
}

// Bound truncates generation. MaxEvents == 0 means no count bound; a nil
// MaxDuration means no duration bound. Generation stops once the next onset
// would reach MaxDuration. The duration bound applies to onsets, not ends:
// an event starting below MaxDuration is emitted whole, so the sequence's
// TotalDuration can exceed the bound by up to one duration.
type Bound struct {
	MaxEvents   int
	MaxDuration *rational.Rat
}

func (b Bound) finite() bool {
	return b.MaxEvents > 0 || b.MaxDuration != nil
}

// Schedule packs pitches against durations left to right: the onset of
// event i is the sum of durations 0..i-1. vg may be nil, in which case
// every event gets velocity 1.
//
// When the pitch and duration generators are both endless and the bound is
// empty, Schedule fails with ErrUnboundedGeneration instead of spinning.
func Schedule(pg PitchGen, dg DurationGen, vg VelocityGen, bound Bound) (EventSequence, error) {
	if !bound.finite() && !pg.Finite() && !dg.Finite() && (vg == nil || !vg.Finite()) {
		return nil, ErrUnboundedGeneration
	}

	var events EventSequence
	stream := NewStream(pg, dg, vg, bound)
	for {
		event, ok := stream.Next()
		if !ok {
			break
		}
		events = append(events, event)
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Stream produces events one pull at a time, so a finite prefix of an
// endless generative process can be consumed without materializing it.
// A consumer cancels by not calling Next again.
type Stream struct {
	pg    PitchGen
	dg    DurationGen
	vg    VelocityGen
	bound Bound

	onset   rational.Rat
	emitted int
	err     error
	done    bool
}

func NewStream(pg PitchGen, dg DurationGen, vg VelocityGen, bound Bound) *Stream {
	return &Stream{pg: pg, dg: dg, vg: vg, bound: bound, onset: rational.Zero()}
}

// Next returns the next event, or false when the stream is exhausted,
// bounded out, or stopped by an error (see Err).
func (s *Stream) Next() (Event, bool) {
	if s.done {
		return Event{}, false
	}
	if s.bound.MaxEvents > 0 && s.emitted >= s.bound.MaxEvents {
		s.done = true
		return Event{}, false
	}
	if s.bound.MaxDuration != nil && s.onset.Cmp(*s.bound.MaxDuration) >= 0 {
		s.done = true
		return Event{}, false
	}

	pitches, ok := s.pg.Next()
	if !ok {
		s.done = true
		return Event{}, false
	}
	duration, ok := s.dg.Next()
	if !ok {
		s.done = true
		return Event{}, false
	}
	if duration.Sign() <= 0 {
		s.done = true
		s.err = ErrBadDuration
		return Event{}, false
	}

	velocity := rational.One()
	if s.vg != nil {
		velocity, ok = s.vg.Next()
		if !ok {
			s.done = true
			return Event{}, false
		}
		if velocity.Sign() < 0 || velocity.Cmp(rational.One()) > 0 {
			s.done = true
			s.err = ErrBadVelocity
			return Event{}, false
		}
	}

	event := Event{
		Pitches:  pitches,
		Onset:    s.onset,
		Duration: duration,
		Velocity: velocity,
	}
	s.onset = s.onset.Add(duration)
	s.emitted++
	return event, true
}

// Err reports the validation failure that stopped the stream, if any.
func (s *Stream) Err() error { return s.err }
