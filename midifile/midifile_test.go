package midifile

import (
	"testing"

	"github.com/siahbug/harmonica/rational"
	"github.com/siahbug/harmonica/schedule"
	"github.com/stretchr/testify/assert"
)

func quarter() rational.Rat {
	r, _ := rational.New(1, 4)
	return r
}

func makeEvents(t *testing.T) schedule.EventSequence {
	events, err := schedule.Schedule(
		schedule.PitchList([]int{0, 4, 7}, []int{2}, []int{2}),
		schedule.CycleDurations(quarter()),
		nil,
		schedule.Bound{},
	)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	return events
}

func TestRoundTripThroughSMF(t *testing.T) {
	events := makeEvents(t)
	s, err := ToSMF(events, 120, DefaultBasePitch)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)

	sets, err := ExtractSets(s, 12)
	assert.NoError(err)
	// the two consecutive identical {2} events collapse into one set
	assert.Equal(sets, [][]int{{0, 4, 7}, {2}})
}

func TestChordWritesOneOnPerPitch(t *testing.T) {
	events := makeEvents(t)
	s, err := ToSMF(events, 120, DefaultBasePitch)

	assert := assert.New(t)
	assert.NoError(err)

	var ons, offs int
	for _, event := range s.Tracks[0] {
		var ch, key, vel uint8
		switch {
		case event.Message.GetNoteOn(&ch, &key, &vel):
			ons++
		case event.Message.GetNoteOff(&ch, &key, &vel):
			offs++
		}
	}
	assert.Equal(ons, 5)
	assert.Equal(offs, 5)
}

func TestZeroValueVelocityRendersFull(t *testing.T) {
	// hand-built events never went through the scheduler's velocity
	// default; an unset Velocity still renders audible
	events := schedule.EventSequence{
		{Pitches: []int{0}, Onset: rational.Zero(), Duration: quarter()},
	}
	s, err := ToSMF(events, 120, DefaultBasePitch)

	assert := assert.New(t)
	assert.NoError(err)

	var ons int
	for _, event := range s.Tracks[0] {
		var ch, key, vel uint8
		if event.Message.GetNoteOn(&ch, &key, &vel) {
			ons++
			assert.Equal(vel, uint8(127))
		}
	}
	assert.Equal(ons, 1)
}

func TestToSMFRejectsBadInput(t *testing.T) {
	events := makeEvents(t)

	assert := assert.New(t)
	_, err := ToSMF(events, 0, DefaultBasePitch)
	assert.Error(err)
	_, err = ToSMF(events, 120, 125)
	assert.Error(err)
}
