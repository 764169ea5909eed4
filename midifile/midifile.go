package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	pkgerrors "github.com/pkg/errors"
	"github.com/siahbug/harmonica/pitch"
	"github.com/siahbug/harmonica/rational"
	"github.com/siahbug/harmonica/schedule"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultBasePitch places pitch class 0 on middle C.
const DefaultBasePitch = 60

const ticksPerBeat = 960

// ToSMF renders an event sequence into a single-track standard MIDI file.
// Pitch classes are placed at basePitch + pc; onsets and durations convert
// from exact beat fractions to ticks. At equal ticks, note offs are written
// before note ons so retriggered pitches do not cancel themselves.
func ToSMF(events schedule.EventSequence, tempo int, basePitch int) (*smf.SMF, error) {
	if tempo <= 0 {
		return nil, errors.New("tempo must be positive")
	}

	type rawEvent struct {
		tick int64
		off  bool
		key  uint8
		vel  uint8
	}

	var raw []rawEvent
	for _, e := range events {
		onTick := e.Onset.Ticks(ticksPerBeat)
		offTick := e.Onset.Add(e.Duration).Ticks(ticksPerBeat)
		vel := velocity127(e)
		for _, pc := range e.Pitches {
			key := basePitch + pc
			if key < 0 || key > 127 {
				return nil, errors.New("pitch out of midi range")
			}
			raw = append(raw, rawEvent{tick: onTick, key: uint8(key), vel: vel})
			raw = append(raw, rawEvent{tick: offTick, off: true, key: uint8(key)})
		}
	}

	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].tick != raw[j].tick {
			return raw[i].tick < raw[j].tick
		}
		return raw[i].off && !raw[j].off
	})

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(float64(tempo)))

	var lastTick int64
	for _, ev := range raw {
		delta := uint32(ev.tick - lastTick)
		if ev.off {
			tr.Add(delta, midi.NoteOff(0, ev.key))
		} else {
			tr.Add(delta, midi.NoteOn(0, ev.key, ev.vel))
		}
		lastTick = ev.tick
	}
	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)
	return &s, nil
}

// WriteFile renders events and writes the result to path.
func WriteFile(path string, events schedule.EventSequence, tempo int, basePitch int) error {
	s, err := ToSMF(events, tempo, basePitch)
	if err != nil {
		return err
	}
	if err := s.WriteFile(path); err != nil {
		return pkgerrors.Wrapf(err, "writing %v", path)
	}
	return nil
}

// ReadFile parses a standard MIDI file. The smf parser panics on some
// malformed files, so the panic is converted to an error here.
// https://github.com/gomidi/midi/issues/20
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, pkgerrors.Wrapf(err, "reading %v", path)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, pkgerrors.Wrapf(err, "parsing %v", path)
	}
	return res, nil
}

// ExtractSets sweeps every track's note on/off events in time order and
// snapshots the held pitches, reduced to pitch classes, each time a note
// starts. Consecutive identical sets collapse, so the result is the file's
// succession of distinct sounding pitch class sets.
func ExtractSets(s *smf.SMF, modulus int) ([][]int, error) {
	alg, err := pitch.NewAlgebra(modulus)
	if err != nil {
		return nil, err
	}

	type noteEvent struct {
		tick int64
		off  bool
		key  uint8
	}

	var all []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, vel uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &vel):
				all = append(all, noteEvent{tick: absTicks, key: key})
			case event.Message.GetNoteOff(&channel, &key, &vel):
				all = append(all, noteEvent{tick: absTicks, off: true, key: key})
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].tick != all[j].tick {
			return all[i].tick < all[j].tick
		}
		return all[i].off && !all[j].off
	})

	pressed := make(map[uint8]bool)
	var sets [][]int
	var prevKey string
	for i, evt := range all {
		if evt.off {
			delete(pressed, evt.key)
			continue
		}
		pressed[evt.key] = true

		// snapshot only once per tick, after all ons at that tick
		if i+1 < len(all) && all[i+1].tick == evt.tick && !all[i+1].off {
			continue
		}
		set := heldClasses(pressed, alg)
		if k := fmt.Sprintf("%v", set); k != prevKey {
			sets = append(sets, set)
			prevKey = k
		}
	}
	return sets, nil
}

func heldClasses(pressed map[uint8]bool, alg pitch.Algebra) []int {
	seen := make(map[int]bool)
	var set []int
	for key := range pressed {
		pc := alg.Add(int(key), 0)
		if !seen[pc] {
			seen[pc] = true
			set = append(set, pc)
		}
	}
	sort.Ints(set)
	return set
}

func velocity127(e schedule.Event) uint8 {
	// a zero-value Velocity is an unset one, not an explicit silence; it
	// gets the scheduler's default of full velocity rather than a vel-0
	// note on, which most receivers treat as a note off
	if e.Velocity == (rational.Rat{}) {
		return 127
	}
	v := e.Velocity.MulInt(127)
	n := v.Num() / v.Den()
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return uint8(n)
}
