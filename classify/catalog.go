package classify

import "github.com/siahbug/harmonica/util"

// Well-known 12EDO structures, keyed by the canonical rotation of their
// circular interval pattern so that every mode of a scale (and every
// inversion of a chord class) shares one label.
var catalog = map[string]string{
	"1-1-1-1-1-1-1-1-1-1-1-1": "chromatic",
	"1-2-2-1-2-2-2":           "diatonic",
	"1-2-1-2-2-2-2":           "melodic minor",
	"1-2-1-2-2-1-3":           "harmonic minor",
	"2-2-3-2-3":               "pentatonic",
	"2-2-2-2-2-2":             "whole tone",
	"1-2-1-2-1-2-1-2":         "octatonic",
	"3-5-4":                   "major triad",
	"3-4-5":                   "minor triad",
	"3-3-6":                   "diminished triad",
	"4-4-4":                   "augmented triad",
	"2-4-3-3":                 "dominant seventh",
	"1-4-3-4":                 "major seventh",
	"2-3-4-3":                 "minor seventh",
	"2-3-3-4":                 "half-diminished seventh",
	"3-3-3-3":                 "diminished seventh",
}

func label(structure []int) string {
	return catalog[Key(minRotation(structure))]
}

func minRotation(intervals []int) []int {
	best := util.Rotate(intervals, 0)
	for off := 1; off < len(intervals); off++ {
		rot := util.Rotate(intervals, off)
		for i := range rot {
			if rot[i] != best[i] {
				if rot[i] < best[i] {
					best = rot
				}
				break
			}
		}
	}
	return best
}
