package cycle

import (
	"errors"

	"github.com/siahbug/harmonica/model"
	"github.com/siahbug/harmonica/pitch"
)

var (
	ErrNoGenerators    = errors.New("at least one generator is required")
	ErrZeroGenerator   = errors.New("generators must be non-zero")
	ErrNonClosingCycle = errors.New("cycle did not close within the step bound")
)

// Generate walks pitch class space from start, applying the generators in
// round-robin order, until the walk returns to start with the generator
// index back at the front. Both conditions are required: when the generator
// sum does not divide evenly into the modulus, the walk can pass through
// start mid-round and keep going.
//
// The result holds the distinct pitch classes in order of first visit. It
// may be a strict subset of the modulus (gcd(sum, modulus) != 1); that is a
// property of the generators, not an error.
//
// maxSteps <= 0 selects the default bound of modulus * len(generators),
// which always suffices for integer generators.
func Generate(start int, generators []int, modulus, maxSteps int) (model.PCSequence, error) {
	alg, err := pitch.NewAlgebra(modulus)
	if err != nil {
		return nil, err
	}
	if err := alg.Validate([]int{start}); err != nil {
		return nil, err
	}
	if len(generators) == 0 {
		return nil, ErrNoGenerators
	}
	for _, g := range generators {
		if g == 0 {
			return nil, ErrZeroGenerator
		}
	}
	if maxSteps <= 0 {
		maxSteps = modulus * len(generators)
	}

	seq := model.PCSequence{start}
	seen := map[int]bool{start: true}

	cur := start
	gi := 0
	for steps := 0; ; steps++ {
		if steps >= maxSteps {
			return nil, ErrNonClosingCycle
		}
		cur = alg.Add(cur, generators[gi])
		gi = (gi + 1) % len(generators)
		if cur == start && gi == 0 {
			return seq, nil
		}
		if !seen[cur] {
			seen[cur] = true
			seq = append(seq, cur)
		}
	}
}

// Stream is an endless pitch source that keeps applying the generators
// round-robin, never terminating at closure. It implements the scheduler's
// pitch generator contract, so an interval-cycle melody can be pulled from
// indefinitely.
type Stream struct {
	alg        pitch.Algebra
	generators []int
	cur        int
	gi         int
	started    bool
}

func NewStream(start int, generators []int, modulus int) (*Stream, error) {
	alg, err := pitch.NewAlgebra(modulus)
	if err != nil {
		return nil, err
	}
	if err := alg.Validate([]int{start}); err != nil {
		return nil, err
	}
	if len(generators) == 0 {
		return nil, ErrNoGenerators
	}
	for _, g := range generators {
		if g == 0 {
			return nil, ErrZeroGenerator
		}
	}
	return &Stream{alg: alg, generators: generators, cur: start}, nil
}

// Next yields the start pitch first, then one new pitch per call. The
// second return value is always true; the stream never exhausts.
func (s *Stream) Next() ([]int, bool) {
	if !s.started {
		s.started = true
		return []int{s.cur}, true
	}
	s.cur = s.alg.Add(s.cur, s.generators[s.gi])
	s.gi = (s.gi + 1) % len(s.generators)
	return []int{s.cur}, true
}

// Finite reports whether the stream can exhaust. It cannot.
func (s *Stream) Finite() bool { return false }
