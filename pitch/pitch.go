package pitch

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidModulus    = errors.New("modulus must be a positive integer")
	ErrInvalidPitchClass = errors.New("pitch class out of range")
	ErrEmptyStructure    = errors.New("sequence must contain at least one pitch class")
)

// names for the standard 12-tone modulus, flats only
var pitchKey = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// Algebra does pitch class arithmetic under a fixed modulus. The modulus is
// immutable once constructed; every operation wraps into [0, Modulus).
type Algebra struct {
	Modulus int
}

func NewAlgebra(modulus int) (Algebra, error) {
	if modulus <= 0 {
		return Algebra{}, ErrInvalidModulus
	}
	return Algebra{Modulus: modulus}, nil
}

// Add wraps a+b into [0, Modulus). Either operand may be negative.
func (a Algebra) Add(x, y int) int {
	m := ((x + y) % a.Modulus)
	if m < 0 {
		m += a.Modulus
	}
	return m
}

// Difference returns the signed shortest path from x to y, in the range
// (-Modulus/2, Modulus/2]. For modulus 12, Difference(0, 7) is -5.
func (a Algebra) Difference(x, y int) int {
	d := a.Add(y, -x)
	if d > a.Modulus/2 {
		d -= a.Modulus
	}
	return d
}

// IntervalClass folds the interval between two pitch classes into
// [0, Modulus/2], the unordered distance on the pitch class circle.
func (a Algebra) IntervalClass(x, y int) int {
	d := a.Add(y, -x)
	if d > a.Modulus-d {
		d = a.Modulus - d
	}
	return d
}

// Transpose returns a transposed copy of seq.
func (a Algebra) Transpose(seq []int, t int) []int {
	res := make([]int, len(seq))
	for i, pc := range seq {
		res[i] = a.Add(pc, t)
	}
	return res
}

// Validate checks that seq is non-empty and every pitch class lies in
// [0, Modulus).
func (a Algebra) Validate(seq []int) error {
	if len(seq) == 0 {
		return ErrEmptyStructure
	}
	for _, pc := range seq {
		if pc < 0 || pc >= a.Modulus {
			return ErrInvalidPitchClass
		}
	}
	return nil
}

// ClassName returns the letter name of a pitch class for modulus 12, or the
// bare number for any other modulus.
func ClassName(pc int, modulus int) string {
	if modulus == 12 && pc >= 0 && pc < 12 {
		return pitchKey[pc]
	}
	return strconv.Itoa(pc)
}
