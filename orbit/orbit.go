package orbit

import (
	"github.com/siahbug/harmonica/model"
	"github.com/siahbug/harmonica/pitch"
	"github.com/siahbug/harmonica/util"
)

// Necklace returns the canonical representative of seq under cyclic
// rotation: the lexicographically smallest rotation, ties going to the
// smallest rotation offset. Enumerating all rotations is O(len^2), which is
// fine at chromatic sizes.
func Necklace(seq model.PCSequence, modulus int) (model.PCSequence, error) {
	alg, err := pitch.NewAlgebra(modulus)
	if err != nil {
		return nil, err
	}
	if err := alg.Validate(seq); err != nil {
		return nil, err
	}
	best := util.Rotate(seq, 0)
	for off := 1; off < len(seq); off++ {
		if rot := util.Rotate(seq, off); less(rot, best) {
			best = rot
		}
	}
	return best, nil
}

// Bracelet returns the canonical representative of seq under the dihedral
// group: the smaller of the necklace forms of seq and its reversal.
func Bracelet(seq model.PCSequence, modulus int) (model.PCSequence, error) {
	fwd, err := Necklace(seq, modulus)
	if err != nil {
		return nil, err
	}
	rev, err := Necklace(util.Reverse(seq), modulus)
	if err != nil {
		return nil, err
	}
	if less(rev, fwd) {
		return rev, nil
	}
	return fwd, nil
}

// Rotations returns all len(seq) rotations of seq, offset order.
func Rotations(seq model.PCSequence) []model.PCSequence {
	res := make([]model.PCSequence, len(seq))
	for off := range seq {
		res[off] = util.Rotate(seq, off)
	}
	return res
}

// EquivalentNecklace reports whether a and b are the same sequence up to
// rotation. Equivalence is exact: canonical forms either match or they
// don't.
func EquivalentNecklace(a, b model.PCSequence, modulus int) (bool, error) {
	ca, err := Necklace(a, modulus)
	if err != nil {
		return false, err
	}
	cb, err := Necklace(b, modulus)
	if err != nil {
		return false, err
	}
	return equal(ca, cb), nil
}

// EquivalentBracelet reports whether a and b are the same sequence up to
// rotation and reflection.
func EquivalentBracelet(a, b model.PCSequence, modulus int) (bool, error) {
	ca, err := Bracelet(a, modulus)
	if err != nil {
		return false, err
	}
	cb, err := Bracelet(b, modulus)
	if err != nil {
		return false, err
	}
	return equal(ca, cb), nil
}

// less compares pitch class sequences left to right as integers. Equal
// length is assumed; rotations and reversals preserve it.
func less(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
