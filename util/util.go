package util

import (
	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) int {
	var total int
	for _, v := range nums {
		total += int(v)
	}
	return total
}

func Gcd[A constraints.Integer](a A, b A) A {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Rotate returns a copy of lst shifted left by n positions, wrapping.
func Rotate[A any](lst []A, n int) []A {
	if len(lst) == 0 {
		return nil
	}
	n = ((n % len(lst)) + len(lst)) % len(lst)
	res := make([]A, 0, len(lst))
	res = append(res, lst[n:]...)
	res = append(res, lst[:n]...)
	return res
}

func Reverse[A any](lst []A) []A {
	res := make([]A, len(lst))
	for i, v := range lst {
		res[len(lst)-1-i] = v
	}
	return res
}

// CycleDiff diffs a sorted set of residues as a circular permutation, the
// last interval wrapping around the modulus. [0,4,7] mod 12 -> [4,3,5].
func CycleDiff(cycle []int, mod int) []int {
	res := make([]int, 0, len(cycle))
	for i := 0; i < len(cycle)-1; i++ {
		res = append(res, cycle[i+1]-cycle[i])
	}
	res = append(res, cycle[0]+mod-cycle[len(cycle)-1])
	return res
}

// RepeatingSubseq returns the shortest prefix whose repetition spells out
// seq, or seq itself when it is aperiodic. [2,1,2,1] -> [2,1].
func RepeatingSubseq[A comparable](seq []A) []A {
	for size := 1; size < len(seq); size++ {
		if len(seq)%size != 0 {
			continue
		}
		ok := true
		for pos := size; pos < len(seq); pos++ {
			if seq[pos] != seq[pos-size] {
				ok = false
				break
			}
		}
		if ok {
			return seq[:size]
		}
	}
	return seq
}
