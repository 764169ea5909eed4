package classify

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/siahbug/harmonica/model"
	"github.com/siahbug/harmonica/orbit"
	"github.com/siahbug/harmonica/pitch"
	"github.com/siahbug/harmonica/util"
)

// Classifier maps necklace classes to their derived metadata. Results are
// memoized per canonical form, so classifying two equivalent sequences
// returns identical metadata, including the assigned ID.
type Classifier struct {
	alg  pitch.Algebra
	memo map[string]model.ClassInfo
}

func New(modulus int) (*Classifier, error) {
	alg, err := pitch.NewAlgebra(modulus)
	if err != nil {
		return nil, err
	}
	return &Classifier{alg: alg, memo: make(map[string]model.ClassInfo)}, nil
}

func (c *Classifier) Modulus() int { return c.alg.Modulus }

func (c *Classifier) Classify(seq model.PCSequence) (model.ClassInfo, error) {
	canonical, err := orbit.Necklace(seq, c.alg.Modulus)
	if err != nil {
		return model.ClassInfo{}, err
	}

	k := Key(canonical)
	if info, ok := c.memo[k]; ok {
		return info, nil
	}

	set := distinct(canonical)
	vector, err := IntervalVector(set, c.alg.Modulus)
	if err != nil {
		return model.ClassInfo{}, err
	}
	structure := util.CycleDiff(set, c.alg.Modulus)
	prime := util.RepeatingSubseq(structure)

	info := model.ClassInfo{
		ID:                uuid.New().String(),
		CanonicalForm:     canonical,
		Cardinality:       len(set),
		IntervalVector:    vector,
		Structure:         structure,
		Prime:             prime,
		NumModes:          len(prime),
		NumTranspositions: util.Sum(prime),
		Label:             label(structure),
	}
	c.memo[k] = info
	return info, nil
}

// IntervalVector counts, for every unordered pair of distinct pitch classes
// in seq, the interval class of the pair, folded into [1, modulus/2].
// Repeated pitch classes contribute once: the vector is a set invariant.
//
// The vector survives rotation and reflection but does not pin down the
// necklace class; Z-related classes share a vector.
func IntervalVector(seq model.PCSequence, modulus int) ([]int, error) {
	alg, err := pitch.NewAlgebra(modulus)
	if err != nil {
		return nil, err
	}
	if err := alg.Validate(seq); err != nil {
		return nil, err
	}
	set := distinct(seq)
	vector := make([]int, modulus/2)
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			ic := alg.IntervalClass(set[i], set[j])
			vector[ic-1]++
		}
	}
	return vector, nil
}

// Key flattens a sequence into a stable map key, e.g. "0-4-7".
func Key(seq model.PCSequence) string {
	var res string
	for i, pc := range seq {
		res += fmt.Sprintf("%v", pc)
		if i < len(seq)-1 {
			res += "-"
		}
	}
	return res
}

func distinct(seq []int) []int {
	seen := make(map[int]bool)
	var res []int
	for _, pc := range seq {
		if !seen[pc] {
			seen[pc] = true
			res = append(res, pc)
		}
	}
	sort.Ints(res)
	return res
}
