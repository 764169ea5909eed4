package classify

import (
	"testing"

	"github.com/siahbug/harmonica/pitch"
	"github.com/siahbug/harmonica/util"
	"github.com/stretchr/testify/assert"
)

func TestClassifyMajorTriad(t *testing.T) {
	classifier, _ := New(12)
	info, err := classifier.Classify([]int{0, 4, 7})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(info.CanonicalForm, []int{0, 4, 7})
	assert.Equal(info.Cardinality, 3)
	// one instance each of interval classes 3, 4 and 5
	assert.Equal(info.IntervalVector, []int{0, 0, 1, 1, 1, 0})
	assert.Equal(info.Structure, []int{4, 3, 5})
	assert.Equal(info.Label, "major triad")
	assert.NotEmpty(info.ID)
}

func TestClassifyIsIdempotentAcrossEquivalents(t *testing.T) {
	classifier, _ := New(12)

	first, err := classifier.Classify([]int{0, 4, 7})
	assert.NoError(t, err)
	second, err := classifier.Classify([]int{7, 0, 4})
	assert.NoError(t, err)

	assert.Equal(t, second, first)
}

func TestSeparateClassesGetSeparateIDs(t *testing.T) {
	classifier, _ := New(12)

	major, _ := classifier.Classify([]int{0, 4, 7})
	minor, _ := classifier.Classify([]int{0, 3, 7})

	assert.NotEqual(t, minor.ID, major.ID)
}

func TestDiatonicMetadata(t *testing.T) {
	classifier, _ := New(12)
	info, err := classifier.Classify([]int{0, 2, 4, 5, 7, 9, 11})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(info.IntervalVector, []int{2, 5, 4, 3, 6, 1})
	assert.Equal(info.Label, "diatonic")
	assert.Equal(info.NumModes, 7)
	assert.Equal(info.NumTranspositions, 12)
}

func TestPeriodicStructureHasFewerModes(t *testing.T) {
	classifier, _ := New(12)
	info, err := classifier.Classify([]int{0, 1, 3, 4, 6, 7, 9, 10})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(info.Label, "octatonic")
	assert.Equal(info.Prime, []int{1, 2})
	assert.Equal(info.NumModes, 2)
	assert.Equal(info.NumTranspositions, 3)
}

func TestIntervalVectorRotationReflectionInvariant(t *testing.T) {
	assert := assert.New(t)

	seq := []int{0, 2, 4, 5, 7, 9, 11}
	base, err := IntervalVector(seq, 12)
	assert.NoError(err)

	for off := 1; off < len(seq); off++ {
		v, err := IntervalVector(util.Rotate(seq, off), 12)
		assert.NoError(err)
		assert.Equal(v, base)
	}

	v, err := IntervalVector(util.Reverse(seq), 12)
	assert.NoError(err)
	assert.Equal(v, base)
}

func TestIntervalVectorIgnoresRepeats(t *testing.T) {
	assert := assert.New(t)

	with, err := IntervalVector([]int{0, 4, 7, 0, 4}, 12)
	assert.NoError(err)
	without, err := IntervalVector([]int{0, 4, 7}, 12)
	assert.NoError(err)
	assert.Equal(with, without)
}

func TestZRelatedClassesShareVectorNotClass(t *testing.T) {
	assert := assert.New(t)

	// the all-interval tetrachords
	a := []int{0, 1, 4, 6}
	b := []int{0, 1, 3, 7}

	va, err := IntervalVector(a, 12)
	assert.NoError(err)
	vb, err := IntervalVector(b, 12)
	assert.NoError(err)
	assert.Equal(vb, va)

	classifier, _ := New(12)
	ca, _ := classifier.Classify(a)
	cb, _ := classifier.Classify(b)
	assert.NotEqual(cb.CanonicalForm, ca.CanonicalForm)
	assert.NotEqual(cb.ID, ca.ID)
}

func TestClassifyRejectsBadInput(t *testing.T) {
	classifier, _ := New(12)

	assert := assert.New(t)
	_, err := classifier.Classify(nil)
	assert.ErrorIs(err, pitch.ErrEmptyStructure)
	_, err = classifier.Classify([]int{0, 13})
	assert.ErrorIs(err, pitch.ErrInvalidPitchClass)
}

func TestKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Key([]int{0, 4, 7}), "0-4-7")
	assert.Equal(Key([]int{11}), "11")
}

func TestOddModulusVector(t *testing.T) {
	v, err := IntervalVector([]int{0, 2, 4}, 7)

	assert := assert.New(t)
	assert.NoError(err)
	// pairs 0-2, 2-4, 0-4 fold to classes 2, 2 and 3
	assert.Equal(v, []int{0, 2, 1})
}
