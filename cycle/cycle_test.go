package cycle

import (
	"testing"

	"github.com/siahbug/harmonica/pitch"
	"github.com/stretchr/testify/assert"
)

func TestCircleOfFifthsVisitsEverything(t *testing.T) {
	seq, err := Generate(0, []int{7}, 12, 0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(seq, []int{0, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10, 5})
}

func TestPartialOrbitIsNotAnError(t *testing.T) {
	// gcd(3, 12) != 1: the orbit is a strict subset
	seq, err := Generate(0, []int{3}, 12, 0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(seq, []int{0, 3, 6, 9})
}

func TestTriadStructureCloses(t *testing.T) {
	seq, err := Generate(0, []int{4, 3, 5}, 12, 0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(seq, []int{0, 4, 7})
}

func TestClosureRequiresGeneratorIndexAtStart(t *testing.T) {
	// 4+3 = 7 is coprime to 12, so the walk passes through 0 mid-round
	// and must keep going until both conditions hold, visiting all 12.
	seq, err := Generate(0, []int{4, 3}, 12, 0)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(seq, 12)
}

func TestClosureLaw(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		start     int
		generator int
		modulus   int
	}{
		{0, 7, 12},
		{3, 5, 12},
		{1, 2, 12},
		{0, 4, 19},
		{10, 9, 24},
	}
	for _, c := range cases {
		seq, err := Generate(c.start, []int{c.generator}, c.modulus, 0)
		assert.NoError(err)

		// one more application from the last visited pitch closes the loop
		alg, _ := pitch.NewAlgebra(c.modulus)
		assert.Equal(alg.Add(seq[len(seq)-1], c.generator), c.start)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	assert := assert.New(t)

	_, err := Generate(0, nil, 12, 0)
	assert.ErrorIs(err, ErrNoGenerators)

	_, err = Generate(0, []int{4, 0}, 12, 0)
	assert.ErrorIs(err, ErrZeroGenerator)

	_, err = Generate(12, []int{4}, 12, 0)
	assert.ErrorIs(err, pitch.ErrInvalidPitchClass)

	_, err = Generate(0, []int{4}, 0, 0)
	assert.ErrorIs(err, pitch.ErrInvalidModulus)
}

func TestTightBoundFailsToClose(t *testing.T) {
	_, err := Generate(0, []int{7}, 12, 3)
	assert.ErrorIs(t, err, ErrNonClosingCycle)
}

func TestStreamNeverExhausts(t *testing.T) {
	stream, err := NewStream(0, []int{4, 3}, 12)

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(stream.Finite())

	var got []int
	for i := 0; i < 5; i++ {
		set, ok := stream.Next()
		assert.True(ok)
		assert.Len(set, 1)
		got = append(got, set[0])
	}
	assert.Equal(got, []int{0, 4, 7, 11, 2})
}
