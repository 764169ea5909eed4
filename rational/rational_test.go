package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReducesToLowestTerms(t *testing.T) {
	assert := assert.New(t)

	r, err := New(2, 4)
	assert.NoError(err)
	assert.Equal(r.Num(), int64(1))
	assert.Equal(r.Den(), int64(2))

	r, _ = New(3, -6)
	assert.Equal(r.Num(), int64(-1))
	assert.Equal(r.Den(), int64(2))
}

func TestNewRejectsZeroDenominator(t *testing.T) {
	_, err := New(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestAddCommutativeAssociative(t *testing.T) {
	a, _ := New(1, 4)
	b, _ := New(1, 3)
	c, _ := New(5, 6)

	assert := assert.New(t)
	assert.Equal(a.Add(b), b.Add(a))
	assert.Equal(a.Add(b).Add(c), a.Add(b.Add(c)))
}

func TestArithmeticStaysReduced(t *testing.T) {
	a, _ := New(1, 4)
	b, _ := New(1, 4)

	assert := assert.New(t)
	sum := a.Add(b)
	assert.Equal(sum.Num(), int64(1))
	assert.Equal(sum.Den(), int64(2))

	assert.Equal(a.MulInt(4), FromInt(1))
	assert.Equal(a.Sub(b), Zero())
}

func TestCmp(t *testing.T) {
	a, _ := New(1, 3)
	b, _ := New(1, 2)

	assert := assert.New(t)
	assert.Equal(a.Cmp(b), -1)
	assert.Equal(b.Cmp(a), 1)
	assert.Equal(a.Cmp(a), 0)
	assert.True(a.Less(b))
}

func TestZeroValueBehavesAsZero(t *testing.T) {
	var zero Rat
	half, _ := New(1, 2)

	assert := assert.New(t)
	assert.Equal(zero.Add(half), half)
	assert.Equal(zero.Sign(), 0)
	assert.Equal(zero.String(), "0")
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse("3/4")
	assert.NoError(err)
	assert.Equal(r.String(), "3/4")

	r, err = Parse("2")
	assert.NoError(err)
	assert.Equal(r, FromInt(2))

	_, err = Parse("1/0")
	assert.ErrorIs(err, ErrDivisionByZero)

	_, err = Parse("x")
	assert.Error(err)
}

func TestTicks(t *testing.T) {
	assert := assert.New(t)

	quarter, _ := New(1, 4)
	assert.Equal(quarter.Ticks(960), int64(240))

	third, _ := New(1, 3)
	assert.Equal(third.Ticks(960), int64(320))
}
