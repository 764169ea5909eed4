package rational

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrDivisionByZero = errors.New("zero denominator")

// Rat is an exact fraction. It is always held in lowest terms with a
// positive denominator, and the zero value behaves as 0. Everything in the
// time path uses Rat; floating point would accumulate error across
// generative steps.
type Rat struct {
	num, den int64
}

func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrDivisionByZero
	}
	return reduce(num, den), nil
}

func FromInt(n int64) Rat {
	return Rat{num: n, den: 1}
}

func Zero() Rat { return Rat{num: 0, den: 1} }

func One() Rat { return Rat{num: 1, den: 1} }

// Parse reads "3/4" or a bare integer like "2".
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if num, den, found := strings.Cut(s, "/"); found {
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return Rat{}, fmt.Errorf("bad numerator %q", num)
		}
		d, err := strconv.ParseInt(den, 10, 64)
		if err != nil {
			return Rat{}, fmt.Errorf("bad denominator %q", den)
		}
		return New(n, d)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("bad rational %q", s)
	}
	return FromInt(n), nil
}

func reduce(num, den int64) Rat {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	return Rat{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func (r Rat) Num() int64 { return r.num }

func (r Rat) Den() int64 { return r.d() }

// d guards the zero value, which has den == 0 but means 0/1.
func (r Rat) d() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

func (r Rat) Add(o Rat) Rat {
	return reduce(r.num*o.d()+o.num*r.d(), r.d()*o.d())
}

func (r Rat) Sub(o Rat) Rat {
	return reduce(r.num*o.d()-o.num*r.d(), r.d()*o.d())
}

func (r Rat) MulInt(n int64) Rat {
	return reduce(r.num*n, r.d())
}

func (r Rat) Mul(o Rat) Rat {
	return reduce(r.num*o.num, r.d()*o.d())
}

// Cmp returns -1, 0 or 1 as r is less than, equal to or greater than o.
func (r Rat) Cmp(o Rat) int {
	lhs := r.num * o.d()
	rhs := o.num * r.d()
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func (r Rat) Less(o Rat) bool { return r.Cmp(o) < 0 }

func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Ticks converts a beat fraction to MIDI ticks at the given resolution,
// truncating any sub-tick remainder.
func (r Rat) Ticks(perBeat int64) int64 {
	return r.num * perBeat / r.d()
}

func (r Rat) String() string {
	if r.d() == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.d())
}
