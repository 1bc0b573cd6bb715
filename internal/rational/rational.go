// Package rational implements exact arbitrary-precision signed rational
// arithmetic for the simplex core. Every pivot in internal/simplex is
// computed through this package; no floating point ever enters the
// solve loop.
package rational

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrDivByZero is returned by Quo when the divisor is zero. The solver
// treats this as an internal bug (see simplex.ErrSingularPivot): the
// selector must never request a division that can hit it.
var ErrDivByZero = errors.New("rational: division by zero")

// maxDenominator bounds the denominator produced when approximating a
// decimal literal that doesn't convert exactly (spec.md allows any
// reasonable bound >= 1e6; decimal input is in practice always exact
// under big.Rat.SetString, so this only guards pathological input).
const maxDenominator = 1_000_000_000

// Rational is an exact signed rational number. The zero value is not
// usable; construct with Zero, FromInt, or ParseDecimal. Rational is a
// value type — Add/Sub/Mul/Quo/Neg/Abs never mutate either operand and
// always return a fresh *big.Rat. Copying a Rational (or a Term/Equation
// that embeds one) shares the internal *big.Rat with the original; since
// no operation mutates it, the copies behave as independent values.
type Rational struct {
	r *big.Rat
}

// Zero is the additive identity.
func Zero() Rational { return Rational{r: new(big.Rat)} }

// FromInt builds an integer-valued Rational.
func FromInt(n int64) Rational { return Rational{r: new(big.Rat).SetInt64(n)} }

// FromFrac builds the Rational num/den, reduced to lowest terms. Panics
// if den is zero; callers that accept untrusted denominators must check
// first (ParseDecimal never calls this with a zero denominator).
func FromFrac(num, den int64) Rational {
	if den == 0 {
		panic("rational: FromFrac with zero denominator")
	}
	return Rational{r: new(big.Rat).SetFrac64(num, den)}
}

// ParseDecimal converts a decimal literal (e.g. "3", "-2.5", "1/3") to
// an exact Rational. big.Rat.SetString already reduces to lowest terms
// and accepts both plain decimals and "num/den" fraction syntax, so the
// common case needs no bounded-denominator fallback; the fallback below
// only matters for literals big.Rat can't parse outright (it is not
// expected to trigger on any input shaped like spec.md §6 describes).
func ParseDecimal(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, errors.New("rational: empty literal")
	}
	r, ok := new(big.Rat).SetString(s)
	if ok {
		return Rational{r: r}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Rational{}, errors.Wrapf(err, "rational: cannot parse %q", s)
	}
	r = new(big.Rat).SetFloat64(f)
	if r == nil {
		return Rational{}, errors.Errorf("rational: cannot approximate %q", s)
	}
	if r.Denom().IsInt64() && r.Denom().Int64() > maxDenominator {
		num, den := bestApprox(f, maxDenominator)
		return Rational{r: new(big.Rat).SetFrac64(num, den)}, nil
	}
	return Rational{r: r}, nil
}

// bestApprox finds a fraction num/den approximating f with den bounded,
// via the standard continued-fraction convergent method.
func bestApprox(f float64, maxDen int64) (num, den int64) {
	neg := f < 0
	if neg {
		f = -f
	}
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	x := f
	for i := 0; i < 64; i++ {
		a := int64(x)
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDen {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac := x - float64(a)
		if frac < 1e-12 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 {
		k1 = 1
	}
	if neg {
		h1 = -h1
	}
	return h1, k1
}

func (a Rational) clone() *big.Rat { return new(big.Rat).Set(a.r) }

// Add returns a+b.
func (a Rational) Add(b Rational) Rational { return Rational{r: a.clone().Add(a.r, b.r)} }

// Sub returns a-b.
func (a Rational) Sub(b Rational) Rational { return Rational{r: a.clone().Sub(a.r, b.r)} }

// Mul returns a*b.
func (a Rational) Mul(b Rational) Rational { return Rational{r: a.clone().Mul(a.r, b.r)} }

// Quo returns a/b. Fails only when b is zero, per spec.md §4.1.
func (a Rational) Quo(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivByZero
	}
	return Rational{r: a.clone().Quo(a.r, b.r)}, nil
}

// Neg returns -a.
func (a Rational) Neg() Rational { return Rational{r: a.clone().Neg(a.r)} }

// Abs returns |a|.
func (a Rational) Abs() Rational { return Rational{r: a.clone().Abs(a.r)} }

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool { return a.r == nil || a.r.Sign() == 0 }

// Sign returns -1, 0, or +1.
func (a Rational) Sign() int {
	if a.r == nil {
		return 0
	}
	return a.r.Sign()
}

// Cmp compares a and b, returning -1, 0, or +1.
func (a Rational) Cmp(b Rational) int { return a.r.Cmp(b.r) }

// LessThan reports a < b.
func (a Rational) LessThan(b Rational) bool { return a.Cmp(b) < 0 }

// GreaterThan reports a > b.
func (a Rational) GreaterThan(b Rational) bool { return a.Cmp(b) > 0 }

// String renders a truncated decimal with 7 significant digits, per
// spec.md §4.1/§4.8. No intermediate rounding ever happens during
// pivoting; this is purely an output-time conversion.
func (a Rational) String() string {
	if a.r == nil {
		return "0"
	}
	return sevenSigFigs(a.r)
}

const sigFigs = 7

// magnitude returns e such that 10^e <= abs < 10^(e+1), computed with
// exact rational comparisons so the result never drifts the way a
// float log10 estimate could near a power-of-ten boundary.
func magnitude(abs *big.Rat) int {
	ten := big.NewRat(10, 1)
	one := big.NewRat(1, 1)
	work := new(big.Rat).Set(abs)
	e := 0
	for work.Cmp(one) < 0 {
		work.Mul(work, ten)
		e--
	}
	for work.Cmp(ten) >= 0 {
		work.Quo(work, ten)
		e++
	}
	return e
}

func sevenSigFigs(r *big.Rat) string {
	if r.Sign() == 0 {
		return "0"
	}
	neg := r.Sign() < 0
	abs := new(big.Rat).Abs(r)

	e := magnitude(abs)
	shift := sigFigs - 1 - e // multiply abs by 10^shift to land in [10^6, 10^7)

	ten := big.NewInt(10)
	scaled := new(big.Rat).Set(abs)
	if shift >= 0 {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(shift)), nil)
		scaled.Mul(scaled, new(big.Rat).SetInt(pow))
	} else {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(-shift)), nil)
		scaled.Quo(scaled, new(big.Rat).SetInt(pow))
	}
	// scaled is in [10^6, 10^7); truncating (not rounding) its
	// fractional part yields the 7 significant digits, per spec.md §4.1.
	digits := new(big.Int).Quo(scaled.Num(), scaled.Denom()).String()

	intDigitsCount := e + 1
	var out string
	switch {
	case intDigitsCount >= sigFigs:
		out = digits + strings.Repeat("0", intDigitsCount-sigFigs)
	case intDigitsCount >= 1:
		intPart := digits[:intDigitsCount]
		frac := strings.TrimRight(digits[intDigitsCount:], "0")
		if frac == "" {
			out = intPart
		} else {
			out = intPart + "." + frac
		}
	default:
		leadingZeros := -intDigitsCount
		frac := strings.TrimRight(digits, "0")
		if frac == "" {
			out = "0"
		} else {
			out = "0." + strings.Repeat("0", leadingZeros) + frac
		}
	}

	if neg && out != "0" {
		out = "-" + out
	}
	return out
}
