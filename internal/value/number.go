package value

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NumberKind tags which of the three tower variants a Number holds.
type NumberKind int

const (
	// KindInteger is a machine-word signed integer (spec.md §4.1).
	KindInteger NumberKind = iota
	// KindReal is an IEEE-754 double.
	KindReal
	// KindComplex is a pair of doubles (real, imaginary).
	KindComplex
)

// Num is the tagged numeric type saturating arithmetic in the
// interpreter. Promotion rules live in the arithmetic helpers below, not
// here: a Num never silently collapses across variants on its own.
type Num struct {
	Kind NumberKind
	Int  int64
	Re   float64
	Im   float64
}

// Int64 constructs an exact Integer.
func Int64(v int64) Num { return Num{Kind: KindInteger, Int: v} }

// Real constructs a Real from a float64.
func Real(v float64) Num { return Num{Kind: KindReal, Re: v} }

// Complex constructs a Complex from its real and imaginary parts.
func Complex(re, im float64) Num { return Num{Kind: KindComplex, Re: re, Im: im} }

// AsFloat returns the number widened to float64, valid for Integer and
// Real (Complex callers should use RealPart/ImagPart directly).
func (n Num) AsFloat() float64 {
	switch n.Kind {
	case KindInteger:
		return float64(n.Int)
	case KindReal:
		return n.Re
	default:
		return n.Re
	}
}

// RealPart returns the number's real component under any variant.
func (n Num) RealPart() float64 {
	if n.Kind == KindInteger {
		return float64(n.Int)
	}
	return n.Re
}

// ImagPart returns the number's imaginary component (0 unless Complex).
func (n Num) ImagPart() float64 {
	if n.Kind == KindComplex {
		return n.Im
	}
	return 0
}

// IsZero recognizes zero per variant, per spec.md §4.1: Integer 0, Real
// ±0.0, Complex (0.0, 0.0).
func (n Num) IsZero() bool {
	switch n.Kind {
	case KindInteger:
		return n.Int == 0
	case KindReal:
		return n.Re == 0
	default:
		return n.Re == 0 && n.Im == 0
	}
}

// IsReal reports whether the value can be compared as a real number: any
// Integer or Real, or a Complex whose imaginary part is exactly zero.
func (n Num) IsReal() bool {
	return n.Kind != KindComplex || n.Im == 0
}

func widestKind(a, b NumberKind) NumberKind {
	if a == KindComplex || b == KindComplex {
		return KindComplex
	}
	if a == KindReal || b == KindReal {
		return KindReal
	}
	return KindInteger
}

// Add promotes and adds two numbers per the table in spec.md §4.1.
func Add(a, b Num) Num {
	switch widestKind(a.Kind, b.Kind) {
	case KindInteger:
		return Int64(a.Int + b.Int)
	case KindReal:
		return Real(a.AsFloat() + b.AsFloat())
	default:
		return Complex(a.RealPart()+b.RealPart(), a.ImagPart()+b.ImagPart())
	}
}

// Sub promotes and subtracts b from a.
func Sub(a, b Num) Num {
	switch widestKind(a.Kind, b.Kind) {
	case KindInteger:
		return Int64(a.Int - b.Int)
	case KindReal:
		return Real(a.AsFloat() - b.AsFloat())
	default:
		return Complex(a.RealPart()-b.RealPart(), a.ImagPart()-b.ImagPart())
	}
}

// Mul promotes and multiplies two numbers.
func Mul(a, b Num) Num {
	switch widestKind(a.Kind, b.Kind) {
	case KindInteger:
		return Int64(a.Int * b.Int)
	case KindReal:
		return Real(a.AsFloat() * b.AsFloat())
	default:
		ar, ai, br, bi := a.RealPart(), a.ImagPart(), b.RealPart(), b.ImagPart()
		return Complex(ar*br-ai*bi, ar*bi+ai*br)
	}
}

// Div promotes and divides a by b. Integer/Integer truncates toward zero
// (spec.md §4.1); callers must check b.IsZero() first — Div does not
// itself signal ZeroDivisor so it can also serve exact-integer `/`.
func Div(a, b Num) Num {
	switch widestKind(a.Kind, b.Kind) {
	case KindInteger:
		return Int64(a.Int / b.Int)
	case KindReal:
		return Real(a.AsFloat() / b.AsFloat())
	default:
		ar, ai, br, bi := a.RealPart(), a.ImagPart(), b.RealPart(), b.ImagPart()
		denom := br*br + bi*bi
		return Complex((ar*br+ai*bi)/denom, (ai*br-ar*bi)/denom)
	}
}

// Neg negates a number in place of its own kind.
func Neg(a Num) Num {
	switch a.Kind {
	case KindInteger:
		return Int64(-a.Int)
	case KindReal:
		return Real(-a.Re)
	default:
		return Complex(-a.Re, -a.Im)
	}
}

// Equal tests mathematical equality after promotion (spec.md §4.1 `=`).
func Equal(a, b Num) bool {
	switch widestKind(a.Kind, b.Kind) {
	case KindInteger:
		return a.Int == b.Int
	case KindReal:
		return a.AsFloat() == b.AsFloat()
	default:
		return a.RealPart() == b.RealPart() && a.ImagPart() == b.ImagPart()
	}
}

// Less tests a < b for real-valued operands. The caller must have checked
// IsReal() on both operands first; unordered operands return false per
// the Open Question decision recorded in SPEC_FULL.md §4.
func Less(a, b Num) bool {
	return a.RealPart() < b.RealPart()
}

// LessEqual tests a <= b for real-valued operands.
func LessEqual(a, b Num) bool {
	return a.RealPart() <= b.RealPart()
}

var complexPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?P<real>[+-]?[0-9]+(\.[0-9]+)?)(?P<im>[+-][0-9]+(\.[0-9]+)?)i$`),
	regexp.MustCompile(`^(?P<real>[+-]?[0-9]+(\.[0-9]+)?)@(?P<ang>[+-]?[0-9]+(\.[0-9]+)?)$`),
	regexp.MustCompile(`^(?P<real>[+-]?[0-9]+(\.[0-9]+)?)[+-]i$`),
	regexp.MustCompile(`^(?P<im>[+-]?[0-9]+(\.[0-9]+)?)i$`),
	regexp.MustCompile(`^[+-]i$`),
}

// ParseNumber decodes a number-literal source string per spec.md §4.1 and
// §4.5, grounded on original_source/src/number.rs's TryFrom<&str> chain:
// plain integer, plain real (dot or exponent), then the polar/rectangular/
// signed-imaginary complex forms, in that order.
func ParseNumber(text string) (Num, error) {
	if iv, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int64(iv), nil
	}
	if !strings.ContainsAny(text, "ij@") {
		if fv, err := strconv.ParseFloat(text, 64); err == nil {
			return Real(fv), nil
		}
	}
	// polar form a@theta
	if m := complexPatterns[1].FindStringSubmatch(text); m != nil {
		r, _ := strconv.ParseFloat(namedGroup(complexPatterns[1], m, "real"), 64)
		theta, _ := strconv.ParseFloat(namedGroup(complexPatterns[1], m, "ang"), 64)
		return Complex(r*math.Cos(theta), r*math.Sin(theta)), nil
	}
	if text == "+i" {
		return Complex(0, 1), nil
	}
	if text == "-i" {
		return Complex(0, -1), nil
	}
	if m := complexPatterns[0].FindStringSubmatch(text); m != nil {
		re, _ := strconv.ParseFloat(namedGroup(complexPatterns[0], m, "real"), 64)
		im, _ := strconv.ParseFloat(namedGroup(complexPatterns[0], m, "im"), 64)
		return Complex(re, im), nil
	}
	if m := complexPatterns[2].FindStringSubmatch(text); m != nil {
		re, _ := strconv.ParseFloat(namedGroup(complexPatterns[2], m, "real"), 64)
		im := 1.0
		if strings.HasSuffix(text, "-i") {
			im = -1.0
		}
		return Complex(re, im), nil
	}
	if m := complexPatterns[3].FindStringSubmatch(text); m != nil {
		im, _ := strconv.ParseFloat(namedGroup(complexPatterns[3], m, "im"), 64)
		return Complex(0, im), nil
	}
	return Num{}, fmt.Errorf("invalid number literal: %s", text)
}

func namedGroup(re *regexp.Regexp, match []string, name string) string {
	for i, n := range re.SubexpNames() {
		if n == name && i < len(match) {
			return match[i]
		}
	}
	return ""
}

// Print renders a Number per spec.md §4.1/§6: Integer as decimal digits,
// Real via the platform's shortest round-trip format (still showing a
// decimal point for integer-valued reals, e.g. "3.0"), Complex as
// "a+bi"/"a-bi" with the +i/-i/purely-real/purely-imaginary collapses.
func (n Num) Print() string {
	switch n.Kind {
	case KindInteger:
		return strconv.FormatInt(n.Int, 10)
	case KindReal:
		return formatReal(n.Re)
	default:
		return formatComplex(n.Re, n.Im)
	}
}

func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func formatComplex(re, im float64) string {
	if im == 0 {
		return formatReal(re)
	}
	if re == 0 {
		if im == 1 {
			return "+i"
		}
		if im == -1 {
			return "-i"
		}
		return formatReal(im) + "i"
	}
	imStr := formatReal(im)
	if im == 1 {
		return formatReal(re) + "+i"
	}
	if im == -1 {
		return formatReal(re) + "-i"
	}
	if im > 0 {
		return formatReal(re) + "+" + imStr + "i"
	}
	return formatReal(re) + imStr + "i"
}
