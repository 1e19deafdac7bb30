package solubility

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Temperature domain of every curve, in °C.
const (
	MinTemp = 0.0
	MaxTemp = 100.0
)

// Curve maps a temperature in °C to grams of solute per 100 g of water.
type Curve interface {
	At(t float64) float64
	String() string
}

// Quadratic is a + b·t + c·t².
type Quadratic struct {
	A, B, C float64
}

func (q Quadratic) At(t float64) float64 {
	return nonNegative(q.A + q.B*t + q.C*t*t)
}

func (q Quadratic) String() string {
	s := fmt.Sprintf("%g", q.A)
	if q.B != 0 {
		s += fmt.Sprintf(" + %g·t", q.B)
	}
	if q.C != 0 {
		s += fmt.Sprintf(" + %g·t²", q.C)
	}
	return s
}

// Formula is a curve written as an expression in t, e.g. "13.3 + 0.54*t + 0.0175*t^2".
type Formula struct {
	src     string
	program *vm.Program
}

// NewFormula compiles src and checks that it yields a finite value over
// the whole temperature domain.
func NewFormula(src string) (*Formula, error) {
	program, err := expr.Compile(src, expr.Env(map[string]any{"t": 0.0}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCurve, src, err)
	}
	f := &Formula{src: src, program: program}
	for t := MinTemp; t <= MaxTemp; t++ {
		v, err := f.eval(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at t=%g: %v", ErrInvalidCurve, src, t, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q is not finite at t=%g", ErrInvalidCurve, src, t)
		}
	}
	return f, nil
}

func (f *Formula) eval(t float64) (float64, error) {
	out, err := expr.Run(f.program, map[string]any{"t": t})
	if err != nil {
		return 0, err
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("result %T is not a number", out)
	}
	return v, nil
}

func (f *Formula) At(t float64) float64 {
	v, err := f.eval(t)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return nonNegative(v)
}

func (f *Formula) String() string { return f.src }

// ClampTemp limits t to the curve domain.
func ClampTemp(t float64) float64 {
	return math.Max(MinTemp, math.Min(MaxTemp, t))
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
