package solubility

import (
	"fmt"
	"math"
)

// ReferenceSolvent is the solvent mass, in grams, that curves are quoted against.
const ReferenceSolvent = 100.0

const saturationTolerance = 1e-9

// Saturation classifies a solution relative to its solubility limit.
type Saturation int

const (
	Unsaturated Saturation = iota
	Saturated
	Supersaturated
)

func (s Saturation) String() string {
	switch s {
	case Unsaturated:
		return "unsaturated"
	case Saturated:
		return "saturated"
	case Supersaturated:
		return "supersaturated"
	}
	return fmt.Sprintf("saturation(%d)", int(s))
}

// State is one set of inputs to the model.
type State struct {
	Substance   string  `json:"substance"`
	Temperature float64 `json:"temperature"`
	Solvent     float64 `json:"solvent"`
	Solute      float64 `json:"solute"`
}

// Validate reports non-finite or negative values.
func (s State) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"temperature", s.Temperature},
		{"solvent", s.Solvent},
		{"solute", s.Solute},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &InputError{Field: f.name, Value: fmt.Sprint(f.v), Wrapped: ErrInvalidInput}
		}
	}
	if s.Solvent < 0 {
		return &InputError{Field: "solvent", Value: fmt.Sprint(s.Solvent), Wrapped: ErrInvalidInput}
	}
	if s.Solute < 0 {
		return &InputError{Field: "solute", Value: fmt.Sprint(s.Solute), Wrapped: ErrInvalidInput}
	}
	return nil
}

// Result is the model output for a State.
type Result struct {
	State          State      `json:"state"`
	PerHundred     float64    `json:"solubility_per_100g"`
	MaxDissolvable float64    `json:"max_dissolvable"`
	Precipitate    float64    `json:"precipitate"`
	Saturation     Saturation `json:"-"`
}

// Dissolved is the solute mass that stays in solution.
func (r Result) Dissolved() float64 {
	return r.State.Solute - r.Precipitate
}

// Relative is the solute load scaled to 100 g of water. A state with no
// water reports +Inf for any solute and 0 for none.
func (r Result) Relative() float64 {
	return Relative(r.State.Solute, r.State.Solvent)
}

// Relative scales solute to ReferenceSolvent grams of solvent.
func Relative(solute, solvent float64) float64 {
	if solvent <= 0 {
		if solute > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return solute / solvent * ReferenceSolvent
}

// MaxDissolvable scales a per-100 g solubility to the given solvent mass.
func MaxDissolvable(perHundred, solvent float64) float64 {
	return perHundred * solvent / ReferenceSolvent
}

// Precipitate is the solute mass beyond maxDissolvable. Never negative.
func Precipitate(solute, maxDissolvable float64) float64 {
	return math.Max(0, solute-maxDissolvable)
}

// Solubility returns grams of substance key per 100 g of water at t °C.
func (t *Table) Solubility(key string, temp float64) (float64, error) {
	s, err := t.Lookup(key)
	if err != nil {
		return 0, err
	}
	return s.Curve.At(ClampTemp(temp)), nil
}

// Evaluate runs the model for s. Temperatures outside the domain are clamped.
func (t *Table) Evaluate(s State) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	sub, err := t.Lookup(s.Substance)
	if err != nil {
		return Result{}, err
	}

	s.Temperature = ClampTemp(s.Temperature)
	per := sub.Curve.At(s.Temperature)
	maxSol := MaxDissolvable(per, s.Solvent)
	precip := Precipitate(s.Solute, maxSol)

	sat := Unsaturated
	switch {
	case math.Abs(s.Solute-maxSol) <= saturationTolerance:
		sat = Saturated
		precip = 0
	case precip > 0:
		sat = Supersaturated
	}

	return Result{
		State:          s,
		PerHundred:     per,
		MaxDissolvable: maxSol,
		Precipitate:    precip,
		Saturation:     sat,
	}, nil
}
