package sim

import (
	"strconv"
	"strings"

	"github.com/san-kum/solsim/internal/solubility"
)

// Input ids, one per widget.
const (
	IDTemp      = "temp"
	IDWater     = "water"
	IDSolute    = "solute"
	IDSubstance = "substance"
)

// Source is anything that exposes widget values by id.
type Source interface {
	Value(id string) string
}

// Inputs holds the raw values of the four input widgets.
type Inputs struct {
	Temp      string
	Water     string
	Solute    string
	Substance string
}

// Read takes a fresh snapshot of the widget values.
func Read(src Source) Inputs {
	return Inputs{
		Temp:      src.Value(IDTemp),
		Water:     src.Value(IDWater),
		Solute:    src.Value(IDSolute),
		Substance: src.Value(IDSubstance),
	}
}

// FromState formats a model state as widget values.
func FromState(s solubility.State) Inputs {
	return Inputs{
		Temp:      strconv.FormatFloat(s.Temperature, 'f', -1, 64),
		Water:     strconv.FormatFloat(s.Solvent, 'f', -1, 64),
		Solute:    strconv.FormatFloat(s.Solute, 'f', -1, 64),
		Substance: s.Substance,
	}
}

// Parse converts the raw values into a model state. Non-numeric values
// yield an *solubility.InputError wrapping ErrInvalidInput.
func (in Inputs) Parse() (solubility.State, error) {
	temp, err := parseNumber(IDTemp, in.Temp)
	if err != nil {
		return solubility.State{}, err
	}
	water, err := parseNumber(IDWater, in.Water)
	if err != nil {
		return solubility.State{}, err
	}
	solute, err := parseNumber(IDSolute, in.Solute)
	if err != nil {
		return solubility.State{}, err
	}
	return solubility.State{
		Substance:   strings.TrimSpace(in.Substance),
		Temperature: temp,
		Solvent:     water,
		Solute:      solute,
	}, nil
}

func parseNumber(id, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &solubility.InputError{Field: id, Value: raw, Wrapped: solubility.ErrInvalidInput}
	}
	return v, nil
}
