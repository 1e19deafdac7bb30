package solubility

import (
	"fmt"
	"sort"
)

// Precipitate tints, as hex colours.
const (
	TintNeutral = "#dddddd"
	TintBlue    = "#3498db"
)

// Substance is a solute with a fixed solubility curve.
type Substance struct {
	Key   string
	Name  string
	Curve Curve
	Tint  string
}

// Table holds the substances known to the simulator, in registration order.
type Table struct {
	substances map[string]Substance
	order      []string
}

func NewTable() *Table {
	return &Table{substances: make(map[string]Substance)}
}

// DefaultTable returns the built-in substances.
func DefaultTable() *Table {
	t := NewTable()
	for _, s := range []Substance{
		{Key: "NaNO3", Name: "sodium nitrate", Curve: Quadratic{A: 73, B: 0.9}},
		{Key: "KNO3", Name: "potassium nitrate", Curve: Quadratic{A: 13.3, B: 0.54, C: 0.0175}},
		{Key: "CuSO4", Name: "copper(II) sulfate", Curve: Quadratic{A: 14.3, B: 0.4}, Tint: TintBlue},
		{Key: "NaCl", Name: "sodium chloride", Curve: Quadratic{A: 35.7, B: 0.035}},
	} {
		// built-ins are always valid
		_ = t.Register(s)
	}
	return t
}

// Register adds s to the table, replacing any substance with the same key.
func (t *Table) Register(s Substance) error {
	if s.Key == "" {
		return fmt.Errorf("%w: empty substance key", ErrInvalidInput)
	}
	if s.Curve == nil {
		return fmt.Errorf("%w: substance %s has no curve", ErrInvalidCurve, s.Key)
	}
	if s.Name == "" {
		s.Name = s.Key
	}
	if s.Tint == "" {
		s.Tint = TintNeutral
	}
	if _, ok := t.substances[s.Key]; !ok {
		t.order = append(t.order, s.Key)
	}
	t.substances[s.Key] = s
	return nil
}

// Lookup returns the substance registered under key.
func (t *Table) Lookup(key string) (Substance, error) {
	s, ok := t.substances[key]
	if !ok {
		return Substance{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownSubstance, key, t.Sorted())
	}
	return s, nil
}

// Keys returns substance keys in registration order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// Sorted returns substance keys in lexical order.
func (t *Table) Sorted() []string {
	keys := t.Keys()
	sort.Strings(keys)
	return keys
}

// Next returns the key registered after key, wrapping around. An unknown
// key yields the first substance.
func (t *Table) Next(key string) string {
	if len(t.order) == 0 {
		return key
	}
	for i, k := range t.order {
		if k == key {
			return t.order[(i+1)%len(t.order)]
		}
	}
	return t.order[0]
}
