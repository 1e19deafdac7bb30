package tui

import (
	"strconv"
	"strings"
)

// slider is a numeric input. raw holds exactly what the user entered so
// that invalid text reaches the update pipeline unchanged.
type slider struct {
	id     string
	label  string
	unit   string
	min    float64
	max    float64
	step   float64
	coarse float64
	raw    string
}

func (s slider) value() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.raw), 64)
	if err != nil || v != v {
		return 0, false
	}
	return v, true
}

// fraction is the knob position in [0, 1].
func (s slider) fraction() float64 {
	v, ok := s.value()
	if !ok || s.max <= s.min {
		return 0
	}
	return (v - s.min) / (s.max - s.min)
}

func (s *slider) set(v float64) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.raw = strconv.FormatFloat(v, 'f', -1, 64)
}

// nudge moves the value by delta. An unparseable value restarts from min.
func (s *slider) nudge(delta float64) {
	v, ok := s.value()
	if !ok {
		v = s.min
	}
	s.set(v + delta)
}

// selector picks one of a fixed list of options. unknown holds a value
// that is not in the list until the user picks a real option.
type selector struct {
	id      string
	label   string
	options []string
	idx     int
	unknown string
}

func (s selector) value() string {
	if s.unknown != "" {
		return s.unknown
	}
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.idx]
}

func (s *selector) cycle(dir int) {
	if len(s.options) == 0 {
		return
	}
	if s.unknown != "" {
		s.unknown = ""
		return
	}
	s.idx = (s.idx + dir + len(s.options)) % len(s.options)
}

func (s *selector) selectValue(v string) bool {
	for i, o := range s.options {
		if o == v {
			s.idx, s.unknown = i, ""
			return true
		}
	}
	s.unknown = v
	return false
}
