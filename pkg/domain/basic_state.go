package domain

import (
	"fmt"
	"maps"

	"github.com/mitchellh/mapstructure"
)

// BasicState is a general purpose State with boolean flags, integer values
// and string notes. Never-set keys read as the zero value.
//
// Hosts with richer domains should embed Base in their own type instead.
type BasicState struct {
	Base

	flags  map[string]bool
	values map[string]int
	notes  map[string]string
}

// NewBasicState creates an empty state.
func NewBasicState() *BasicState {
	return &BasicState{
		flags:  make(map[string]bool),
		values: make(map[string]int),
		notes:  make(map[string]string),
	}
}

// Clear removes every key. The active scenario is left untouched.
func (s *BasicState) Clear() {
	clear(s.flags)
	clear(s.values)
	clear(s.notes)
}

// SetFlag sets a boolean flag.
func (s *BasicState) SetFlag(name string, value bool) {
	if s.flags == nil {
		s.flags = make(map[string]bool)
	}
	s.flags[name] = value
}

// Flag returns the flag value, or false if it was never set.
func (s *BasicState) Flag(name string) bool {
	return s.flags[name]
}

// SetValue sets an integer value.
func (s *BasicState) SetValue(name string, value int) {
	if s.values == nil {
		s.values = make(map[string]int)
	}
	s.values[name] = value
}

// Value returns the integer value, or 0 if it was never set.
func (s *BasicState) Value(name string) int {
	return s.values[name]
}

// AddValue adds delta to a value and returns the result.
func (s *BasicState) AddValue(name string, delta int) int {
	v := s.Value(name) + delta
	s.SetValue(name, v)
	return v
}

// SetNote stores a string.
func (s *BasicState) SetNote(name, value string) {
	if s.notes == nil {
		s.notes = make(map[string]string)
	}
	s.notes[name] = value
}

// Note returns the stored string, or "" if it was never set.
func (s *BasicState) Note(name string) string {
	return s.notes[name]
}

// Snapshot returns a copy of the payload keyed by name.
// Flags, values and notes share one namespace; on collision notes win over
// values and values win over flags.
func (s *BasicState) Snapshot() map[string]any {
	out := make(map[string]any, len(s.flags)+len(s.values)+len(s.notes))
	for k, v := range s.flags {
		out[k] = v
	}
	for k, v := range s.values {
		out[k] = v
	}
	for k, v := range s.notes {
		out[k] = v
	}
	return out
}

// Flags returns a copy of the flag map.
func (s *BasicState) Flags() map[string]bool {
	return maps.Clone(s.flags)
}

// Values returns a copy of the value map.
func (s *BasicState) Values() map[string]int {
	return maps.Clone(s.values)
}

// Decode copies the payload into target (a pointer to a struct or map),
// matching keys against `mapstructure` tags. Keys absent from the state
// leave the target field untouched.
func (s *BasicState) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(s.Snapshot()); err != nil {
		return fmt.Errorf("failed to decode state: %w", err)
	}
	return nil
}
