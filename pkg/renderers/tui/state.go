package tui

// State collects submitted values keyed by prefixed control name, the same
// shape a browser would post for the rendered surface. It is intentionally
// small; prompting order and validation live in the renderer.
type State struct {
	values map[string][]string
}

// NewState seeds the state with prefilled values.
func NewState(prefill map[string]string) *State {
	values := make(map[string][]string, len(prefill))
	for name, value := range prefill {
		values[name] = []string{value}
	}
	return &State{values: values}
}

// Set replaces the values collected under name.
func (s *State) Set(name, value string) {
	if s == nil || name == "" {
		return
	}
	s.values[name] = []string{value}
}

// Add appends a value under name, for multi-valued controls.
func (s *State) Add(name, value string) {
	if s == nil || name == "" {
		return
	}
	s.values[name] = append(s.values[name], value)
}

// Delete removes name entirely, mirroring how unchecked checkboxes are
// absent from a browser submission.
func (s *State) Delete(name string) {
	if s == nil {
		return
	}
	delete(s.values, name)
}

// Get returns the first value collected under name.
func (s *State) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	vals, ok := s.values[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Values returns the collected value map (mutable).
func (s *State) Values() map[string][]string {
	if s == nil {
		return nil
	}
	return s.values
}
