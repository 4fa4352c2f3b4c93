package namegen

import (
	"bufio"
	"io"
	"strings"
)

// AvailabilitySet holds the lower-cased base names that are already
// registered or reserved. It is loaded once at startup and read-only for
// the process lifetime, so lookups need no locking. Membership is a
// cheap availability heuristic, not a registry lookup.
type AvailabilitySet struct {
	names map[string]struct{}
}

// NewAvailabilitySet builds a set from a list of base names. Names are
// lower-cased and blank entries ignored.
func NewAvailabilitySet(names []string) *AvailabilitySet {
	set := &AvailabilitySet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			set.names[name] = struct{}{}
		}
	}
	return set
}

// LoadAvailabilitySet reads one base name per line from r.
func LoadAvailabilitySet(r io.Reader) (*AvailabilitySet, error) {
	set := &AvailabilitySet{names: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if name != "" {
			set.names[name] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

// Len returns the number of known base names.
func (s *AvailabilitySet) Len() int {
	return len(s.names)
}

// Contains reports whether the lower-cased base name is taken.
func (s *AvailabilitySet) Contains(base string) bool {
	_, ok := s.names[strings.ToLower(base)]
	return ok
}

// Filter keeps the names whose base (everything before the first '.',
// lower-cased) is not in the set. Relative order is preserved.
func (s *AvailabilitySet) Filter(names []string) []string {
	available := make([]string, 0, len(names))
	for _, name := range names {
		base := name
		if idx := strings.IndexByte(base, '.'); idx >= 0 {
			base = base[:idx]
		}
		if !s.Contains(base) {
			available = append(available, name)
		}
	}
	return available
}
