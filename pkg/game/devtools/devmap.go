package devtools

import (
	"fmt"
	"strings"

	"dungeonlab/pkg/game/generator"
	"dungeonlab/pkg/game/state"
)

// ContainsSubstring checks if s contains substr (case-insensitive)
func ContainsSubstring(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Gallery builds one session per algorithm whose name or display name contains filter, all from
// the same seed and size, so the layouts can be compared side by side.
// An empty filter selects every algorithm.
func Gallery(width, height int, seed int64, filter string) ([]*state.Session, error) {
	var sessions []*state.Session
	for _, alg := range generator.AllAlgorithms() {
		s := state.NewSession(width, height)
		if err := s.Use(alg); err != nil {
			return nil, err
		}
		if filter != "" && !ContainsSubstring(alg.String(), filter) && !ContainsSubstring(s.Generator.Name(), filter) {
			continue
		}
		if err := s.Regenerate(seed); err != nil {
			return nil, fmt.Errorf("%v: %w", alg, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
