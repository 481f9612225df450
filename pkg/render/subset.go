package render

import (
	"strings"

	"github.com/goliatone/go-screengen/pkg/ir"
)

// ScreenSubset selects screens by id or by display name. Matching is case
// insensitive and ignores surrounding whitespace.
type ScreenSubset struct {
	IDs   []string
	Names []string
}

// Empty reports whether the subset selects everything.
func (s ScreenSubset) Empty() bool {
	return len(normaliseTokens(s.IDs)) == 0 && len(normaliseTokens(s.Names)) == 0
}

// ApplySubset removes screens that match neither an id nor a name in subset.
// Project order is preserved. When subset is empty or project is nil the
// project is returned unchanged.
func ApplySubset(project *ir.Project, subset ScreenSubset) {
	if project == nil {
		return
	}

	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return
	}

	filtered := make([]ir.Screen, 0, len(project.Screens))
	for _, screen := range project.Screens {
		if matcher.matches(screen) {
			filtered = append(filtered, screen)
		}
	}
	project.Screens = filtered
	if len(project.Screens) == 0 {
		project.Screens = nil
	}
}

// SelectScreens applies opts.ScreenIDs to a copy of project and reports
// ErrNoScreens when nothing is left.
func SelectScreens(project ir.Project, opts RenderOptions) (ir.Project, error) {
	out := project
	out.Screens = append([]ir.Screen(nil), project.Screens...)
	ApplySubset(&out, ScreenSubset{IDs: opts.ScreenIDs})
	if len(out.Screens) == 0 {
		return out, ErrNoScreens
	}
	return out, nil
}

type subsetMatcher struct {
	ids   map[string]struct{}
	names map[string]struct{}
}

func newSubsetMatcher(subset ScreenSubset) subsetMatcher {
	return subsetMatcher{
		ids:   normaliseTokens(subset.IDs),
		names: normaliseTokens(subset.Names),
	}
}

func (m subsetMatcher) empty() bool {
	return len(m.ids) == 0 && len(m.names) == 0
}

func (m subsetMatcher) matches(screen ir.Screen) bool {
	if _, ok := m.ids[normaliseToken(screen.ID)]; ok {
		return true
	}
	if _, ok := m.names[normaliseToken(screen.Name)]; ok {
		return true
	}
	return false
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		if token := normaliseToken(value); token != "" {
			out[token] = struct{}{}
		}
	}
	return out
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
