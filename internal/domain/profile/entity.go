package profile

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidEntry = errors.New("profile entries must be non-empty trimmed strings")

// Profile is the single user profile driving scoring. There is exactly one
// per deployment; it is replaced wholesale, never patched.
type Profile struct {
	FullName    string
	Roles       []string
	Skills      []string
	Locations   []string
	BadKeywords []string
	RemoteOnly  bool
	Weights     Weights
	UpdatedAt   time.Time
}

// Weights are optional per-category overrides. A zero field means "use the
// scoring engine default".
type Weights struct {
	Role     float64
	Skill    float64
	Location float64
}

// Default returns the profile served before any replace: empty term sets,
// default weights.
func Default() Profile {
	return Profile{
		Roles:       []string{},
		Skills:      []string{},
		Locations:   []string{},
		BadKeywords: []string{},
	}
}

// Normalize validates and canonicalizes a candidate profile. Terms are
// trimmed and must be non-empty; duplicates are removed case-insensitively
// keeping the first spelling. Negative weights are rejected. Validation is
// all-or-nothing.
func Normalize(p Profile) (Profile, error) {
	out := p
	out.FullName = strings.TrimSpace(p.FullName)

	var err error
	if out.Roles, err = normalizeTerms(p.Roles); err != nil {
		return Profile{}, err
	}
	if out.Skills, err = normalizeTerms(p.Skills); err != nil {
		return Profile{}, err
	}
	if out.Locations, err = normalizeTerms(p.Locations); err != nil {
		return Profile{}, err
	}
	if out.BadKeywords, err = normalizeTerms(p.BadKeywords); err != nil {
		return Profile{}, err
	}

	if p.Weights.Role < 0 || p.Weights.Skill < 0 || p.Weights.Location < 0 {
		return Profile{}, errors.New("profile weights must not be negative")
	}

	return out, nil
}

func normalizeTerms(terms []string) ([]string, error) {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, ErrInvalidEntry
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}
