// Package scoring computes a match score between a posting and the user
// profile. Score is a pure function: identical inputs always yield the same
// value and breakdown, and nothing is mutated.
package scoring

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

const (
	CategoryRole     = "role"
	CategorySkill    = "skill"
	CategoryLocation = "location"
)

// categoryCapShare caps each category at this share of the theoretical max
// so one category cannot dominate the total.
const categoryCapShare = 0.4

// badKeywordPenalty multiplies the final score when any profile bad keyword
// appears in the posting text.
const badKeywordPenalty = 0.3

var remoteIndicators = map[string]struct{}{
	"remote":    {},
	"anywhere":  {},
	"worldwide": {},
}

type Weights struct {
	Role     float64
	Skill    float64
	Location float64
}

func DefaultWeights() Weights {
	return Weights{Role: 3, Skill: 2, Location: 5}
}

// Posting carries the posting fields scoring reads. Callers map their own
// entities onto it.
type Posting struct {
	Title       string
	Company     string
	Location    string
	Description string
}

// Profile carries the profile fields scoring reads. Zero weight fields fall
// back to the defaults.
type Profile struct {
	Roles       []string
	Skills      []string
	Locations   []string
	BadKeywords []string
	RemoteOnly  bool
	Weights     Weights
}

type CategoryBreakdown struct {
	Matched      []string `json:"matched"`
	Contribution float64  `json:"contribution"`
}

// Breakdown explains the score: per-category matched terms and the points
// each category added, plus any bad keywords that triggered the penalty.
type Breakdown struct {
	Categories  map[string]CategoryBreakdown `json:"categories"`
	BadKeywords []string                     `json:"bad_keywords,omitempty"`
}

type Result struct {
	Score     float64
	Breakdown Breakdown
}

var foldCaser = cases.Fold()

// Score rates a posting against the profile on a 0..100 scale. Matching is
// case-folded; roles and skills match as token sequences within title or
// description, locations as substrings of the location text with remote
// indicators honored. An empty profile scores 0 for every posting.
func Score(p Posting, prof Profile) Result {
	w := prof.Weights
	def := DefaultWeights()
	if w.Role == 0 {
		w.Role = def.Role
	}
	if w.Skill == 0 {
		w.Skill = def.Skill
	}
	if w.Location == 0 {
		w.Location = def.Location
	}

	maxTotal := w.Role*float64(len(prof.Roles)) +
		w.Skill*float64(len(prof.Skills)) +
		w.Location*float64(len(prof.Locations))

	breakdown := Breakdown{Categories: map[string]CategoryBreakdown{
		CategoryRole:     {Matched: []string{}},
		CategorySkill:    {Matched: []string{}},
		CategoryLocation: {Matched: []string{}},
	}}

	if maxTotal == 0 {
		return Result{Score: 0, Breakdown: breakdown}
	}

	titleTokens := tokenize(p.Title)
	descTokens := tokenize(p.Description)

	rolesMatched := matchTerms(prof.Roles, titleTokens, descTokens)
	skillsMatched := matchTerms(prof.Skills, titleTokens, descTokens)
	locationsMatched := matchLocations(p.Location, prof.Locations, prof.RemoteOnly)

	capPerCategory := categoryCapShare * maxTotal
	total := 0.0
	add := func(category string, matched []string, weight float64) {
		contribution := math.Min(float64(len(matched))*weight, capPerCategory)
		points := round2(contribution / maxTotal * 100)
		breakdown.Categories[category] = CategoryBreakdown{Matched: matched, Contribution: points}
		total += contribution
	}
	add(CategoryRole, rolesMatched, w.Role)
	add(CategorySkill, skillsMatched, w.Skill)
	add(CategoryLocation, locationsMatched, w.Location)

	score := total / maxTotal * 100

	if hits := matchBadKeywords(p.Title+" "+p.Description, prof.BadKeywords); len(hits) > 0 {
		breakdown.BadKeywords = hits
		score *= badKeywordPenalty
	}

	return Result{Score: round2(clamp(score, 0, 100)), Breakdown: breakdown}
}

func matchTerms(terms []string, titleTokens, descTokens []string) []string {
	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		phrase := tokenize(term)
		if len(phrase) == 0 {
			continue
		}
		if containsPhrase(titleTokens, phrase) || containsPhrase(descTokens, phrase) {
			matched = append(matched, term)
		}
	}
	return matched
}

func matchLocations(postingLocation string, terms []string, remoteOnly bool) []string {
	locText := fold(postingLocation)
	postingRemote := isRemote(locText)

	if remoteOnly && !postingRemote {
		return []string{}
	}

	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		t := fold(term)
		if t == "" {
			continue
		}
		if strings.Contains(locText, t) {
			matched = append(matched, term)
			continue
		}
		if postingRemote {
			if _, ok := remoteIndicators[t]; ok {
				matched = append(matched, term)
			}
		}
	}
	return matched
}

func matchBadKeywords(text string, keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	folded := fold(text)
	hits := make([]string, 0, len(keywords))
	for _, k := range keywords {
		fk := fold(k)
		if fk == "" {
			continue
		}
		if strings.Contains(folded, fk) {
			hits = append(hits, k)
		}
	}
	if len(hits) == 0 {
		return nil
	}
	return hits
}

func isRemote(foldedLocation string) bool {
	for _, tok := range tokenizeFolded(foldedLocation) {
		if _, ok := remoteIndicators[tok]; ok {
			return true
		}
	}
	return false
}

// fold lowercases via Unicode case folding and collapses whitespace.
func fold(s string) string {
	return strings.Join(strings.Fields(foldCaser.String(s)), " ")
}

func tokenize(s string) []string {
	return tokenizeFolded(foldCaser.String(s))
}

func tokenizeFolded(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsPhrase(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(tokens) < len(phrase) {
		return false
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		ok := true
		for j := range phrase {
			if tokens[i+j] != phrase[j] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
