package services

import (
	"regexp"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName lowercases and strips accents so "Phòng Đôi" and "phong doi"
// compare equal.
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = unidecode.Unidecode(s)
	return strings.TrimSpace(strings.ToLower(s))
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a post title into a URL slug.
func Slugify(title string) string {
	s := NormalizeName(title)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Suggestions beyond this edit distance are noise, not typos.
const maxSuggestDistance = 3

// NameSuggester proposes the closest known name for a misspelled lookup,
// e.g. a booking form that references a room type by name.
type NameSuggester struct {
	cm       *closestmatch.ClosestMatch
	original map[string]string
}

func NewNameSuggester(names []string) *NameSuggester {
	normalized := make([]string, 0, len(names))
	original := make(map[string]string, len(names))
	for _, n := range names {
		key := NormalizeName(n)
		normalized = append(normalized, key)
		original[key] = n
	}
	return &NameSuggester{
		cm:       closestmatch.New(normalized, []int{2, 3}),
		original: original,
	}
}

// Suggest returns the closest known name when the query is within a small
// edit distance of it.
func (s *NameSuggester) Suggest(query string) (string, bool) {
	q := NormalizeName(query)
	if q == "" {
		return "", false
	}

	best := s.cm.Closest(q)
	if best == "" {
		return "", false
	}

	distance := levenshtein.DistanceForStrings([]rune(q), []rune(best), levenshtein.DefaultOptions)
	if distance > maxSuggestDistance {
		return "", false
	}
	return s.original[best], true
}
