package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "phong doi", NormalizeName("Phòng Đôi"))
	assert.Equal(t, "deluxe double", NormalizeName("  Deluxe Double  "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello, World!"))
	assert.Equal(t, "phong-doi-cao-cap", Slugify("Phòng Đôi Cao Cấp"))
	assert.Equal(t, "summer-2026-deals", Slugify("Summer 2026 Deals"))
}

func TestSuggestFindsCloseMatch(t *testing.T) {
	suggester := NewNameSuggester([]string{"Deluxe Double", "Standard Twin", "Family Suite"})

	got, ok := suggester.Suggest("Delux Duble")
	assert.True(t, ok)
	assert.Equal(t, "Deluxe Double", got)
}

func TestSuggestIgnoresDistantQueries(t *testing.T) {
	suggester := NewNameSuggester([]string{"Deluxe Double", "Standard Twin"})

	_, ok := suggester.Suggest("Presidential Penthouse")
	assert.False(t, ok)
}

func TestSuggestEmptyQuery(t *testing.T) {
	suggester := NewNameSuggester([]string{"Deluxe Double"})

	_, ok := suggester.Suggest("")
	assert.False(t, ok)
}

func TestSuggestMatchesAcrossAccents(t *testing.T) {
	suggester := NewNameSuggester([]string{"Phòng Đôi"})

	got, ok := suggester.Suggest("phong doi")
	assert.True(t, ok)
	assert.Equal(t, "Phòng Đôi", got)
}
