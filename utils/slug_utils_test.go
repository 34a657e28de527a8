package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Modern Villa with Rice Field View", "modern-villa-with-rice-field-view"},
		{"Cozy  Apartment   Downtown", "cozy-apartment-downtown"},
		{"Beachfront Villa! (Ocean View)", "beachfront-villa-ocean-view"},
		{"  Trimmed Title  ", "trimmed-title"},
		{"UPPER CASE", "upper-case"},
		{"Price: $250,000 - Great Deal", "price-250000-great-deal"},
		{"already-hyphenated title", "alreadyhyphenated-title"},
		{"under_score kept", "under_score-kept"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title: %q", tc.title)
	}
}

func TestResolveSlugNoCollision(t *testing.T) {
	slug := ResolveSlug("Modern Villa", func(string) bool { return false })
	assert.Equal(t, "modern-villa", slug)
}

func TestResolveSlugCollisionAppendsSuffix(t *testing.T) {
	slug := ResolveSlug("Modern Villa", func(candidate string) bool {
		return candidate == "modern-villa"
	})

	require.True(t, strings.HasPrefix(slug, "modern-villa-"))

	suffix := strings.TrimPrefix(slug, "modern-villa-")
	assert.Len(t, suffix, 5)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{5}$`), suffix)
}

func TestResolveSlugSuffixedResultNotRechecked(t *testing.T) {
	// The suffixed slug is accepted without a second uniqueness probe
	var probes []string
	ResolveSlug("Modern Villa", func(candidate string) bool {
		probes = append(probes, candidate)
		return true
	})

	assert.Equal(t, []string{"modern-villa"}, probes)
}

func TestRandomBase36(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := RandomBase36(5)
		require.Len(t, s, 5)
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+$`), s)
		seen[s] = true
	}
	// 100 draws from 36^5 should not all collide
	assert.Greater(t, len(seen), 1)
}
