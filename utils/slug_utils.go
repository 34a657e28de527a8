package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s]`)
	slugCollapsePattern = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe identifier from a title: lower-case, punctuation
// stripped, runs of whitespace collapsed to single hyphens.
// "Modern Villa with Rice Field View" -> "modern-villa-with-rice-field-view"
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = slugCollapsePattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ResolveSlug returns a slug for the title that is unique according to taken.
// On collision a 5-character base-36 suffix is appended and the result is
// accepted without a second uniqueness check; a repeat collision surfaces as
// a store-level constraint error instead.
func ResolveSlug(title string, taken func(slug string) bool) string {
	slug := Slugify(title)
	if !taken(slug) {
		return slug
	}
	return slug + "-" + RandomBase36(5)
}

// RandomBase36 generates a random lowercase alphanumeric string
func RandomBase36(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		result[i] = chars[num.Int64()]
	}

	return string(result)
}
