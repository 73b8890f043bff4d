// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:[_-][a-z0-9]+)*$`)

// ValidateSlug checks that a slug is lowercase alphanumeric with single
// underscore or hyphen separators (e.g. "vet_clinics", "dog-walking").
func ValidateSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

// Slugify derives a slug from a display name, used when a suggestion
// arrives without an explicit slug.
func Slugify(name string) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	cleaned = strings.Join(strings.Fields(cleaned), "_")

	var b strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
