package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	slugMaxLen      = 80
	slugIDSuffixLen = 8
	slugFallback    = "property"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify lowercases s, strips diacritics (ñ → n, ç → c, à → a), replaces every run of
// characters outside [a-z0-9] with a single hyphen and trims hyphens at both ends.
func Slugify(s string) string {
	s = foldAccents(strings.ToLower(strings.TrimSpace(s)))
	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > slugMaxLen {
		s = strings.Trim(string([]rune(s)[:slugMaxLen]), "-")
	}
	if s == "" {
		s = slugFallback
	}
	return s
}

// PropertySlug derives the public slug of a property: the slugified title followed by the
// first eight characters of its id.
func PropertySlug(title, id string) string {
	suffix := strings.ToLower(id)
	if len(suffix) > slugIDSuffixLen {
		suffix = suffix[:slugIDSuffixLen]
	}
	if suffix == "" {
		return Slugify(title)
	}
	return Slugify(title) + "-" + suffix
}

// Fold lowercases s and strips diacritics so "Ático" and "atico" compare equal.
func Fold(s string) string {
	return foldAccents(strings.ToLower(s))
}

func foldAccents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
