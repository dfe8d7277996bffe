// Package i18n defines the languages the site is published in.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/rotaract-dypcoe/landing/internal/platform/i18n/catalog"
)

var (
	english = language.MustParse("en-US")
	hindi   = language.MustParse("hi-IN")

	supported = []language.Tag{english, hindi}
	matcher   = language.NewMatcher(supported)
)

func init() {
	// Loads and registers the embedded catalogs with x/text/message.
	catalog.Default()
}

// SupportedTags returns the published languages, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return english
}

// ParseTag parses value and reports whether it names a supported language.
// Region-less or regional variants resolve to the supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Tag{}, false
	}
	return supported[index], true
}

// MatchTags returns the best supported language for the preferred tags.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return english
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return english
	}
	return supported[index]
}

// LabelKey returns the catalog key naming tag in language menus.
func LabelKey(tag language.Tag) string {
	return "lang." + strings.ReplaceAll(strings.ToLower(tag.String()), "-", "_")
}
