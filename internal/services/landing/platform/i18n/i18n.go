// Package i18n resolves the request language and exposes localized printers.
package i18n

import (
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/rotaract-dypcoe/landing/internal/platform/i18n"
	"github.com/rotaract-dypcoe/landing/internal/platform/i18n/catalog"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "rd_lang"
)

// LanguageOption represents a supported language in the language menu.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Localizer resolves catalog keys for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocalizer returns a localizer for tag.
func NewLocalizer(tag language.Tag) Localizer {
	return Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the language the localizer renders.
func (l Localizer) Tag() language.Tag {
	return l.tag
}

// Sprintf formats the catalog message for key.
func (l Localizer) Sprintf(key message.Reference, args ...any) string {
	if l.printer == nil {
		l.printer = message.NewPrinter(l.tag)
	}
	return l.printer.Sprintf(key, args...)
}

// Copy translates site copy verbatim, returning text when no translation
// exists. Copy is never treated as a format string.
func (l Localizer) Copy(text string) string {
	if translated, ok := catalog.Default().Message(l.tag.String(), text); ok && strings.TrimSpace(translated) != "" {
		return translated
	}
	return text
}

// ResolveTag determines the best language tag for the request.
// The bool reports whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// ResolveLocalizer resolves the request language, persisting an explicit
// choice, and returns the matching localizer.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) Localizer {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return NewLocalizer(tag)
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageOptions lists the supported languages with links switching to each.
func LanguageOptions(loc Localizer, path string, rawQuery string) []LanguageOption {
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		label := loc.Sprintf(platformi18n.LabelKey(tag))
		if strings.TrimSpace(label) == "" {
			label = tag.String()
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    routepath.LanguageURL(path, rawQuery, LangParam, tag.String()),
			Active: tag == loc.Tag(),
		})
	}
	return options
}
