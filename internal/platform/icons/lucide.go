package icons

import (
	"sort"
	"strings"
)

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	IDPrevious:     "chevron-left",
	IDNext:         "chevron-right",
	IDCommunity:    "users",
	IDExternalLink: "external-link",
	IDHeart:        "heart",
}

// Path data from lucide.dev (ISC license), 24x24 stroke glyphs.
var lucideGlyphs = map[string]string{
	"chevron-left":  `<path d="m15 18-6-6 6-6"/>`,
	"chevron-right": `<path d="m9 18 6-6-6-6"/>`,
	"users":         `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"external-link": `<path d="M15 3h6v6"/><path d="M10 14 21 3"/><path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/>`,
	"heart":         `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
}

var lucideSprite = buildSprite()

// LucideSymbolID returns the sprite symbol id for an icon id, or "" when the
// id is unknown.
func LucideSymbolID(id ID) string {
	name, ok := lucideIconNames[id]
	if !ok {
		return ""
	}
	return lucideSymbolPrefix + name
}

// LucideSprite returns hidden SVG sprite markup defining every icon symbol.
func LucideSprite() string {
	return lucideSprite
}

func buildSprite() string {
	names := make([]string, 0, len(lucideIconNames))
	for _, name := range lucideIconNames {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none">`)
	for _, name := range names {
		b.WriteString(`<symbol id="` + lucideSymbolPrefix + name + `" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(lucideGlyphs[name])
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
