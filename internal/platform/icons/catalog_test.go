package icons

import "testing"

func TestEveryIDHasGlyph(t *testing.T) {
	for _, id := range []ID{IDPrevious, IDNext, IDCommunity, IDExternalLink, IDHeart} {
		name, ok := lucideIconNames[id]
		if !ok {
			t.Fatalf("missing Lucide mapping for %s", id)
		}
		if _, ok := lucideGlyphs[name]; !ok {
			t.Fatalf("missing glyph for %s (%s)", id, name)
		}
	}
}
