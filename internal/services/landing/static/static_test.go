package static

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFSContainsLandingAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"landing.css", "carousel.js"} {
		data, err := fs.ReadFile(FS, name)
		if err != nil {
			t.Fatalf("ReadFile(%q) error = %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}

func TestCarouselScriptMatchesTransitionClasses(t *testing.T) {
	t.Parallel()

	script, err := fs.ReadFile(FS, "carousel.js")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	css, err := fs.ReadFile(FS, "landing.css")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, class := range []string{"opacity-100", "opacity-0", "translate-x-0", "translate-x-full", "-translate-x-full"} {
		if !strings.Contains(string(script), `"`+class+`"`) {
			t.Fatalf("carousel.js missing class %q", class)
		}
		if !strings.Contains(string(css), "."+class+" {") {
			t.Fatalf("landing.css missing rule for %q", class)
		}
	}
	for _, marker := range []string{`addEventListener("session"`, `addEventListener("slide"`, "data-interval-ms", "data-stream"} {
		if !strings.Contains(string(script), marker) {
			t.Fatalf("carousel.js missing %q", marker)
		}
	}
}

func TestCarouselScriptResumesStreamFromCurrentSlide(t *testing.T) {
	t.Parallel()

	script, err := fs.ReadFile(FS, "carousel.js")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, marker := range []string{
		`"?slide=" + encodeURIComponent(String(this.index))`,
		"source.close();",
		"self.scheduleReconnect();",
		"payload.next",
		"payload.interval_ms",
	} {
		if !strings.Contains(string(script), marker) {
			t.Fatalf("carousel.js missing %q", marker)
		}
	}
}
