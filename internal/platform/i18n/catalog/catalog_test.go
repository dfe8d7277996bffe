package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("hi-IN") {
		t.Fatalf("expected locale hi-IN")
	}
	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US messages")
	}
}

func TestEmbeddedLocalesShareMessageKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
		}
	}
}

func TestDefaultRegistersWithMessagePrinter(t *testing.T) {
	Default()
	hi := message.NewPrinter(language.MustParse("hi-IN"))
	if got := hi.Sprintf("carousel.next"); got != "अगली स्लाइड" {
		t.Fatalf("hi-IN carousel.next = %q", got)
	}
	if got := hi.Sprintf("Join Our Community"); got != "हमारे समुदाय से जुड़ें" {
		t.Fatalf("hi-IN content lookup = %q", got)
	}
	hiBase := message.NewPrinter(language.Hindi)
	if got := hiBase.Sprintf("carousel.next"); got != "अगली स्लाइड" {
		t.Fatalf("hi carousel.next = %q", got)
	}
	en := message.NewPrinter(language.MustParse("en-US"))
	if got := en.Sprintf("carousel.go_to", 2); got != "Go to slide 2" {
		t.Fatalf("en-US carousel.go_to = %q", got)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, _ := LoadEmbedded()
	got, ok := bundle.Message("fr-FR", "nav.home")
	if !ok || got != "Home" {
		t.Fatalf("Message(fr-FR, nav.home) = %q, %t", got, ok)
	}
	if _, ok := bundle.Message("en-US", "missing.key"); ok {
		t.Fatal("expected missing key lookup to fail")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsMismatchedLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "hi-IN"
namespace: "web"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/hi-IN/web.yaml"), `locale: "hi-IN"
namespace: "web"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
