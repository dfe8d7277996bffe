package landing

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

// parseConfig mirrors the root command: environment defaults, then flags,
// then validation.
func parseConfig(fs *pflag.FlagSet, args []string, environment map[string]string) (Config, error) {
	cfg, err := LoadConfig(environment)
	if err != nil {
		return Config{}, err
	}
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("landing", pflag.ContinueOnError)
	cfg, err := parseConfig(fs, nil, map[string]string{})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.PublicDir != "public" {
		t.Fatalf("PublicDir = %q, want %q", cfg.PublicDir, "public")
	}
	if cfg.SlideInterval != 5*time.Second {
		t.Fatalf("SlideInterval = %v, want 5s", cfg.SlideInterval)
	}
	if cfg.LogLevel != "info" || cfg.LogDevelopment {
		t.Fatalf("log config = %q %t", cfg.LogLevel, cfg.LogDevelopment)
	}
	if cfg.AssetBaseURL != "" {
		t.Fatalf("AssetBaseURL = %q, want empty", cfg.AssetBaseURL)
	}
}

func TestConfigReadsEnvironment(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("landing", pflag.ContinueOnError)
	cfg, err := parseConfig(fs, nil, map[string]string{
		"ROTARACT_LANDING_HTTP_ADDR":      ":9000",
		"ROTARACT_LANDING_SLIDE_INTERVAL": "3s",
		"ROTARACT_LANDING_ASSET_BASE_URL": "https://res.cloudinary.com/demo/image/upload",
	})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":9000" || cfg.SlideInterval != 3*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.AssetBaseURL != "https://res.cloudinary.com/demo/image/upload" {
		t.Fatalf("AssetBaseURL = %q", cfg.AssetBaseURL)
	}
}

func TestConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("landing", pflag.ContinueOnError)
	cfg, err := parseConfig(fs, []string{"--http-addr", "127.0.0.1:9002", "--log-development"}, map[string]string{
		"ROTARACT_LANDING_HTTP_ADDR": ":9000",
	})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if !cfg.LogDevelopment {
		t.Fatal("LogDevelopment = false, want true")
	}
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad duration env", env: map[string]string{"ROTARACT_LANDING_SLIDE_INTERVAL": "soon"}},
		{name: "zero interval", args: []string{"--slide-interval", "0s"}, env: map[string]string{}},
		{name: "empty addr", args: []string{"--http-addr", " "}, env: map[string]string{}},
		{name: "unknown flag", args: []string{"--nope"}, env: map[string]string{}},
	}
	for _, tc := range cases {
		fs := pflag.NewFlagSet("landing", pflag.ContinueOnError)
		fs.SetOutput(&bytes.Buffer{})
		if _, err := parseConfig(fs, tc.args, tc.env); err == nil {
			t.Fatalf("%s: parseConfig() error = nil, want error", tc.name)
		}
	}
}

func TestExportCommandWritesSite(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "site")
	root, err := NewRootCommand(map[string]string{})
	if err != nil {
		t.Fatalf("NewRootCommand() error = %v", err)
	}
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"export", "--out", out, "--public-dir", filepath.Join(out, "missing"), "--log-level", "error"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "wrote 3 files") {
		t.Fatalf("stdout = %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Fatalf("index.html missing: %v", err)
	}
}

func TestRootCommandRejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	root, err := NewRootCommand(map[string]string{})
	if err != nil {
		t.Fatalf("NewRootCommand() error = %v", err)
	}
	root.SetArgs([]string{"export", "--out", t.TempDir(), "--log-level", "loud"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("Execute() error = nil, want error")
	}
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{HTTPAddr: "127.0.0.1:0", SlideInterval: time.Second, PublicDir: "public"}, nil)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
