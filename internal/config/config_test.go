package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/treesite/internal/errors"
	"github.com/vango-dev/treesite/pkg/site"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Build.Strategy != "sync" || cfg.Build.FileExtension != "html" {
		t.Errorf("Build = %+v", cfg.Build)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(tmpDir); err == nil {
		t.Fatal("Expected error for missing config")
	}

	writeFile(t, tmpDir, ConfigFileName, `title: Docs
content: pages
stylesheets:
  - /css/site.css
build:
  strategy: parallel
  workers: 3
dev:
  port: 9000
  debounce: 300ms
s3:
  bucket: docs-bucket
  prefix: v1
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Docs" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.ContentPath() != filepath.Join(tmpDir, "pages") {
		t.Errorf("ContentPath = %q", cfg.ContentPath())
	}
	if cfg.OutputPath() != filepath.Join(tmpDir, DefaultOutput) {
		t.Errorf("OutputPath = %q", cfg.OutputPath())
	}
	if diff := cmp.Diff([]string{"/css/site.css"}, cfg.Stylesheets); diff != "" {
		t.Errorf("Stylesheets (-want +got):\n%s", diff)
	}
	if cfg.Build.Strategy != "parallel" || cfg.Build.Workers != 3 {
		t.Errorf("Build = %+v", cfg.Build)
	}
	// Unset keys keep their defaults.
	if cfg.Build.FileExtension != "html" || cfg.Dev.Host != DefaultHost {
		t.Errorf("defaults lost: %+v %+v", cfg.Build, cfg.Dev)
	}
	if cfg.DebounceDuration() != 300*time.Millisecond {
		t.Errorf("DebounceDuration = %v", cfg.DebounceDuration())
	}
	if cfg.DevAddress() != "localhost:9000" || cfg.DevURL() != "http://localhost:9000" {
		t.Errorf("DevAddress = %q", cfg.DevAddress())
	}
	if cfg.S3.Bucket != "docs-bucket" {
		t.Errorf("S3 = %+v", cfg.S3)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "treesite.json", `{"title": "J", "output": "/abs/out", "build": {"fileExtension": ""}}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "J" || cfg.OutputPath() != "/abs/out" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Build.FileExtension != "" {
		t.Errorf("explicit empty extension replaced with %q", cfg.Build.FileExtension)
	}
}

func TestLoadPrefersYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "treesite.json", `{"title": "json"}`)
	writeFile(t, tmpDir, "treesite.yml", "title: yml\n")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "yml" {
		t.Errorf("Title = %q, want yml", cfg.Title)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
		hasLine  bool
	}{
		{"yaml syntax", "a.yaml", "title: x\nbuild:\n  strategy: [parallel\n", "E102", true},
		{"unknown yaml key", "b.yaml", "title: x\ncolour: red\n", "E102", true},
		{"json syntax", "c.json", "{\n\"title\": \"x\",\n}", "E102", true},
		{"unknown json key", "d.json", `{"colour": "red"}`, "E102", false},
		{"missing", "missing.yaml", "", "E101", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			if tt.content != "" {
				writeFile(t, tmpDir, tt.file, tt.content)
			}
			_, err := LoadFile(path)
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("err = %v, want *errors.Error", err)
			}
			if e.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", e.Code, tt.wantCode)
			}
			if hasLine := e.Location != nil && e.Location.Line > 0; hasLine != tt.hasLine {
				t.Errorf("location = %v, want line reported: %v", e.Location, tt.hasLine)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		detail string
	}{
		{"strategy", func(c *Config) { c.Build.Strategy = "fast" }, "build.strategy"},
		{"workers", func(c *Config) { c.Build.Workers = -1 }, "build.workers"},
		{"port", func(c *Config) { c.Dev.Port = 70000 }, "dev.port"},
		{"debounce", func(c *Config) { c.Dev.Debounce = "soon" }, "dev.debounce"},
		{"s3 prefix", func(c *Config) { c.S3.Prefix = "p" }, "s3.prefix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Code != "E103" {
				t.Fatalf("Validate() = %v, want E103", err)
			}
			if !strings.Contains(e.Detail, tt.detail) {
				t.Errorf("Detail = %q, want mention of %q", e.Detail, tt.detail)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"treesite.yaml", "treesite.json"} {
		t.Run(name, func(t *testing.T) {
			cfg := New()
			cfg.Title = "Saved"
			cfg.Stylesheets = []string{"/a.css"}
			path := filepath.Join(tmpDir, name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}
			if cfg.Path() != path || cfg.Dir() != tmpDir {
				t.Errorf("Path = %q", cfg.Path())
			}
			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if diff := cmp.Diff(cfg, loaded, cmp.AllowUnexported(Config{})); diff != "" {
				t.Errorf("round trip (-saved +loaded):\n%s", diff)
			}
		})
	}

	if err := New().Save(); err == nil {
		t.Error("Save without a path should fail")
	}
}

func TestSiteOptions(t *testing.T) {
	cfg := New()
	cfg.configPath = "/site/treesite.yaml"
	cfg.Build.Strategy = "parallel"
	cfg.Build.Workers = 2
	cfg.Build.Indent = "\t"

	s := site.New(cfg.SiteOptions()...)
	got := s.Options()
	if got.ExportRoot != "/site/public" || got.Strategy != site.StrategyParallel || got.Workers != 2 || got.Indent != "\t" {
		t.Errorf("site options = %+v", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ConfigFileName, "title: root\n")
	nested := filepath.Join(tmpDir, "content", "posts")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	want, _ := filepath.Abs(tmpDir)
	if root != want {
		t.Errorf("root = %q, want %q", root, want)
	}

	if _, err := FindProjectRoot(t.TempDir()); err == nil {
		t.Error("expected error outside a site")
	}
}
