package content

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/treesite/pkg/export"
	"github.com/vango-dev/treesite/pkg/site"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		fm      string
		body    string
		had     bool
		wantErr error
	}{
		{"none", "# Title\n", "", "# Title\n", false, nil},
		{"basic", "---\ntitle: x\n---\nbody\n", "title: x\n", "body\n", true, nil},
		{"empty", "---\n---\nbody", "", "body", true, nil},
		{"crlf", "---\r\ntitle: x\r\n---\r\nbody", "title: x\r\n", "body", true, nil},
		{"closing at eof", "---\ntitle: x\n---", "title: x\n", "", true, nil},
		{"unclosed", "---\ntitle: x\n", "", "", false, ErrMissingClosingDelimiter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had, err := Split([]byte(tt.in))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if string(fm) != tt.fm || string(body) != tt.body || had != tt.had {
				t.Errorf("Split = (%q, %q, %v), want (%q, %q, %v)", fm, body, had, tt.fm, tt.body, tt.had)
			}
		})
	}
}

func TestParseFrontMatter(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte("title: Hello\ndraft: true\nstylesheets: [a.css]\nauthor: ann\n"))
	if err != nil {
		t.Fatal(err)
	}
	if fm.Title != "Hello" || !fm.Draft {
		t.Errorf("fm = %+v", fm)
	}
	if diff := cmp.Diff([]string{"a.css"}, fm.Stylesheets); diff != "" {
		t.Errorf("stylesheets (-want +got):\n%s", diff)
	}
	if fm.Fields["author"] != "ann" {
		t.Errorf("Fields[author] = %v", fm.Fields["author"])
	}

	_, line, err := ParseFrontMatter([]byte("title: ok\nbad: [unclosed\n"))
	if err == nil {
		t.Fatal("expected syntax error")
	}
	if line == 0 {
		t.Error("expected an error line")
	}
}

func TestFingerprintIgnoresExistingField(t *testing.T) {
	body := []byte("text\n")
	a, err := Fingerprint(map[string]any{"title": "x"}, body)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Fingerprint(map[string]any{"title": "x", "fingerprint": "stale"}, body)
	if err != nil {
		t.Fatal(err)
	}
	if a == "" || a != b {
		t.Errorf("fingerprints %q and %q should match", a, b)
	}
	c, _ := Fingerprint(map[string]any{"title": "y"}, body)
	if c == a {
		t.Error("fingerprint should change with front matter")
	}
}

func TestConvert(t *testing.T) {
	out, err := NewConverter(false).Convert([]byte("# Hello\n\nSome *text*.\n\n<div>raw</div>\n"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`<h1 id="hello">Hello</h1>`, "<p>Some <em>text</em>.</p>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<div>raw</div>") {
		t.Error("raw HTML kept without unsafe")
	}

	out, _ = NewConverter(true).Convert([]byte("<div>raw</div>\n"))
	if out != "<div>raw</div>" {
		t.Errorf("unsafe output = %q", out)
	}
}

func TestPagePath(t *testing.T) {
	tests := map[string]string{
		"index.md":          "/",
		"about.md":          "/about",
		"blog/index.md":     "/blog/",
		"blog/first.md":     "/blog/first",
		"docs/a/b/index.md": "/docs/a/b/",
	}
	for in, want := range tests {
		if got := PagePath(in); got != want {
			t.Errorf("PagePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGroupName(t *testing.T) {
	tests := map[string]string{
		"/":           site.DefaultGroup,
		"/about":      site.DefaultGroup,
		"/blog/":      "blog",
		"/blog/first": "blog",
	}
	for in, want := range tests {
		if got := GroupName(in); got != want {
			t.Errorf("GroupName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"index.md":         "---\ntitle: Home\n---\n# Welcome\n",
		"about.md":         "About us.\n",
		"blog/first.md":    "---\ntitle: First\n---\nPost.\n",
		"blog/wip.md":      "---\ndraft: true\n---\nLater.\n",
		"blog/cover.png":   "png",
		"custom.md":        "---\npath: /elsewhere\n---\nMoved.\n",
		".git/config":      "ignored",
		"notes/scratch.md": "ignored too",
	})

	c, err := Load(dir, Options{Ignore: []string{".git", "notes"}})
	if err != nil {
		t.Fatal(err)
	}

	var paths []string
	for _, p := range c.Pages {
		paths = append(paths, p.Path)
	}
	if diff := cmp.Diff([]string{"/", "/about", "/blog/first", "/elsewhere"}, paths); diff != "" {
		t.Errorf("pages (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"blog/wip.md"}, c.Drafts); diff != "" {
		t.Errorf("drafts (-want +got):\n%s", diff)
	}
	if len(c.Assets) != 1 || c.Assets[0].Path != "/blog/cover.png" {
		t.Errorf("assets = %+v", c.Assets)
	}

	c, err = Load(dir, Options{Drafts: true, Ignore: []string{".git", "notes"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Pages) != 5 || len(c.Drafts) != 0 {
		t.Errorf("with drafts: %d pages, %d drafts", len(c.Pages), len(c.Drafts))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing"), Options{}); !errors.Is(err, ErrNoContentDir) {
		t.Errorf("missing dir: err = %v", err)
	}

	dir := writeFiles(t, map[string]string{"bad.md": "---\ntitle: [x\n---\nbody\n"})
	_, err := Load(dir, Options{})
	var fmErr *FrontMatterError
	if !errors.As(err, &fmErr) {
		t.Fatalf("err = %v, want FrontMatterError", err)
	}
	if !strings.HasSuffix(fmErr.File, "bad.md") {
		t.Errorf("File = %q", fmErr.File)
	}

	dir = writeFiles(t, map[string]string{"open.md": "---\ntitle: x\n"})
	if _, err := Load(dir, Options{}); !errors.Is(err, ErrMissingClosingDelimiter) {
		t.Errorf("unclosed: err = %v", err)
	}
}

func TestLoadStatic(t *testing.T) {
	assets, err := LoadStatic(filepath.Join(t.TempDir(), "none"), nil)
	if err != nil || assets != nil {
		t.Errorf("missing dir = (%v, %v)", assets, err)
	}

	dir := writeFiles(t, map[string]string{"css/site.css": "body{}", "robots.txt": "", ".DS_Store": ""})
	assets, err = LoadStatic(dir, []string{".DS_Store"})
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, a := range assets {
		paths = append(paths, a.Path)
	}
	if diff := cmp.Diff([]string{"/css/site.css", "/robots.txt"}, paths); diff != "" {
		t.Errorf("assets (-want +got):\n%s", diff)
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		page, site, want string
	}{
		{"", "Docs", "Docs"},
		{"Hello", "", "Hello"},
		{"Docs", "Docs", "Docs"},
		{"Hello", "Docs", "Hello | Docs"},
	}
	for _, tt := range tests {
		p := &Page{Meta: FrontMatter{Title: tt.page}, defaults: Defaults{Title: tt.site}}
		if got := p.Title(); got != tt.want {
			t.Errorf("Title(%q, %q) = %q, want %q", tt.page, tt.site, got, tt.want)
		}
	}
}

func TestRegisterAndBuild(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"index.md":       "---\ntitle: Hello\nlang: de\n---\n# Hello\n\n```\na\n  b\n```\n",
		"blog/first.md":  "First post.\n",
		"blog/cover.png": "png-bytes",
	})
	c, err := Load(dir, Options{Defaults: Defaults{Title: "Docs", Lang: "en", Stylesheets: []string{"/site.css"}}})
	if err != nil {
		t.Fatal(err)
	}

	mem := export.NewMemory()
	s := site.New(site.WithExporter(mem))
	if err := Register(s, c, true); err != nil {
		t.Fatal(err)
	}
	var groups []string
	for _, g := range s.Groups() {
		groups = append(groups, g.Name())
	}
	if diff := cmp.Diff([]string{site.DefaultGroup, "blog"}, groups); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}

	res, err := s.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/blog/cover.png", "/blog/first.html", "/index.html", ManifestPath}, mem.Paths()); diff != "" {
		t.Errorf("exported (-want +got):\n%s", diff)
	}

	index := res.Pages["/"]
	for _, want := range []string{
		`<html lang="de">`,
		"<title>Hello | Docs</title>",
		`<link href="/site.css" rel="stylesheet">`,
		`<h1 id="hello">Hello</h1>`,
		"<pre><code>a\n  b\n</code></pre>",
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index missing %q:\n%s", want, index)
		}
	}
	if data, _ := mem.File("/blog/cover.png"); string(data) != "png-bytes" {
		t.Errorf("asset = %q", data)
	}

	raw, _ := mem.File(ManifestPath)
	var entries []ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("manifest entries = %d", len(entries))
	}
	if entries[1].File != "/blog/first.html" || entries[1].Fingerprint == "" {
		t.Errorf("entry = %+v", entries[1])
	}
}

func TestRegisterDuplicatePath(t *testing.T) {
	c := &Collection{Pages: []*Page{
		{Source: "a.md", Path: "/x"},
		{Source: "b.md", Path: "/x"},
	}}
	err := Register(site.New(), c, false)
	if !errors.Is(err, site.ErrDuplicatePage) {
		t.Errorf("err = %v, want ErrDuplicatePage", err)
	}
}
