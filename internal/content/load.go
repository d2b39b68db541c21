package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNoContentDir is returned when the content directory is missing.
	ErrNoContentDir = errors.New("content directory not found")

	// ErrConversion wraps Markdown conversion failures.
	ErrConversion = errors.New("markdown conversion failed")
)

// Options configures Load.
type Options struct {
	// Drafts includes pages whose front matter sets draft: true.
	Drafts bool

	// Unsafe keeps raw HTML embedded in Markdown.
	Unsafe bool

	// Ignore holds glob patterns matched against file and directory base
	// names.
	Ignore []string

	Defaults Defaults
}

// Asset is a file exported unchanged.
type Asset struct {
	// Path is the export path.
	Path string

	// Source is the file on disk.
	Source string
}

// Collection is the result of loading a content directory.
type Collection struct {
	Pages  []*Page
	Assets []Asset

	// Drafts lists the sources of skipped draft pages.
	Drafts []string
}

// Load reads every file under dir. Pages and assets are sorted by path.
func Load(dir string, opts Options) (*Collection, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoContentDir, dir)
	}

	conv := NewConverter(opts.Unsafe)
	c := &Collection{}
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != dir && ignored(d.Name(), opts.Ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !strings.EqualFold(path.Ext(rel), ".md") {
			c.Assets = append(c.Assets, Asset{Path: "/" + rel, Source: p})
			return nil
		}
		page, err := loadPage(p, rel, conv, opts.Defaults)
		if err != nil {
			return err
		}
		if page.Meta.Draft && !opts.Drafts {
			c.Drafts = append(c.Drafts, rel)
			return nil
		}
		c.Pages = append(c.Pages, page)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(c.Pages, func(i, j int) bool { return c.Pages[i].Path < c.Pages[j].Path })
	sort.Slice(c.Assets, func(i, j int) bool { return c.Assets[i].Path < c.Assets[j].Path })
	return c, nil
}

// LoadStatic lists the files under dir as assets rooted at "/". A missing
// directory yields no assets.
func LoadStatic(dir string, ignore []string) ([]Asset, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	var assets []Asset
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != dir && ignored(d.Name(), ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		assets = append(assets, Asset{Path: "/" + filepath.ToSlash(rel), Source: p})
		return nil
	})
	return assets, err
}

func loadPage(file, rel string, conv *Converter, defaults Defaults) (*Page, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	raw, body, _, err := Split(data)
	if err != nil {
		return nil, &FrontMatterError{File: file, Err: err}
	}
	fm, line, err := ParseFrontMatter(raw)
	if err != nil {
		if line > 0 {
			// Account for the opening delimiter.
			line++
		}
		return nil, &FrontMatterError{File: file, Line: line, Err: err}
	}

	out, err := conv.Convert(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", file, ErrConversion, err)
	}
	fp, err := Fingerprint(fm.Fields, body)
	if err != nil {
		return nil, fmt.Errorf("fingerprint %s: %w", file, err)
	}

	p := &Page{
		Source:      rel,
		Path:        PagePath(rel),
		Meta:        fm,
		HTML:        out,
		Fingerprint: fp,
		defaults:    defaults,
	}
	if fm.Path != "" {
		p.Path = fm.Path
		if !strings.HasPrefix(p.Path, "/") {
			p.Path = "/" + p.Path
		}
	}
	return p, nil
}

func ignored(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
