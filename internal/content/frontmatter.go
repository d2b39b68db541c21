package content

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a front
// matter delimiter but did not contain a closing one.
var ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

// FrontMatter holds the recognized front matter keys. Unknown keys are
// kept in Fields.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Lang        string   `yaml:"lang"`
	Path        string   `yaml:"path"`
	Draft       bool     `yaml:"draft"`
	Stylesheets []string `yaml:"stylesheets"`

	// Fields holds every key, recognized or not.
	Fields map[string]any `yaml:"-"`
}

// FrontMatterError reports a front matter block that could not be parsed.
type FrontMatterError struct {
	File string

	// Line is the 1-based line in File, or 0 when unknown.
	Line int
	Err  error
}

func (e *FrontMatterError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: front matter: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: front matter: %v", e.File, e.Err)
}

func (e *FrontMatterError) Unwrap() error { return e.Err }

// Split separates a --- delimited YAML front matter block from the
// Markdown body. When the document has no front matter, had is false and
// body is the full input.
func Split(content []byte) (frontmatter, body []byte, had bool, err error) {
	nl := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		nl = "\r\n"
	}

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter on the last line has no trailing newline.
		if bytes.HasSuffix(content, []byte(nl+"---")) {
			return content[start : len(content)-3], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, nil
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// ParseFrontMatter decodes a raw front matter block. The returned line is
// the position of a syntax error within the block, or 0.
func ParseFrontMatter(raw []byte) (FrontMatter, int, error) {
	var fm FrontMatter
	if len(bytes.TrimSpace(raw)) == 0 {
		fm.Fields = map[string]any{}
		return fm, 0, nil
	}
	if err := yaml.Unmarshal(raw, &fm); err != nil {
		return fm, errorLine(err), err
	}
	if err := yaml.Unmarshal(raw, &fm.Fields); err != nil {
		return fm, errorLine(err), err
	}
	if fm.Fields == nil {
		fm.Fields = map[string]any{}
	}
	return fm, 0, nil
}

func errorLine(err error) int {
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// Fingerprint returns the content fingerprint of a document: its front
// matter, without any existing fingerprint field, and its body.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	forHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField {
			continue
		}
		forHash[k] = v
	}

	serialized := ""
	if len(forHash) > 0 {
		data, err := yaml.Marshal(forHash)
		if err != nil {
			return "", err
		}
		serialized = strings.TrimSuffix(string(data), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(serialized, string(body)), nil
}
