package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/treesite/pkg/export"
	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/site"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    "E102",
			wantMsg: "Invalid configuration file",
			wantCat: CategoryConfig,
		},
		{
			name:    "content error",
			code:    "E111",
			wantMsg: "Invalid front matter",
			wantCat: CategoryContent,
		},
		{
			name:    "build error",
			code:    "E203",
			wantMsg: "Export path collision",
			wantCat: CategoryBuild,
		},
		{
			name:    "dev error",
			code:    "E401",
			wantMsg: "Preview server failed",
			wantCat: CategoryDev,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "unknown example %q", "blog")
	if err.Message != `unknown example "blog"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestError_Error(t *testing.T) {
	err := New("E202")
	if got, want := err.Error(), "E202: Duplicate page path"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := New("E303").Wrap(fmt.Errorf("disk full"))
	if got, want := wrapped.Error(), "E303: Failed to write file: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	plain := &Error{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestError_WithLocation(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "treesite.yaml")
	content := "title: Docs\ncontent: content\nbuild:\n  strategy: [parallel\n  workers: 4\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("E102").WithLocation(tmpFile, 4, 3)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != tmpFile || err.Location.Line != 4 || err.Location.Column != 3 {
		t.Errorf("Location = %+v", err.Location)
	}
	want := []string{"content: content", "build:", "  strategy: [parallel", "  workers: 4"}
	if strings.Join(err.Context, "|") != strings.Join(want, "|") {
		t.Errorf("Context = %q, want %q", err.Context, want)
	}
}

func TestError_Builders(t *testing.T) {
	err := New("E201").WithDetail("custom").WithSuggestion("try again")
	if err.Detail != "custom" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "try again" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}

	inner := New("E303")
	outer := New("E201").Wrap(inner)
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E201") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	coded := New("E202")
	if FromError(fmt.Errorf("context: %w", coded), "E201") != coded {
		t.Error("FromError should return a wrapped Error as-is")
	}

	stdErr := stderrors.New("test error")
	if result := FromError(stdErr, "E201"); result.Wrapped != stdErr || result.Code != "E201" {
		t.Errorf("FromError = %+v", result)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"duplicate page", fmt.Errorf("add: %w", site.ErrDuplicatePage), "E202"},
		{"collision", &site.BuildError{Phase: site.PhaseExportPages, Err: site.ErrExportPathCollision}, "E203"},
		{"attribute", &site.BuildError{Phase: site.PhaseRenderPages, Err: node.ErrInvalidAttributeName}, "E206"},
		{"root undefined", fmt.Errorf("write /: %w", export.ErrRootPathUndefined), "E301"},
		{"cancelled", &site.BuildError{Phase: site.PhaseBuildPages, Err: context.Canceled}, "E208"},
		{"other build failure", &site.BuildError{Phase: site.PhaseBuildPages, Err: stderrors.New("boom")}, "E201"},
		{"write failed", &site.BuildError{Phase: site.PhaseFinalizeSiteBuild, Err: fmt.Errorf("%w: /a.html: %w", export.ErrWriteFailed, stderrors.New("disk full"))}, "E303"},
		{"upload failed", fmt.Errorf("%w: s3 /a.html: %w", export.ErrUploadFailed, stderrors.New("denied")), "E304"},
		{"fallback", stderrors.New("boom"), "E401"},
		{"already coded", New("E110"), "E110"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, "E401")
			if got.Code != tt.want {
				t.Errorf("Classify() code = %q, want %q", got.Code, tt.want)
			}
			if !stderrors.Is(got, tt.err) {
				t.Error("classified error does not wrap the original")
			}
		})
	}
	if Classify(nil, "E201") != nil {
		t.Error("Classify(nil) should return nil")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{
			name: "nil location",
			loc:  nil,
			want: "",
		},
		{
			name: "with column",
			loc:  &Location{File: "index.md", Line: 10, Column: 5},
			want: "index.md:10:5",
		},
		{
			name: "without column",
			loc:  &Location{File: "index.md", Line: 10, Column: 0},
			want: "index.md:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loc.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "post.md")
	content := "---\ntitle: [unclosed\n---\n# Post\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("E111").
		WithLocation(tmpFile, 2, 8).
		WithSuggestion("Close the bracket").
		Wrap(stderrors.New("yaml: line 1: did not find expected ',' or ']'"))

	formatted := err.Format()

	for _, want := range []string{
		"ERROR E111: Invalid front matter",
		tmpFile + ":2:8",
		"→    2 │ title: [unclosed",
		"Hint: Close the bracket",
		"Cause: yaml: line 1",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
	if strings.Contains(formatted, "\033[") {
		t.Error("Format() contains ANSI codes with colors disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E111").WithLocation("post.md", 10, 5)
	want := "post.md:10:5: E111: Invalid front matter"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E111").WithLocation("post.md", 10, 5).Wrap(stderrors.New("bad"))

	var got map[string]any
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &got); jerr != nil {
		t.Fatalf("FormatJSON() is not valid JSON: %v", jerr)
	}
	if got["code"] != "E111" || got["category"] != "content" || got["cause"] != "bad" {
		t.Errorf("FormatJSON() = %v", got)
	}
	loc, ok := got["location"].(map[string]any)
	if !ok || loc["file"] != "post.md" || loc["line"] != float64(10) {
		t.Errorf("location = %v", got["location"])
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	found := false
	for _, code := range codes {
		if !strings.HasPrefix(code, "E") || len(code) != 4 {
			t.Errorf("malformed code %q", code)
		}
		if code == "E201" {
			found = true
		}
	}
	if !found {
		t.Error("E201 should be in the codes list")
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E205")
	if !ok {
		t.Fatal("E205 should exist")
	}
	if template.Suggestion != "Use sync or parallel" {
		t.Errorf("Suggestion = %q", template.Suggestion)
	}

	if _, ok = GetTemplate("E999"); ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryBuild,
		Message:  "Custom test error",
		Detail:   "This is a test error",
	})
	defer delete(registry, "E999")

	err := New("E999")
	if err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	if got = wrapText("", 10); len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestColorFunctions(t *testing.T) {
	EnableColors()
	if !strings.Contains(red("test"), "\033[31m") {
		t.Error("red should contain ANSI code when colors enabled")
	}

	DisableColors()
	if strings.Contains(red("test"), "\033[") {
		t.Error("red should not contain ANSI code when colors disabled")
	}
	EnableColors()
}
