package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_SingleEmptyLine(t *testing.T) {
	b := New()
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	line, err := b.Line(0)
	if err != nil {
		t.Fatalf("Line(0): %v", err)
	}
	if line != "" {
		t.Fatalf("line 0=%q, want empty", line)
	}
	if b.Modified() {
		t.Fatalf("new buffer must not be modified")
	}
	if got := b.DisplayName(); got != NoName {
		t.Fatalf("display name=%q, want %q", got, NoName)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err=%v, want ErrSourceNotFound", err)
	}
}

func TestLoad_SplitsLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty file", content: "", want: []string{""}},
		{name: "no trailing newline", content: "a\nbc", want: []string{"a", "bc"}},
		{name: "trailing newline kept as empty line", content: "a\nbc\n", want: []string{"a", "bc", ""}},
		{name: "crlf not normalized", content: "a\r\nb", want: []string{"a\r", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			b, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := b.LineCount(); got != len(tc.want) {
				t.Fatalf("line count=%d, want %d", got, len(tc.want))
			}
			for i, want := range tc.want {
				got, err := b.Line(i)
				if err != nil {
					t.Fatalf("Line(%d): %v", i, err)
				}
				if got != want {
					t.Fatalf("line %d=%q, want %q", i, got, want)
				}
			}
			if b.Modified() {
				t.Fatalf("freshly loaded buffer must not be modified")
			}
			if got := b.DisplayName(); got != path {
				t.Fatalf("display name=%q, want %q", got, path)
			}
		})
	}
}

func TestLine_OutOfRange(t *testing.T) {
	b := New()
	for _, idx := range []int{-1, 1, 99} {
		if _, err := b.Line(idx); !errors.Is(err, ErrLineIndex) {
			t.Fatalf("Line(%d): err=%v, want ErrLineIndex", idx, err)
		}
		if _, err := b.LineLength(idx); !errors.Is(err, ErrLineIndex) {
			t.Fatalf("LineLength(%d): err=%v, want ErrLineIndex", idx, err)
		}
	}

	var lerr *LineIndexError
	_, err := b.Line(7)
	if !errors.As(err, &lerr) || lerr.Index != 7 {
		t.Fatalf("err=%v, want LineIndexError with index 7", err)
	}
}

func TestLineLength_CountsClusters(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{line: "", want: 0},
		{line: "hello", want: 5},
		{line: "héllo", want: 5},
		{line: "e\u0301x", want: 2}, // combining accent folds into one cluster
		{line: "a👍b", want: 3},
	}

	for _, tc := range cases {
		b := bufferWithLines(t, tc.line)
		got, err := b.LineLength(0)
		if err != nil {
			t.Fatalf("LineLength(%q): %v", tc.line, err)
		}
		if got != tc.want {
			t.Fatalf("LineLength(%q)=%d, want %d", tc.line, got, tc.want)
		}
	}
}

func TestText_JoinsWithoutTrailingNewline(t *testing.T) {
	b := bufferWithLines(t, "a", "bc", "")
	if got, want := b.Text(), "a\nbc\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if b.Modified() {
		t.Fatalf("Text must not touch the modified flag")
	}
}

// bufferWithLines builds an unnamed, unmodified buffer holding exactly the
// given lines.
func bufferWithLines(t *testing.T, lines ...string) *LineBuffer {
	t.Helper()
	if len(lines) == 0 {
		t.Fatalf("bufferWithLines needs at least one line")
	}
	return &LineBuffer{lines: append([]string(nil), lines...)}
}
