package buffer

import (
	"fmt"
	"os"
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// NoName is the display name of a buffer with no associated file.
const NoName = "[No Name]"

// LineBuffer is the canonical in-memory text of one document.
type LineBuffer struct {
	source   string // "" means unnamed, never saved
	lines    []string
	modified bool
}

// New returns an unnamed buffer holding a single empty line.
func New() *LineBuffer {
	return &LineBuffer{lines: []string{""}}
}

// Load reads the file at path into a new buffer associated with that path.
//
// The file is read whole as UTF-8 and split on '\n'. A trailing newline is
// kept as an explicit empty final line, so an unedited buffer saves back
// byte-identically. '\r' is not normalized; a file with "\r\n" endings keeps
// the '\r' at the end of each line.
func Load(path string) (*LineBuffer, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &LineBuffer{source: path, lines: splitLines(string(data))}, nil
}

// LineCount returns the number of lines, always at least 1.
func (b *LineBuffer) LineCount() int { return len(b.lines) }

// Line returns the text of the line at index.
func (b *LineBuffer) Line(index int) (string, error) {
	if index < 0 || index >= len(b.lines) {
		return "", &LineIndexError{Index: index}
	}
	return b.lines[index], nil
}

// LineLength returns the grapheme cluster count of the line at index.
func (b *LineBuffer) LineLength(index int) (int, error) {
	if index < 0 || index >= len(b.lines) {
		return 0, &LineIndexError{Index: index}
	}
	return grapheme.Count(b.lines[index]), nil
}

// DisplayName returns the source path, or NoName for an unnamed buffer.
func (b *LineBuffer) DisplayName() string {
	if b.source == "" {
		return NoName
	}
	return b.source
}

// Modified reports whether the content has changed since the last load or
// successful save.
func (b *LineBuffer) Modified() bool { return b.modified }

// Text serializes the document: lines joined by '\n', no newline appended.
func (b *LineBuffer) Text() string {
	return strings.Join(b.lines, "\n")
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
