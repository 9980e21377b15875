package buffer

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// InsertChar inserts ch at column col of the given line. ch must be a single
// grapheme cluster and must not be a line break; use SplitLine for those.
// col may equal the line's length (append at end).
func (b *LineBuffer) InsertChar(line, col int, ch string) error {
	if line < 0 || line >= len(b.lines) {
		return &LineIndexError{Index: line}
	}
	// "\r\n" segments as a single cluster, so the newline check is separate.
	if strings.ContainsRune(ch, '\n') || !grapheme.IsCluster(ch) {
		return fmt.Errorf("insert %q: %w", ch, ErrNotCluster)
	}
	left, right, ok := grapheme.SplitAt(b.lines[line], col)
	if !ok {
		return &ColumnIndexError{Col: col, Line: line}
	}
	b.lines[line] = left + ch + right
	b.modified = true
	return nil
}

// RemoveChar removes and returns the cluster at column col of the given
// line. col must be strictly less than the line's length.
func (b *LineBuffer) RemoveChar(line, col int) (string, error) {
	if line < 0 || line >= len(b.lines) {
		return "", &LineIndexError{Index: line}
	}
	left, rest, ok := grapheme.SplitAt(b.lines[line], col)
	if !ok || rest == "" {
		return "", &ColumnIndexError{Col: col, Line: line}
	}
	removed, _ := grapheme.At(rest, 0)
	b.lines[line] = left + rest[len(removed):]
	b.modified = true
	return removed, nil
}

// SplitLine breaks the given line at column col, moving the text from col
// onward to a new line inserted directly below. col may equal the line's
// length (producing an empty new line).
func (b *LineBuffer) SplitLine(line, col int) error {
	if line < 0 || line >= len(b.lines) {
		return &LineIndexError{Index: line}
	}
	left, right, ok := grapheme.SplitAt(b.lines[line], col)
	if !ok {
		return &ColumnIndexError{Col: col, Line: line}
	}
	b.lines[line] = left
	rest := append([]string{right}, b.lines[line+1:]...)
	b.lines = append(b.lines[:line+1:line+1], rest...)
	b.modified = true
	return nil
}

// JoinWithPreviousLine appends the given line onto the line above it and
// removes it, shrinking the buffer by one line. It returns the previous
// line's length before the join, which is where a caller would place the
// cursor. Line 0 has no previous line and is always invalid.
func (b *LineBuffer) JoinWithPreviousLine(line int) (int, error) {
	if line <= 0 || line >= len(b.lines) {
		return 0, &LineIndexError{Index: line}
	}
	prevLen := grapheme.Count(b.lines[line-1])
	b.lines[line-1] += b.lines[line]
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	b.modified = true
	return prevLen, nil
}

// DeleteLine removes the line at index. A buffer never drops below one line:
// when only one line remains it is cleared in place instead of removed.
func (b *LineBuffer) DeleteLine(index int) error {
	if len(b.lines) == 1 {
		b.lines[0] = ""
		b.modified = true
		return nil
	}
	if index < 0 || index >= len(b.lines) {
		return &LineIndexError{Index: index}
	}
	b.lines = append(b.lines[:index], b.lines[index+1:]...)
	b.modified = true
	return nil
}
