package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound reports a Load of a path that does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrNoDestination reports a Save on a buffer with no associated path.
	ErrNoDestination = errors.New("no file path set")

	// ErrNotCluster reports an insert whose text is not a single
	// line-break-free grapheme cluster.
	ErrNotCluster = errors.New("not a single grapheme cluster")

	// ErrLineIndex matches any LineIndexError via errors.Is.
	ErrLineIndex = errors.New("invalid line index")

	// ErrColumnIndex matches any ColumnIndexError via errors.Is.
	ErrColumnIndex = errors.New("invalid column index")
)

// LineIndexError reports a line index outside [0, LineCount()).
type LineIndexError struct {
	Index int
}

func (e *LineIndexError) Error() string {
	return fmt.Sprintf("invalid line index: %d", e.Index)
}

func (e *LineIndexError) Is(target error) bool { return target == ErrLineIndex }

// ColumnIndexError reports a column outside the valid range for its line.
type ColumnIndexError struct {
	Col  int
	Line int
}

func (e *ColumnIndexError) Error() string {
	return fmt.Sprintf("invalid column index: %d in line %d", e.Col, e.Line)
}

func (e *ColumnIndexError) Is(target error) bool { return target == ErrColumnIndex }
