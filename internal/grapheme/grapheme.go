// Package grapheme provides grapheme-cluster indexing over plain strings.
//
// Columns throughout quill are 0-based grapheme cluster positions, so a
// column can never land inside a multi-byte rune or a combining sequence.
package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	n := 0
	state := -1
	for len(text) > 0 {
		_, text, _, state = uniseg.StepString(text, state)
		n++
	}
	return n
}

// At returns the cluster at column col. ok is false when col is out of range.
func At(text string, col int) (cluster string, ok bool) {
	if col < 0 {
		return "", false
	}
	state := -1
	for len(text) > 0 {
		cluster, text, _, state = uniseg.StepString(text, state)
		if col == 0 {
			return cluster, true
		}
		col--
	}
	return "", false
}

// SplitAt splits text before column col. col may equal Count(text), in which
// case right is empty. ok is false when col is negative or past the end.
func SplitAt(text string, col int) (left, right string, ok bool) {
	if col < 0 {
		return "", "", false
	}
	off := 0
	rest := text
	state := -1
	for col > 0 {
		if len(rest) == 0 {
			return "", "", false
		}
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		off += len(cluster)
		col--
	}
	return text[:off], text[off:], true
}

// IsCluster reports whether s is exactly one grapheme cluster.
func IsCluster(s string) bool {
	if s == "" {
		return false
	}
	_, rest, _, _ := uniseg.StepString(s, -1)
	return rest == ""
}
