// Package buffer implements the line-oriented document model for quill.
//
// A LineBuffer owns the text of one document as an ordered sequence of
// lines and never holds fewer than one line. Columns are 0-based grapheme
// cluster positions; line indices are 0-based and contiguous.
//
// The model tracks no cursor, selection, or view state. Those belong to the
// caller (a command or rendering layer), which drives the buffer through the
// mutation methods and persists it with Save or SaveAs.
package buffer
