// Package models defines the diary data model.
package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// HeaderLayout renders an entry timestamp as weekday, month, day, year and
// 12-hour clock time, e.g. " Monday January 02, 2006 03:04PM".
const HeaderLayout = " Monday January 02, 2006 03:04PM"

// Entry is a single diary record. Entries are created and deleted, never edited.
type Entry struct {
	// ID is assigned by the repository on creation.
	ID string

	// Content is the trimmed, non-empty body text.
	Content string

	// Timestamp is the creation time.
	Timestamp time.Time
}

// NewEntry returns an entry with trimmed content stamped at the given time.
// The ID is left empty for the repository to assign.
func NewEntry(content string, at time.Time) *Entry {
	return &Entry{Content: strings.TrimSpace(content), Timestamp: at}
}

// IsBlank reports whether the entry has nothing worth persisting.
func (e *Entry) IsBlank() bool {
	return strings.TrimSpace(e.Content) == ""
}

// Header formats the entry timestamp in local time using HeaderLayout.
func (e *Entry) Header() string {
	return e.Timestamp.Local().Format(HeaderLayout)
}

// Rule returns a line of '=' as wide as s.
func Rule(s string) string {
	return strings.Repeat("=", utf8.RuneCountInString(s))
}
