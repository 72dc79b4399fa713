// Package program holds the line-numbered program text of a BASIC session.
package program

import (
	"github.com/google/btree"
)

const (
	MinLineNumber = 0
	MaxLineNumber = 65535
)

// Line is one stored program line. Text is kept verbatim and parsed again on
// every execution.
type Line struct {
	Number int
	Text   string
}

func lineLess(a, b Line) bool {
	return a.Number < b.Number
}

// Store is the ordered collection of program lines, unique by line number
type Store struct {
	code *btree.BTreeG[Line]
}

// NewStore creates an empty program store
func NewStore() *Store {
	return &Store{
		code: btree.NewG[Line](4, lineLess),
	}
}

// ValidLineNumber reports whether n can address a program line
func ValidLineNumber(n int) bool {
	return n >= MinLineNumber && n <= MaxLineNumber
}

// Insert stores text under n, replacing any existing line with that number
func (s *Store) Insert(n int, text string) {
	s.code.ReplaceOrInsert(Line{Number: n, Text: text})
}

// Delete removes line n. Deleting a missing line is a no-op.
func (s *Store) Delete(n int) {
	s.code.Delete(Line{Number: n})
}

// Find returns the line numbered n
func (s *Store) Find(n int) (Line, bool) {
	return s.code.Get(Line{Number: n})
}

// First returns the lowest numbered line
func (s *Store) First() (Line, bool) {
	return s.code.Min()
}

// NextAfter returns the line with the smallest number strictly greater than n
func (s *Store) NextAfter(n int) (Line, bool) {
	var (
		next  Line
		found bool
	)

	s.code.AscendGreaterOrEqual(Line{Number: n + 1},
		func(line Line) bool {
			next = line
			found = true
			return false
		})

	return next, found
}

// Ascend calls fn for every line in ascending order until fn returns false
func (s *Store) Ascend(fn func(line Line) bool) {
	s.code.Ascend(btree.ItemIteratorG[Line](fn))
}

// Lines returns a copy of all lines in ascending order
func (s *Store) Lines() []Line {
	lines := make([]Line, 0, s.code.Len())
	s.Ascend(func(line Line) bool {
		lines = append(lines, line)
		return true
	})

	return lines
}

// Len returns the number of stored lines
func (s *Store) Len() int {
	return s.code.Len()
}

// Clear removes every line
func (s *Store) Clear() {
	s.code.Clear(false)
}
