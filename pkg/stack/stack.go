package stack

import (
	"errors"

	"github.com/gammazero/deque"
)

// ErrFull is returned by Push when the stack already holds its maximum depth
var ErrFull = errors.New("stack depth exceeded")

// Stack is an unbounded LIFO. A positive limit caps its depth so that a
// runaway program fails with ErrFull instead of exhausting memory.
type Stack[T any] struct {
	d     *deque.Deque[T]
	limit int
}

// NewStack creates a new stack instance. limit <= 0 means unbounded.
func NewStack[T any](limit int, elm ...T) *Stack[T] {
	stack := Stack[T]{
		d:     new(deque.Deque[T]),
		limit: limit,
	}

	for _, e := range elm {
		stack.d.PushBack(e)
	}

	return &stack
}

// Push adds an element to the top of the stack
func (s *Stack[T]) Push(elm T) error {
	if s.limit > 0 && s.d.Len() >= s.limit {
		return ErrFull
	}

	s.d.PushBack(elm)
	return nil
}

// Pop removes and returns the top element of the stack
func (s *Stack[T]) Pop() (T, bool) {
	if s.d.Len() < 1 {
		var zero T
		return zero, false
	}

	return s.d.PopBack(), true
}

// Peek returns the top element of the stack without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if s.d.Len() < 1 {
		var zero T
		return zero, false
	}

	return s.d.Back(), true
}

// Get the size of the stack
func (s *Stack[T]) Size() int {
	return s.d.Len()
}

// Clear drops every element
func (s *Stack[T]) Clear() {
	s.d.Clear()
}

// Array returns the elements bottom first
func (s *Stack[T]) Array() []T {
	a := make([]T, 0, s.d.Len())
	for i := 0; i < s.d.Len(); i++ {
		a = append(a, s.d.At(i))
	}

	return a
}
