package interpreter

import (
	"errors"
	"fmt"

	"lnbasic/pkg/lexer"
)

// ErrorKind classifies every failure a statement or a run can end with
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	UndefinedVariable
	UnknownFunction
	ArityMismatch
	DivisionByZero
	ControlFlowError
	InvalidLineNumber
	LineNotFound
	ResourceExhausted
)

var (
	ErrSyntax            = errors.New("syntax error")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrArityMismatch     = errors.New("arity mismatch")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrControlFlow       = errors.New("control flow error")
	ErrInvalidLineNumber = errors.New("invalid line number")
	ErrLineNotFound      = errors.New("line not found")
	ErrResourceExhausted = errors.New("resource exhausted")

	ErrFunctionExists      = errors.New("function already registered")
	ErrInvalidFunctionName = errors.New("invalid function name")
	ErrInvalidArity        = errors.New("invalid function arity")
)

var kindSentinels = map[ErrorKind]error{
	SyntaxError:       ErrSyntax,
	UndefinedVariable: ErrUndefinedVariable,
	UnknownFunction:   ErrUnknownFunction,
	ArityMismatch:     ErrArityMismatch,
	DivisionByZero:    ErrDivisionByZero,
	ControlFlowError:  ErrControlFlow,
	InvalidLineNumber: ErrInvalidLineNumber,
	LineNotFound:      ErrLineNotFound,
	ResourceExhausted: ErrResourceExhausted,
}

// String returns the name of the error kind
func (k ErrorKind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Error is the first failure met while parsing or executing one statement.
// Pos is the cursor position on the line when the failure was detected.
type Error struct {
	Kind ErrorKind
	Msg  string
	Pos  lexer.Position
}

func (e *Error) Error() string {
	return e.Msg
}

// Unwrap exposes the kind sentinel so callers can use errors.Is
func (e *Error) Unwrap() error {
	return kindSentinels[e.Kind]
}

func newError(kind ErrorKind, pos lexer.Position, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Pos:  pos,
	}
}

// RunError annotates a failure with the program line that was executing
type RunError struct {
	Line int
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("Error in line %d: %s", e.Line, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err if it carries one
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
