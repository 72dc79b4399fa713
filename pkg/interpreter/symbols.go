package interpreter

import (
	"fmt"

	"github.com/charmbracelet/log"

	"lnbasic/pkg/lexer"
)

// Variadic is the arity of functions accepting any number of arguments
const Variadic = -1

// NativeFunc implements a function callable from BASIC expressions
type NativeFunc func(args []float64) float64

// Function is one entry of the function registry
type Function struct {
	Name  string
	Arity int // fixed argument count, or Variadic
	Impl  NativeFunc
}

// RegisterFunction makes fn callable as name(...). Names are case-sensitive
// and a name can only be registered once per Reset.
func (i *Interpreter) RegisterFunction(name string, arity int, fn NativeFunc) error {
	if !lexer.IsIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFunctionName, name)
	}

	if arity < Variadic {
		return fmt.Errorf("%w: %d", ErrInvalidArity, arity)
	}

	if fn == nil {
		return fmt.Errorf("function %q has no implementation", name)
	}

	if _, ok := i.funcs[name]; ok {
		return fmt.Errorf("%w: %q", ErrFunctionExists, name)
	}

	i.funcs[name] = Function{Name: name, Arity: arity, Impl: fn}
	log.Debug("Registered function", "name", name, "arity", arity)

	return nil
}

// setVar creates or updates a variable
func (i *Interpreter) setVar(name string, v float64) {
	i.vars[name] = v
}

// getVar reads a variable; reading a variable that was never assigned is an error
func (i *Interpreter) getVar(name string, pos lexer.Position) (float64, error) {
	v, ok := i.vars[name]
	if !ok {
		return 0, newError(UndefinedVariable, pos, "undefined variable '%s'", name)
	}

	return v, nil
}
