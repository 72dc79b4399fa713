package interpreter

import (
	"io"
	"sort"

	"lnbasic/pkg/program"
	"lnbasic/pkg/stack"
)

// Interpreter owns every piece of session state: variables, registered
// functions, the stored program and both control-flow stacks. It is not safe
// for concurrent use; hosts must serialize calls.
type Interpreter struct {
	vars  map[string]float64  // symbol table
	funcs map[string]Function // function registry

	program *program.Store // stored program lines

	forStack   *stack.Stack[ForFrame]   // active FOR loops
	gosubStack *stack.Stack[GosubFrame] // pending GOSUB returns

	sink func(string) // output sink for PRINT, LIST and run diagnostics

	maxSteps int // maximum lines executed per RUN (0 = unlimited)
	maxDepth int // maximum FOR/GOSUB stack depth (0 = unlimited)
}

type Option func(*Interpreter)

// WithSink sets the function receiving every piece of program output
func WithSink(sink func(string)) Option {
	return func(i *Interpreter) { i.sink = sink }
}

// WithWriter sends program output to w
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) {
		i.sink = func(s string) { _, _ = io.WriteString(w, s) }
	}
}

// WithMaxSteps limits the number of lines a single RUN may execute
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithMaxDepth caps the depth of the FOR and GOSUB stacks
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// New creates an interpreter with builtins registered and nothing stored
func New(opts ...Option) *Interpreter {
	it := &Interpreter{}

	for _, o := range opts {
		o(it)
	}

	if it.sink == nil {
		it.sink = func(string) {}
	}

	it.Reset()
	return it
}

// Reset clears variables, functions, program lines and both stacks, then
// registers the builtin functions again. The output sink is kept.
func (i *Interpreter) Reset() {
	i.vars = make(map[string]float64)
	i.funcs = make(map[string]Function)
	i.program = program.NewStore()
	i.forStack = stack.NewStack[ForFrame](i.maxDepth)
	i.gosubStack = stack.NewStack[GosubFrame](i.maxDepth)

	registerBuiltins(i)
}

func (i *Interpreter) emit(s string) {
	i.sink(s)
}

// Variable returns the current value of a variable
func (i *Interpreter) Variable(name string) (float64, bool) {
	v, ok := i.vars[name]
	return v, ok
}

// Snapshot is a read-only view of the interpreter state
type Snapshot struct {
	Variables  map[string]float64
	Functions  []string
	Lines      int
	ForDepth   int
	GosubDepth int
}

// Snapshot copies the current state for inspection by a host
func (i *Interpreter) Snapshot() Snapshot {
	vars := make(map[string]float64, len(i.vars))
	for name, v := range i.vars {
		vars[name] = v
	}

	funcs := make([]string, 0, len(i.funcs))
	for name := range i.funcs {
		funcs = append(funcs, name)
	}
	sort.Strings(funcs)

	return Snapshot{
		Variables:  vars,
		Functions:  funcs,
		Lines:      i.program.Len(),
		ForDepth:   i.forStack.Size(),
		GosubDepth: i.gosubStack.Size(),
	}
}
