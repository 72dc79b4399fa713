package interpreter_test

import (
	"strings"
	"testing"

	"lnbasic/pkg/interpreter"

	"github.com/stretchr/testify/require"
)

// recorder collects everything the interpreter emits
type recorder struct {
	calls []string
}

func (r *recorder) sink(s string) {
	r.calls = append(r.calls, s)
}

func (r *recorder) String() string {
	return strings.Join(r.calls, "")
}

func (r *recorder) reset() {
	r.calls = nil
}

func newInterpreter(t *testing.T, opts ...interpreter.Option) (*interpreter.Interpreter, *recorder) {
	t.Helper()

	out := &recorder{}
	opts = append([]interpreter.Option{interpreter.WithSink(out.sink)}, opts...)
	return interpreter.New(opts...), out
}

func submit(t *testing.T, it *interpreter.Interpreter, lines ...string) {
	t.Helper()

	for _, line := range lines {
		_, err := it.SubmitLine(line)
		require.NoError(t, err, "input %q", line)
	}
}

func eval(t *testing.T, it *interpreter.Interpreter, input string) float64 {
	t.Helper()

	outcome, err := it.SubmitLine(input)
	require.NoError(t, err, "input %q", input)
	require.Equal(t, interpreter.ImmediateResult, outcome.Kind)
	return outcome.Value
}

func evalErr(t *testing.T, it *interpreter.Interpreter, input string, target error) *interpreter.Error {
	t.Helper()

	_, err := it.SubmitLine(input)
	require.Error(t, err, "input %q", input)
	require.ErrorIs(t, err, target, "input %q", input)

	var e *interpreter.Error
	require.ErrorAs(t, err, &e)
	return e
}

// runProgram stores lines, runs them and returns the output of RUN only
func runProgram(t *testing.T, it *interpreter.Interpreter, out *recorder, lines ...string) string {
	t.Helper()

	submit(t, it, lines...)
	out.reset()

	outcome, err := it.SubmitLine("RUN")
	require.NoError(t, err)
	require.Equal(t, interpreter.CommandHandled, outcome.Kind)
	return out.String()
}
