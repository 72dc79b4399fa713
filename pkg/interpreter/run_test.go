package interpreter_test

import (
	"testing"

	"lnbasic/pkg/interpreter"

	"github.com/stretchr/testify/require"
)

func TestRunPrograms(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "for loop",
			lines:    []string{"10 FOR I = 1 TO 3", "20 PRINT I", "30 NEXT I"},
			expected: "1\n2\n3\n",
		},
		{
			name:     "gosub",
			lines:    []string{"10 GOSUB 100", "20 PRINT 1", "30 END", "100 PRINT 2", "110 RETURN"},
			expected: "2\n1\n",
		},
		{
			name: "nested loops",
			lines: []string{
				"10 FOR I = 1 TO 2",
				"20 FOR J = 1 TO 2",
				"30 PRINT I, J",
				"40 NEXT J",
				"50 NEXT I",
			},
			expected: "1 1\n1 2\n2 1\n2 2\n",
		},
		{
			name:     "negative step",
			lines:    []string{"10 FOR I = 3 TO 1 STEP -1", "20 PRINT I", "30 NEXT I"},
			expected: "3\n2\n1\n",
		},
		{
			name:     "fractional step",
			lines:    []string{"10 FOR X = 0 TO 1 STEP 0.5", "20 PRINT X", "30 NEXT X"},
			expected: "0\n0.5\n1\n",
		},
		{
			name:     "body runs once when start is past end",
			lines:    []string{"10 FOR I = 5 TO 1", "20 PRINT I", "30 NEXT I"},
			expected: "5\n",
		},
		{
			name: "if loop",
			lines: []string{
				"10 X = 0",
				"20 X = X + 1",
				"30 IF X < 3 THEN 20",
				"40 PRINT X",
			},
			expected: "3\n",
		},
		{
			name:     "end stops the program",
			lines:    []string{"10 PRINT 1", "20 END", "30 PRINT 2"},
			expected: "1\n",
		},
		{
			name:     "goto target is only checked when taken",
			lines:    []string{"10 END", "20 GOTO 999"},
			expected: "",
		},
		{
			name:     "return after last line halts",
			lines:    []string{"10 GOTO 100", "50 PRINT 5", "60 RETURN", "100 GOSUB 50"},
			expected: "5\n",
		},
		{
			// NEXT resumes at the line following the FOR line, wherever the
			// loop body was entered from
			name: "next resumes after the for line",
			lines: []string{
				"10 GOTO 40",
				"20 PRINT I",
				"30 NEXT I",
				"35 END",
				"40 FOR I = 1 TO 2",
				"50 GOTO 20",
			},
			expected: "1\n2\n",
		},
		{
			name:     "lines run in numeric order",
			lines:    []string{"30 PRINT 3", "10 PRINT 1", "20 PRINT 2"},
			expected: "1\n2\n3\n",
		},
		{
			name:     "goto error",
			lines:    []string{"10 GOTO 999"},
			expected: "Error in line 10: line 999 not found\n",
		},
		{
			name:     "if-then target missing",
			lines:    []string{"10 IF 1 = 1 THEN 50"},
			expected: "Error in line 10: line 50 not found\n",
		},
		{
			name:     "next without for",
			lines:    []string{"10 NEXT I"},
			expected: "Error in line 10: NEXT without matching FOR\n",
		},
		{
			name:     "return without gosub",
			lines:    []string{"10 PRINT 1", "20 RETURN"},
			expected: "1\nError in line 20: RETURN without matching GOSUB\n",
		},
		{
			name:     "mismatched next",
			lines:    []string{"10 FOR I = 1 TO 2", "20 FOR J = 1 TO 2", "30 NEXT I"},
			expected: "Error in line 30: NEXT variable doesn't match FOR variable\n",
		},
		{
			name:     "syntax error",
			lines:    []string{"10 PRINT (1"},
			expected: "Error in line 10: expected ')'\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			it, out := newInterpreter(t)
			require.Equal(t, test.expected, runProgram(t, it, out, test.lines...))
		})
	}
}

func TestRunLeavesLoopVariable(t *testing.T) {
	it, out := newInterpreter(t)

	runProgram(t, it, out, "10 FOR I = 1 TO 3", "20 PRINT I", "30 NEXT I")

	v, ok := it.Variable("I")
	require.True(t, ok)
	require.EqualValues(t, 4, v)
}

func TestRunErrorKeepsState(t *testing.T) {
	it, out := newInterpreter(t)

	output := runProgram(t, it, out, "10 x = 1", "20 y = 1/0", "30 x = 2")
	require.Equal(t, "Error in line 20: division by zero\n", output)

	v, _ := it.Variable("x")
	require.EqualValues(t, 1, v)

	_, ok := it.Variable("y")
	require.False(t, ok)

	// the program is still there after a failed run
	require.Equal(t, 3, it.Snapshot().Lines)
}

func TestRunKeepsVariables(t *testing.T) {
	it, out := newInterpreter(t)

	submit(t, it, "x = 5")
	require.Equal(t, "5\n", runProgram(t, it, out, "10 PRINT x"))

	submit(t, it, "10 x = x * 2")
	runProgram(t, it, out)
	v, _ := it.Variable("x")
	require.EqualValues(t, 10, v)
}

func TestRunClearsStacks(t *testing.T) {
	it, out := newInterpreter(t)

	submit(t, it, "FOR I = 1 TO 3", "GOSUB 10")
	require.Equal(t, 1, it.Snapshot().ForDepth)
	require.Equal(t, 1, it.Snapshot().GosubDepth)

	runProgram(t, it, out, "10 PRINT 1")
	require.Equal(t, 0, it.Snapshot().ForDepth)
	require.Equal(t, 0, it.Snapshot().GosubDepth)
}

func TestRunEmptyProgram(t *testing.T) {
	it, out := newInterpreter(t)
	require.Empty(t, runProgram(t, it, out))
}

func TestRunLimits(t *testing.T) {
	t.Run("steps", func(t *testing.T) {
		it, out := newInterpreter(t, interpreter.WithMaxSteps(100))
		output := runProgram(t, it, out, "10 GOTO 10")
		require.Equal(t, "Error in line 10: maximum steps exceeded\n", output)
	})

	t.Run("gosub depth", func(t *testing.T) {
		it, out := newInterpreter(t, interpreter.WithMaxDepth(3))
		output := runProgram(t, it, out, "10 GOSUB 10")
		require.Equal(t, "Error in line 10: GOSUB stack exhausted\n", output)
	})

	t.Run("for depth", func(t *testing.T) {
		it, out := newInterpreter(t, interpreter.WithMaxDepth(3))
		output := runProgram(t, it, out, "10 FOR I = 1 TO 2", "20 GOTO 10")
		require.Equal(t, "Error in line 10: FOR stack exhausted\n", output)
	})
}
