package program_test

import (
	"testing"

	"lnbasic/pkg/program"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("ordered insert", func(t *testing.T) {
		s := program.NewStore()
		s.Insert(30, "NEXT I")
		s.Insert(10, "FOR I = 1 TO 3")
		s.Insert(20, "PRINT I")

		require.EqualValues(t, 3, s.Len())
		require.Equal(t, []program.Line{
			{Number: 10, Text: "FOR I = 1 TO 3"},
			{Number: 20, Text: "PRINT I"},
			{Number: 30, Text: "NEXT I"},
		}, s.Lines())

		first, ok := s.First()
		require.True(t, ok)
		require.EqualValues(t, 10, first.Number)
	})
	t.Run("replace", func(t *testing.T) {
		s := program.NewStore()
		s.Insert(10, "PRINT 1")
		s.Insert(10, "PRINT 2")
		require.EqualValues(t, 1, s.Len())

		line, ok := s.Find(10)
		require.True(t, ok)
		require.EqualValues(t, "PRINT 2", line.Text)
	})
	t.Run("delete", func(t *testing.T) {
		s := program.NewStore()
		s.Insert(10, "PRINT 1")
		s.Delete(99)
		require.EqualValues(t, 1, s.Len())
		s.Delete(10)
		require.EqualValues(t, 0, s.Len())
		_, ok := s.Find(10)
		require.False(t, ok)
	})
	t.Run("next after", func(t *testing.T) {
		s := program.NewStore()
		s.Insert(10, "A = 1")
		s.Insert(20, "A = 2")
		s.Insert(100, "END")

		next, ok := s.NextAfter(10)
		require.True(t, ok)
		require.EqualValues(t, 20, next.Number)

		next, ok = s.NextAfter(25)
		require.True(t, ok)
		require.EqualValues(t, 100, next.Number)

		next, ok = s.NextAfter(-1)
		require.True(t, ok)
		require.EqualValues(t, 10, next.Number)

		_, ok = s.NextAfter(100)
		require.False(t, ok)
	})
	t.Run("clear", func(t *testing.T) {
		s := program.NewStore()
		s.Insert(10, "A = 1")
		s.Insert(20, "A = 2")
		s.Clear()
		require.EqualValues(t, 0, s.Len())
		_, ok := s.First()
		require.False(t, ok)
	})
	t.Run("ascend stops early", func(t *testing.T) {
		s := program.NewStore()
		for n := 1; n <= 5; n++ {
			s.Insert(n*10, "END")
		}
		var seen []int
		s.Ascend(func(line program.Line) bool {
			seen = append(seen, line.Number)
			return line.Number < 30
		})
		require.Equal(t, []int{10, 20, 30}, seen)
	})
}

func TestValidLineNumber(t *testing.T) {
	require.True(t, program.ValidLineNumber(0))
	require.True(t, program.ValidLineNumber(65535))
	require.False(t, program.ValidLineNumber(65536))
	require.False(t, program.ValidLineNumber(-1))
}
