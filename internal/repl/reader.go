package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// newReader uses line editing with history when in is a terminal and a plain
// scanner otherwise.
func newReader(in io.Reader, out io.Writer) lineReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(f.Fd())) {
		l := liner.NewLiner()
		l.SetCtrlCAborts(true)
		return &editReader{state: l}
	}

	return &scanReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

type editReader struct {
	state *liner.State
}

func (r *editReader) ReadLine(prompt string) (string, error) {
	s, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}

	if s != "" {
		r.state.AppendHistory(s)
	}
	return s, nil
}

func (r *editReader) Close() error {
	return r.state.Close()
}

type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (r *scanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return r.scanner.Text(), nil
}

func (r *scanReader) Close() error {
	return nil
}
