package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/goforj/godump"

	"lnbasic/pkg/color"
	"lnbasic/pkg/interpreter"
)

const (
	banner = "LNBASIC Interpreter with line numbers. Ctrl-C/Ctrl-D to exit."
	prompt = "> "
)

type REPL struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable debug logging
	NoColor    bool   // Disable colored output
	RunAndExit bool   // Run the loaded program and exit
	Dump       bool   // Dump interpreter state on exit
	MaxSteps   int    // Maximum lines executed per RUN (0 = unlimited)
	MaxDepth   int    // Maximum FOR/GOSUB depth (0 = unlimited)
	SourceFile string // Program file in LIST format, optional

	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout
}

// Start loads the program file if one was given, then either runs it once or
// reads lines until end of input.
func (r *REPL) Start() error {
	in, out := r.streams()

	it := interpreter.New(
		interpreter.WithWriter(out),
		interpreter.WithMaxSteps(r.MaxSteps),
		interpreter.WithMaxDepth(r.MaxDepth),
	)

	if r.Dump {
		defer func() { godump.Dump(it.Snapshot()) }()
	}

	if r.SourceFile != "" {
		if err := r.load(it); err != nil {
			return err
		}
	}

	if r.RunAndExit {
		_, err := it.SubmitLine("RUN")
		return err
	}

	fmt.Fprintln(out, color.BoldText(banner))
	if r.SourceFile != "" {
		fmt.Fprintln(out, color.GrayText(fmt.Sprintf("Loaded %d lines from %s", it.Snapshot().Lines, r.SourceFile)))
	}
	fmt.Fprintln(out)

	reader := newReader(in, out)
	defer reader.Close()

	for {
		line, err := reader.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		outcome, err := it.SubmitLine(line)
		if err != nil {
			fmt.Fprintln(out, color.Error(err.Error()))
			continue
		}
		log.Debug("Line handled", "outcome", outcome.Kind, "value", outcome.Value, "line", outcome.Line)
	}
}

func (r *REPL) streams() (io.Reader, io.Writer) {
	in, out := r.In, r.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}

// load submits every non-empty line of the source file. Lines without a
// line number execute immediately, like typed input.
func (r *REPL) load(it *interpreter.Interpreter) error {
	log.Info("Loading program", "file", r.SourceFile)

	f, err := os.Open(r.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to open program: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if _, err := it.SubmitLine(line); err != nil {
			return fmt.Errorf("%s:%d: %w", r.SourceFile, n, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}

	log.Debug("Program loaded", "lines", it.Snapshot().Lines)
	return nil
}
