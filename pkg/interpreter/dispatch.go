package interpreter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"lnbasic/pkg/lexer"
	"lnbasic/pkg/program"
)

// OutcomeKind tells the caller how SubmitLine handled its input
type OutcomeKind int

const (
	ImmediateResult OutcomeKind = iota // statement executed, Value holds its result
	LineDeleted                        // Line was removed from the program
	LineStored                         // Line was stored or replaced
	CommandHandled                     // LIST, RUN or NEW was executed
)

func (k OutcomeKind) String() string {
	switch k {
	case ImmediateResult:
		return "immediate"
	case LineDeleted:
		return "deleted"
	case LineStored:
		return "stored"
	case CommandHandled:
		return "command"
	default:
		return "unknown"
	}
}

// Outcome is the result of a successfully handled input line
type Outcome struct {
	Kind  OutcomeKind
	Value float64
	Line  int
}

// SubmitLine is the single entry point for a front end. It recognises the
// LIST, RUN and NEW commands, program edits led by a line number, and
// otherwise executes the line once in immediate mode.
//
// A failing RUN is reported through the output sink as
// "Error in line <n>: <message>" and still yields CommandHandled.
func (i *Interpreter) SubmitLine(text string) (Outcome, error) {
	input := strings.TrimRight(strings.TrimLeft(text, " \t\r\n\v\f"), "\r\n")

	if cmd, ok := command(input); ok {
		i.handleCommand(cmd)
		return Outcome{Kind: CommandHandled}, nil
	}

	lx := lexer.NewLexer(input)
	if lx.StartsWithDigit() {
		return i.editLine(lx)
	}

	v, ctl, err := i.execute(input, -1)
	if err != nil {
		log.Debug("Immediate statement failed", "input", input, "error", err)
		return Outcome{}, err
	}

	if ctl.Kind != Continue {
		log.Debug("Control transfer ignored in immediate mode", "control", ctl.Kind, "line", ctl.Line)
	}

	return Outcome{Kind: ImmediateResult, Value: v}, nil
}

// command matches input against LIST, RUN and NEW. Only the bare word,
// in any letter case, counts as a command.
func command(input string) (string, bool) {
	word := strings.TrimSpace(input)
	for _, cmd := range []string{"LIST", "RUN", "NEW"} {
		if _, ok := lexer.MatchKeyword(word, cmd); ok && len(word) == len(cmd) {
			return cmd, true
		}
	}

	return "", false
}

func (i *Interpreter) handleCommand(cmd string) {
	switch cmd {
	case "LIST":
		i.program.Ascend(func(line program.Line) bool {
			i.emit(fmt.Sprintf("%d %s\n", line.Number, line.Text))
			return true
		})

	case "RUN":
		if err := i.run(); err != nil {
			log.Debug("Program failed", "error", err)
			i.emit(err.Error() + "\n")
		}

	case "NEW":
		i.program.Clear()
		log.Debug("Program cleared")
	}
}

// editLine stores or deletes the program line addressed by the leading number
func (i *Interpreter) editLine(lx *lexer.Lexer) (Outcome, error) {
	pos := lx.Position()

	n, _ := lx.LineNumber()
	if !program.ValidLineNumber(n) {
		return Outcome{}, newError(InvalidLineNumber, pos, "invalid line number")
	}

	text := lx.Rest()
	if text == "" {
		i.program.Delete(n)
		log.Debug("Line deleted", "line", n)
		return Outcome{Kind: LineDeleted, Line: n}, nil
	}

	i.program.Insert(n, text)
	log.Debug("Line stored", "line", n)
	return Outcome{Kind: LineStored, Line: n}, nil
}
