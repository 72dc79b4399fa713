package interpreter

import (
	"github.com/charmbracelet/log"

	"lnbasic/pkg/lexer"
	"lnbasic/pkg/program"
)

// run executes the stored program from its lowest line until END, a RETURN
// past the last line, falling off the end, or an error. Variables survive
// between runs; the control-flow stacks do not.
func (i *Interpreter) run() error {
	i.forStack.Clear()
	i.gosubStack.Clear()

	log.Debug("Program started", "lines", i.program.Len())

	line, ok := i.program.First()
	steps := 0

	for ok {
		if i.maxSteps > 0 && steps >= i.maxSteps {
			return &RunError{
				Line: line.Number,
				Err:  newError(ResourceExhausted, lexer.Position{}, "maximum steps exceeded"),
			}
		}
		steps++

		var err error
		if line, ok, err = i.step(line); err != nil {
			return err
		}
	}

	log.Debug("Program halted", "steps", steps)
	return nil
}

// step executes one program line and returns the line to execute next
func (i *Interpreter) step(line program.Line) (program.Line, bool, error) {
	_, ctl, err := i.execute(line.Text, line.Number)
	if err != nil {
		return line, false, &RunError{Line: line.Number, Err: err}
	}

	switch ctl.Kind {
	case Halt:
		return line, false, nil

	case Jump:
		target, found := i.program.Find(ctl.Line)
		if !found {
			return line, false, &RunError{
				Line: line.Number,
				Err:  newError(LineNotFound, lexer.Position{}, "line %d not found", ctl.Line),
			}
		}
		log.Debug("Jump", "from", line.Number, "to", target.Number)
		return target, true, nil

	default:
		next, ok := i.program.NextAfter(line.Number)
		return next, ok, nil
	}
}
