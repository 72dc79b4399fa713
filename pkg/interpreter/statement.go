package interpreter

import (
	"errors"

	"lnbasic/pkg/lexer"
	"lnbasic/pkg/program"
	"lnbasic/pkg/stack"
)

// statement keywords in match order
var statementKeywords = []string{"PRINT", "GOTO", "IF", "FOR", "NEXT", "GOSUB", "RETURN", "END"}

// execute parses and runs one statement. line is the executing program line,
// or -1 for immediate mode.
func (i *Interpreter) execute(text string, line int) (float64, Control, error) {
	p := &parser{
		it:   i,
		lx:   lexer.NewLexer(text),
		line: line,
	}

	v, ctl, err := p.statement()
	if err != nil {
		return 0, proceed, err
	}

	if p.lx.HasMore() {
		return 0, proceed, p.syntaxError("unexpected characters at end")
	}

	return v, ctl, nil
}

func (p *parser) statement() (float64, Control, error) {
	for _, kw := range statementKeywords {
		if p.lx.Keyword(kw) {
			return p.keywordStatement(kw)
		}
	}

	// assignment: IDENT '=' expr
	mark := p.lx.Save()
	if name := p.lx.Peek(); name.Type == lexer.ID {
		p.lx.NextToken()
		if p.lx.Peek().Type == lexer.ASSIGN {
			p.lx.NextToken()
			v, err := p.expr()
			if err != nil {
				return 0, proceed, err
			}
			p.it.setVar(name.Lexeme, v)
			return v, proceed, nil
		}
		p.lx.Restore(mark)
	}

	v, err := p.expr()
	if err != nil {
		return 0, proceed, err
	}
	return v, proceed, nil
}

func (p *parser) keywordStatement(kw string) (float64, Control, error) {
	switch kw {
	case "PRINT":
		return 0, proceed, p.printStatement()
	case "GOTO":
		return p.gotoStatement()
	case "IF":
		return p.ifStatement()
	case "FOR":
		return 0, proceed, p.forStatement()
	case "NEXT":
		return p.nextStatement()
	case "GOSUB":
		return p.gosubStatement()
	case "RETURN":
		return p.returnStatement()
	default:
		// END
		return 0, halt(), nil
	}
}

// printStatement emits each value separated by single spaces and ends the
// line. An error mid-list leaves the values already emitted without newline.
func (p *parser) printStatement() error {
	if !p.lx.HasMore() {
		p.it.emit("\n")
		return nil
	}

	for first := true; ; first = false {
		if !first {
			p.it.emit(" ")
		}

		v, err := p.expr()
		if err != nil {
			return err
		}
		p.it.emit(FormatNumber(v))

		if p.lx.Peek().Type != lexer.COMMA {
			break
		}
		p.lx.NextToken()

		// trailing comma
		if !p.lx.HasMore() {
			break
		}
	}

	p.it.emit("\n")
	return nil
}

// lineTarget reads the line number operand of GOTO, GOSUB and IF-THEN
func (p *parser) lineTarget(stmt string) (int, error) {
	pos := p.lx.Position()

	n, ok := p.lx.LineNumber()
	if !ok {
		return 0, newError(SyntaxError, pos, "%s requires a line number", stmt)
	}

	if !program.ValidLineNumber(n) {
		return 0, newError(InvalidLineNumber, pos, "invalid %s line number", stmt)
	}

	return n, nil
}

func (p *parser) gotoStatement() (float64, Control, error) {
	n, err := p.lineTarget("GOTO")
	if err != nil {
		return 0, proceed, err
	}

	return 0, jumpTo(n), nil
}

func (p *parser) ifStatement() (float64, Control, error) {
	cond, err := p.comparison()
	if err != nil {
		return 0, proceed, err
	}

	if !p.lx.Keyword("THEN") {
		return 0, proceed, p.syntaxError("expected THEN after IF condition")
	}

	if cond == 0 {
		p.lx.Discard()
		return 0, proceed, nil
	}

	if p.lx.StartsWithDigit() {
		n, err := p.lineTarget("IF-THEN")
		if err != nil {
			return 0, proceed, err
		}
		return 0, jumpTo(n), nil
	}

	return p.statement()
}

func (p *parser) forStatement() error {
	name := p.lx.Peek()
	if name.Type != lexer.ID {
		return newError(SyntaxError, name.Pos, "expected variable name after FOR")
	}
	p.lx.NextToken()

	if tok := p.lx.Peek(); tok.Type != lexer.ASSIGN {
		return newError(SyntaxError, tok.Pos, "expected '=' after FOR variable")
	}
	p.lx.NextToken()

	start, err := p.expr()
	if err != nil {
		return err
	}

	if !p.lx.Keyword("TO") {
		return p.syntaxError("expected TO after FOR start value")
	}

	end, err := p.expr()
	if err != nil {
		return err
	}

	step := 1.0
	if p.lx.Keyword("STEP") {
		if step, err = p.expr(); err != nil {
			return err
		}
	}

	frame := ForFrame{
		VarName: name.Lexeme,
		Start:   start,
		End:     end,
		Step:    step,
		ForLine: p.line,
	}
	if err := p.it.forStack.Push(frame); err != nil {
		return p.exhausted(err, "FOR stack exhausted")
	}

	p.it.setVar(name.Lexeme, start)
	return nil
}

// nextStatement advances the loop on top of the FOR stack. While the loop
// continues it jumps to the line following the FOR line in program order.
func (p *parser) nextStatement() (float64, Control, error) {
	name := p.lx.Peek()
	if name.Type != lexer.ID {
		return 0, proceed, newError(SyntaxError, name.Pos, "expected variable name after NEXT")
	}
	p.lx.NextToken()

	frame, ok := p.it.forStack.Peek()
	if !ok {
		return 0, proceed, newError(ControlFlowError, name.Pos, "NEXT without matching FOR")
	}

	if frame.VarName != name.Lexeme {
		return 0, proceed, newError(ControlFlowError, name.Pos, "NEXT variable doesn't match FOR variable")
	}

	v, err := p.it.getVar(name.Lexeme, name.Pos)
	if err != nil {
		return 0, proceed, err
	}

	v += frame.Step
	p.it.setVar(name.Lexeme, v)

	var again bool
	if frame.Step > 0 {
		again = v <= frame.End
	} else {
		again = v >= frame.End
	}

	if !again {
		p.it.forStack.Pop()
		return 0, proceed, nil
	}

	if next, ok := p.it.program.NextAfter(frame.ForLine); ok {
		return 0, jumpTo(next.Number), nil
	}

	return 0, proceed, nil
}

func (p *parser) gosubStatement() (float64, Control, error) {
	n, err := p.lineTarget("GOSUB")
	if err != nil {
		return 0, proceed, err
	}

	frame := GosubFrame{ReturnLine: endOfProgram}
	if next, ok := p.it.program.NextAfter(p.line); ok {
		frame.ReturnLine = next.Number
	}

	if err := p.it.gosubStack.Push(frame); err != nil {
		return 0, proceed, p.exhausted(err, "GOSUB stack exhausted")
	}

	return 0, jumpTo(n), nil
}

func (p *parser) returnStatement() (float64, Control, error) {
	frame, ok := p.it.gosubStack.Pop()
	if !ok {
		return 0, proceed, p.controlError("RETURN without matching GOSUB")
	}

	if frame.ReturnLine == endOfProgram {
		return 0, halt(), nil
	}

	return 0, jumpTo(frame.ReturnLine), nil
}

func (p *parser) controlError(msg string) error {
	return newError(ControlFlowError, p.lx.Position(), "%s", msg)
}

func (p *parser) exhausted(err error, msg string) error {
	if errors.Is(err, stack.ErrFull) {
		return newError(ResourceExhausted, p.lx.Position(), "%s", msg)
	}
	return err
}
