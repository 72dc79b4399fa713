package interpreter

import (
	"lnbasic/pkg/lexer"
)

// parser parses and evaluates one line in a single pass. Grammar:
//
//	expr       := term (('+'|'-') term)*
//	term       := factor (('*'|'/') factor)*
//	factor     := ('+'|'-') factor | '(' expr ')' | NUMBER | IDENT ['(' args ')']
//	args       := expr (',' expr)*
//	comparison := expr ('>'|'<'|'>='|'<='|'='|'<>') expr
type parser struct {
	it   *Interpreter
	lx   *lexer.Lexer
	line int // number of the executing program line, -1 in immediate mode
}

func (p *parser) syntaxError(format string, args ...any) error {
	return newError(SyntaxError, p.lx.Position(), format, args...)
}

func (p *parser) expect(t lexer.TokenType) error {
	tok := p.lx.Peek()
	if tok.Type != t {
		return newError(SyntaxError, tok.Pos, "expected '%s'", t)
	}

	p.lx.NextToken()
	return nil
}

func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}

	for {
		op := p.lx.Peek()
		if op.Type != lexer.PLUS && op.Type != lexer.MINUS {
			return v, nil
		}
		p.lx.NextToken()

		rhs, err := p.term()
		if err != nil {
			return 0, err
		}

		if op.Type == lexer.PLUS {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}

	for {
		op := p.lx.Peek()
		if op.Type != lexer.MULT && op.Type != lexer.DIV {
			return v, nil
		}
		p.lx.NextToken()

		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}

		if op.Type == lexer.MULT {
			v *= rhs
			continue
		}

		if rhs == 0 {
			return 0, newError(DivisionByZero, op.Pos, "division by zero")
		}
		v /= rhs
	}
}

func (p *parser) factor() (float64, error) {
	tok := p.lx.Peek()

	switch tok.Type {
	case lexer.PLUS, lexer.MINUS:
		p.lx.NextToken()
		v, err := p.factor()
		if err != nil {
			return 0, err
		}
		if tok.Type == lexer.MINUS {
			return -v, nil
		}
		return v, nil

	case lexer.LPAREN:
		p.lx.NextToken()
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return 0, err
		}
		return v, nil

	case lexer.ID:
		p.lx.NextToken()
		if p.lx.Peek().Type == lexer.LPAREN {
			return p.call(tok)
		}
		return p.it.getVar(tok.Lexeme, tok.Pos)

	case lexer.NUM:
		p.lx.NextToken()
		v, ok := parseNumber(tok.Lexeme)
		if !ok {
			return 0, newError(SyntaxError, tok.Pos, "invalid number '%s'", tok.Lexeme)
		}
		return v, nil

	default:
		return 0, newError(SyntaxError, tok.Pos, "expected number")
	}
}

// call evaluates name(args). The function must exist before its arguments are
// parsed; the argument count is checked once they are all evaluated.
func (p *parser) call(name lexer.Token) (float64, error) {
	fn, ok := p.it.funcs[name.Lexeme]
	if !ok {
		return 0, newError(UnknownFunction, name.Pos, "unknown function '%s'", name.Lexeme)
	}

	if err := p.expect(lexer.LPAREN); err != nil {
		return 0, err
	}

	var args []float64
	if p.lx.Peek().Type != lexer.RPAREN {
		for {
			v, err := p.expr()
			if err != nil {
				return 0, err
			}
			args = append(args, v)

			if p.lx.Peek().Type != lexer.COMMA {
				break
			}
			p.lx.NextToken()
		}
	}

	if err := p.expect(lexer.RPAREN); err != nil {
		return 0, err
	}

	if fn.Arity != Variadic && len(args) != fn.Arity {
		return 0, newError(ArityMismatch, name.Pos, "function '%s' expects %d arguments, got %d",
			fn.Name, fn.Arity, len(args))
	}

	return fn.Impl(args), nil
}

// comparison evaluates the condition of an IF to exactly 1 or 0
func (p *parser) comparison() (float64, error) {
	left, err := p.expr()
	if err != nil {
		return 0, err
	}

	op := p.lx.Peek()
	if !op.Type.IsComparison() {
		return 0, newError(SyntaxError, op.Pos, "expected comparison operator")
	}
	p.lx.NextToken()

	right, err := p.expr()
	if err != nil {
		return 0, err
	}

	var result bool
	switch op.Type {
	case lexer.GT:
		result = left > right
	case lexer.LT:
		result = left < right
	case lexer.GE:
		result = left >= right
	case lexer.LE:
		result = left <= right
	case lexer.ASSIGN:
		result = left == right
	case lexer.NE:
		result = left != right
	}

	if result {
		return 1, nil
	}
	return 0, nil
}
