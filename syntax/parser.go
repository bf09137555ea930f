// Parser is a recursive-descent, one-token-of-lookahead parser for the
// source grammar summarized in the compiler's documentation: a program is
// zero or more class declarations followed by a mandatory `main` block.
//
// Statement lists are brace-delimited (`{ ... }`) rather than newline
// sensitive; a method's, ifonly's, if/else's, and while's body is parsed
// greedily until the closing brace. `this` is always written explicitly as
// a method's first formal parameter.
package syntax

import (
	"strconv"

	"github.com/conifer0us/cnf49-compiler/ast"
	"github.com/conifer0us/cnf49-compiler/common"
	"github.com/conifer0us/cnf49-compiler/report"
)

// Parser wraps a Lexer with grammar productions.
type Parser struct {
	lex *Lexer
}

// NewParser returns a parser over the given lexer.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse parses a complete program.
func Parse(path, src string) *ast.Program {
	p := NewParser(NewLexer(path, src))
	return p.parseProgram()
}

// -----------------------------------------------------------------------------

func (p *Parser) fail(span *report.TextSpan, msg string, args ...interface{}) {
	report.Raise(span, msg, args...)
}

// expect consumes and returns the next token, failing if its kind doesn't
// match want.
func (p *Parser) expect(want int, what string) Token {
	tok := p.lex.Next()
	if tok.Kind != want {
		p.fail(tok.Span, "expected %s", what)
	}
	return tok
}

// parseIdentList parses zero or more comma-separated identifiers, stopping
// as soon as the next token is not an identifier.
func (p *Parser) parseIdentList() []string {
	var names []string

	for p.lex.Peek().Kind == TOK_IDENTIFIER {
		names = append(names, p.lex.Next().Value)

		if p.lex.Peek().Kind == TOK_COMMA {
			p.lex.Next()
			continue
		}
		break
	}

	return names
}

// -----------------------------------------------------------------------------

func (p *Parser) parseProgram() *ast.Program {
	var classes []*ast.Class

	for p.lex.Peek().Kind == TOK_CLASS {
		classes = append(classes, p.parseClass())
	}

	mainTok := p.expect(TOK_MAIN, "`main` declaration after class definitions")
	p.expect(TOK_WITH, "`with` after `main`")

	locals := p.parseIdentList()

	p.expect(TOK_COLON, "`:` after main's local declarations")
	body := p.parseBlockStmts()

	main := &ast.Method{
		Base:   ast.NewBaseOn(mainTok.Span),
		Name:   "main",
		Args:   nil,
		Locals: locals,
		Body:   body,
	}

	return &ast.Program{Base: ast.NewBaseOn(mainTok.Span), Main: main, Classes: classes}
}

func (p *Parser) parseClass() *ast.Class {
	classTok := p.expect(TOK_CLASS, "`class`")
	nameTok := p.expect(TOK_IDENTIFIER, "class name after `class`")
	p.expect(TOK_LBRACKET, "`[` after class name")

	var fields []string
	if p.lex.Peek().Kind == TOK_FIELDS {
		p.lex.Next()
		fields = p.parseIdentList()
	}

	var methods []*ast.Method
	for p.lex.Peek().Kind == TOK_METHOD {
		methods = append(methods, p.parseMethod())
	}

	p.expect(TOK_RBRACKET, "`]` to close class definition")

	return &ast.Class{
		Base:    ast.NewBaseOver(classTok.Span, nameTok.Span),
		Name:    nameTok.Value,
		Fields:  fields,
		Methods: methods,
	}
}

func (p *Parser) parseMethod() *ast.Method {
	methodTok := p.expect(TOK_METHOD, "`method`")
	nameTok := p.expect(TOK_IDENTIFIER, "method name after `method`")
	p.expect(TOK_LPAREN, "`(` after method name")
	p.expect(TOK_THIS, "`this` as a method's first parameter")

	args := []string{"this"}
	for p.lex.Peek().Kind == TOK_COMMA {
		p.lex.Next()
		args = append(args, p.expect(TOK_IDENTIFIER, "method argument name").Value)
	}

	p.expect(TOK_RPAREN, "`)` to close method arguments")

	var locals []string
	if p.lex.Peek().Kind == TOK_WITH {
		p.lex.Next()
		p.expect(TOK_LOCALS, "`locals` after `with` in method declaration")
		locals = p.parseIdentList()
	}

	if len(locals) > common.MaxLocals {
		p.fail(methodTok.Span, "method `%s` declares more than %d locals", nameTok.Value, common.MaxLocals)
	}

	p.expect(TOK_COLON, "`:` after method local declarations")
	body := p.parseBlockStmts()

	return &ast.Method{
		Base:   ast.NewBaseOver(methodTok.Span, nameTok.Span),
		Name:   nameTok.Value,
		Args:   args,
		Locals: locals,
		Body:   body,
	}
}

// parseBlockStmts parses `{ stmt* }` and returns the statement list.
func (p *Parser) parseBlockStmts() []ast.Stmt {
	p.expect(TOK_LBRACE, "`{` to start a block")

	var stmts []ast.Stmt
	for p.lex.Peek().Kind != TOK_RBRACE {
		if p.lex.Peek().Kind == TOK_EOF {
			p.fail(p.lex.Peek().Span, "unterminated block: expected `}`")
		}
		stmts = append(stmts, p.parseStatement())
	}

	p.expect(TOK_RBRACE, "`}` to close a block")
	return stmts
}

func (p *Parser) parseStatement() ast.Stmt {
	tok := p.lex.Peek()

	switch tok.Kind {
	case TOK_IDENTIFIER:
		p.lex.Next()
		p.expect(TOK_ASSIGN, "`=` after variable name in assignment")
		value := p.parseExpr()
		return &ast.AssignStatement{Base: ast.NewBaseOn(tok.Span), Name: tok.Value, Value: value}

	case TOK_PLACEHOLDER:
		p.lex.Next()
		p.expect(TOK_ASSIGN, "`=` after `_` in discard statement")
		value := p.parseExpr()
		return &ast.DiscardStatement{Base: ast.NewBaseOn(tok.Span), Value: value}

	case TOK_BANG:
		p.lex.Next()
		obj := p.parseExpr()
		p.expect(TOK_DOT, "`.` in field assignment")
		field := p.expect(TOK_IDENTIFIER, "field name in field assignment")
		p.expect(TOK_ASSIGN, "`=` in field assignment")
		value := p.parseExpr()
		return &ast.FieldAssignStatement{
			Base:      ast.NewBaseOn(tok.Span),
			FieldBase: obj,
			FieldName: field.Value,
			Value:     value,
		}

	case TOK_IF:
		p.lex.Next()
		cond := p.parseExpr()
		p.expect(TOK_COLON, "`:` after if condition")
		thenBranch := p.parseBlockStmts()
		p.expect(TOK_ELSE, "`else` to close an if/else statement")
		elseBranch := p.parseBlockStmts()
		return &ast.IfStatement{Base: ast.NewBaseOn(tok.Span), Cond: cond, ThenBranch: thenBranch, ElseBranch: elseBranch}

	case TOK_IFONLY:
		p.lex.Next()
		cond := p.parseExpr()
		p.expect(TOK_COLON, "`:` after ifonly condition")
		body := p.parseBlockStmts()
		return &ast.IfOnlyStatement{Base: ast.NewBaseOn(tok.Span), Cond: cond, Body: body}

	case TOK_WHILE:
		p.lex.Next()
		cond := p.parseExpr()
		p.expect(TOK_COLON, "`:` after while condition")
		body := p.parseBlockStmts()
		return &ast.WhileStatement{Base: ast.NewBaseOn(tok.Span), Cond: cond, Body: body}

	case TOK_RETURN:
		p.lex.Next()
		value := p.parseExpr()
		return &ast.ReturnStatement{Base: ast.NewBaseOn(tok.Span), Value: value}

	case TOK_PRINT:
		p.lex.Next()
		p.expect(TOK_LPAREN, "`(` to start print statement")
		value := p.parseExpr()
		p.expect(TOK_RPAREN, "`)` after print statement")
		return &ast.PrintStatement{Base: ast.NewBaseOn(tok.Span), Value: value}

	default:
		p.fail(tok.Span, "unexpected token; failed to parse statement")
		return nil
	}
}

func (p *Parser) parseExpr() ast.Expr {
	tok := p.lex.Next()

	switch tok.Kind {
	case TOK_NUMBER:
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			p.fail(tok.Span, "malformed integer literal %q", tok.Value)
		}
		return &ast.Constant{Base: ast.NewBaseOn(tok.Span), Value: n}

	case TOK_IDENTIFIER:
		return &ast.Var{Base: ast.NewBaseOn(tok.Span), Name: tok.Value}

	case TOK_THIS:
		return &ast.ThisExpr{Base: ast.NewBaseOn(tok.Span)}

	case TOK_ATSIGN:
		cname := p.expect(TOK_IDENTIFIER, "class name after `@`")
		return &ast.ClassRef{Base: ast.NewBaseOver(tok.Span, cname.Span), ClassName: cname.Value}

	case TOK_LPAREN:
		lhs := p.parseExpr()
		op := p.parseBinOp()
		rhs := p.parseExpr()
		closeTok := p.expect(TOK_RPAREN, "`)` to close a binary expression")
		return &ast.Binop{Base: ast.NewBaseOver(tok.Span, closeTok.Span), Lhs: lhs, Op: op, Rhs: rhs}

	case TOK_AMP:
		base := p.parseExpr()
		p.expect(TOK_DOT, "`.` in field read")
		field := p.expect(TOK_IDENTIFIER, "field name in field read")
		return &ast.FieldRead{Base: ast.NewBaseOver(tok.Span, field.Span), FieldBase: base, FieldName: field.Value}

	case TOK_CARET:
		base := p.parseExpr()
		p.expect(TOK_DOT, "`.` in method call")
		mname := p.expect(TOK_IDENTIFIER, "method name in method call")
		p.expect(TOK_LPAREN, "`(` to open method call arguments")

		var args []ast.Expr
		for p.lex.Peek().Kind != TOK_RPAREN {
			args = append(args, p.parseExpr())
			if p.lex.Peek().Kind == TOK_COMMA {
				p.lex.Next()
			}
		}
		closeTok := p.expect(TOK_RPAREN, "`)` to close method call arguments")

		return &ast.MethodCall{
			Base:       ast.NewBaseOver(tok.Span, closeTok.Span),
			CallBase:   base,
			MethodName: mname.Value,
			Args:       args,
		}

	default:
		p.fail(tok.Span, "unexpected token; failed to parse expression")
		return nil
	}
}

func (p *Parser) parseBinOp() ast.BinOp {
	tok := p.lex.Next()

	switch tok.Kind {
	case TOK_PLUS:
		return ast.OpAdd
	case TOK_MINUS:
		return ast.OpSub
	case TOK_STAR:
		return ast.OpMul
	case TOK_SLASH:
		return ast.OpDiv
	case TOK_LT:
		return ast.OpLt
	case TOK_GT:
		return ast.OpGt
	case TOK_EQEQ:
		return ast.OpEq
	case TOK_NEQ:
		return ast.OpNe
	default:
		p.fail(tok.Span, "expected a binary operator")
		return ast.OpAdd
	}
}
