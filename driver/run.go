package driver

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/lumen/ast"
	"github.com/takoeight0821/lumen/diag"
	"github.com/takoeight0821/lumen/lexer"
	"github.com/takoeight0821/lumen/parser"
	"github.com/takoeight0821/lumen/token"
)

// Pass is a stage that consumes a parsed unit. Passes record their results in
// side tables and return the file unchanged unless they rebuild it.
type Pass interface {
	Init(*ast.File) error
	Run(*ast.File) (*ast.File, error)
}

type PassRunner struct {
	passes []Pass
}

func NewPassRunner() *PassRunner {
	return &PassRunner{}
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If an error occurs, it stops the execution and returns the current file.
func (r *PassRunner) Run(file *ast.File) (*ast.File, error) {
	for _, pass := range r.passes {
		err := pass.Init(file)
		if err != nil {
			return file, fmt.Errorf("init: %w", err)
		}
		file, err = pass.Run(file)
		if err != nil {
			return file, fmt.Errorf("run: %w", err)
		}
	}

	return file, nil
}

// Unit is one lexed and parsed compilation unit. It owns its tokens, tree and
// diagnostics.
type Unit struct {
	Path   string
	Source string
	Tokens []token.Token
	File   *ast.File
	Stmts  []ast.Stmt // set instead of File for REPL input parsed as statements
	Sink   *diag.Sink
}

// Err joins the unit's error diagnostics.
func (u *Unit) Err() error {
	return u.Sink.Err()
}

// ParseUnit lexes and parses source as a sequence of declarations.
func ParseUnit(path, source string) *Unit {
	sink := diag.NewSink()
	tokens := lexer.Lex(path, source, sink)
	file := parser.NewParser(path, tokens, sink).ParseFile()
	return &Unit{Path: path, Source: source, Tokens: tokens, File: file, Sink: sink}
}

// ParseLine parses one line of interactive input. Declarations are tried
// first; if they fail the input is parsed again as statements, unless the
// lexer already rejected it.
func ParseLine(source string) (*Unit, error) {
	unit := ParseUnit("<stdin>", source)
	errDecls := unit.Err()
	if errDecls == nil {
		return unit, nil
	}
	if unit.Sink.HasLexicalErrors() {
		return unit, fmt.Errorf("parse:\n%w", errDecls)
	}

	sink := diag.NewSink()
	tokens := lexer.Lex("<stdin>", source, sink)
	stmts := parser.NewParser("<stdin>", tokens, sink).ParseStmts()
	if sink.Err() == nil {
		return &Unit{Path: "<stdin>", Source: source, Tokens: tokens, Stmts: stmts, Sink: sink}, nil
	}

	return unit, fmt.Errorf("parse:\n%w", errors.Join(errDecls, sink.Err()))
}

// RunSource parses the source code and executes passes in order.
func (r *PassRunner) RunSource(path, source string) (*Unit, error) {
	unit := ParseUnit(path, source)
	if err := unit.Err(); err != nil {
		return unit, fmt.Errorf("parse %s:\n%w", path, err)
	}

	file, err := r.Run(unit.File)
	unit.File = file
	return unit, err
}
