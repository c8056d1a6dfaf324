package runtime

import (
	"io"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/diag"
	"github.com/slatelang/slate/pkg/syntax"
)

// Reporter is the diagnostic sink the engine drives. Beyond the core
// reporting methods it exposes the had-error flags that gate
// interpretation and drive exit signaling.
type Reporter interface {
	diag.Reporter
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// Engine ties the pipeline together: scan, parse, and interpret in
// sequence against a persistent global scope. The CLI, the REPL, and the
// playground all run sources through an Engine.
type Engine struct {
	reporter Reporter
	interp   *Interp
}

// NewEngine creates an engine writing print output to out and diagnostics
// to the reporter.
func NewEngine(out io.Writer, reporter Reporter) *Engine {
	return &Engine{
		reporter: reporter,
		interp:   NewInterp(out, reporter),
	}
}

// Run scans, parses, and interprets one source text. If scanning or
// parsing reported any error, interpretation is skipped. The parsed
// program is returned either way so callers can inspect it.
func (e *Engine) Run(source string) []ast.Stmt {
	tokens := syntax.NewScanner(source, e.reporter).Scan()
	program := syntax.NewParser(tokens, e.reporter).Parse()

	if e.reporter.HadError() {
		return program
	}

	e.interp.Interpret(program)
	return program
}

// Reset clears the reporter's error flags. The interpreter's global scope
// is deliberately left intact; a REPL session keeps its variables across
// failed entries.
func (e *Engine) Reset() {
	e.reporter.Reset()
}
