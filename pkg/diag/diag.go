// Package diag defines the diagnostic reporting boundary between the Slate
// core and its drivers. The scanner, parser, and interpreter push errors
// through a Reporter; how messages are displayed and whether the process
// exits is the driver's decision.
package diag

import (
	"fmt"
	"io"
)

// Reporter is the error sink consumed by the core pipeline. ReportError
// receives static (scan/parse) errors; ReportRuntimeError receives
// evaluation errors. Every error reaches the sink exactly once.
type Reporter interface {
	ReportError(line int, message string)
	ReportRuntimeError(line int, message string)
}

// Console writes formatted diagnostics to a writer and tracks whether any
// were reported. The flags gate interpretation and drive the CLI exit code.
type Console struct {
	out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

// NewConsole creates a console reporter writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// ReportError implements Reporter.
func (c *Console) ReportError(line int, message string) {
	fmt.Fprintf(c.out, "[line %d] error: %s\n", line, message)
	c.hadError = true
}

// ReportRuntimeError implements Reporter.
func (c *Console) ReportRuntimeError(line int, message string) {
	fmt.Fprintf(c.out, "[line %d] runtime error: %s\n", line, message)
	c.hadRuntimeError = true
}

// HadError returns true if any static error was reported.
func (c *Console) HadError() bool { return c.hadError }

// HadRuntimeError returns true if any runtime error was reported.
func (c *Console) HadRuntimeError() bool { return c.hadRuntimeError }

// Reset clears both flags. The REPL resets between lines so one bad entry
// does not poison the session.
func (c *Console) Reset() {
	c.hadError = false
	c.hadRuntimeError = false
}

// Collect accumulates formatted diagnostics in memory. Used by the
// playground API and by tests that assert on reported errors.
type Collect struct {
	Errors        []string
	RuntimeErrors []string
}

// NewCollect creates an empty collecting reporter.
func NewCollect() *Collect {
	return &Collect{}
}

// ReportError implements Reporter.
func (c *Collect) ReportError(line int, message string) {
	c.Errors = append(c.Errors, fmt.Sprintf("[line %d] %s", line, message))
}

// ReportRuntimeError implements Reporter.
func (c *Collect) ReportRuntimeError(line int, message string) {
	c.RuntimeErrors = append(c.RuntimeErrors, fmt.Sprintf("[line %d] %s", line, message))
}

// HadError returns true if any static error was reported.
func (c *Collect) HadError() bool { return len(c.Errors) > 0 }

// HadRuntimeError returns true if any runtime error was reported.
func (c *Collect) HadRuntimeError() bool { return len(c.RuntimeErrors) > 0 }

// Reset drops all collected diagnostics.
func (c *Collect) Reset() {
	c.Errors = nil
	c.RuntimeErrors = nil
}
