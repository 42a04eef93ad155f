// Package driver runs source text through the scan, parse and evaluate
// pipeline, one self-contained unit at a time.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/you-not-fish/lox/internal/interp"
	"github.com/you-not-fish/lox/internal/syntax"
)

// Mode selects what Run produces for a unit.
type Mode int

const (
	ModeEval   Mode = iota // evaluate and print the value
	ModeTokens             // print the token table
	ModeAST                // print the syntax tree
)

// Exit codes, from sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64 // bad command line
	ExitDataErr  = 65 // scan or parse error
	ExitNoInput  = 66 // unreadable script
	ExitSoftware = 70 // runtime error
)

// Prompt is written before each line in prompt mode.
const Prompt = "> "

// Runner runs units of source and reports results. Nothing is kept from one
// unit to the next.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer

	Mode      Mode
	ASTFormat string // "text" (default) or "json", for ModeAST
}

// New creates a Runner in evaluation mode.
func New(stdout, stderr io.Writer) *Runner {
	return &Runner{Stdout: stdout, Stderr: stderr}
}

// Run scans, parses and evaluates src, writing the result to Stdout.
// The first error of any stage is returned and nothing is written for it.
func (r *Runner) Run(src string) error {
	tokens, err := syntax.Scan(src)
	if err != nil {
		log.WithError(err).Debugf("[%s]: scan failed", TAG)
		return err
	}
	log.WithField("tokens", len(tokens)).Debugf("[%s]: scanned", TAG)

	if r.Mode == ModeTokens {
		return r.printTokens(tokens)
	}

	x, err := syntax.Parse(tokens)
	if err != nil {
		log.WithError(err).Debugf("[%s]: parse failed", TAG)
		return err
	}
	log.WithFields(logrus.Fields{
		"nodes": syntax.Count(x),
		"depth": syntax.Depth(x),
	}).Debugf("[%s]: parsed", TAG)

	if r.Mode == ModeAST {
		return r.printAST(x)
	}

	v, err := interp.Evaluate(x)
	if err != nil {
		log.WithError(err).Debugf("[%s]: evaluation failed", TAG)
		return err
	}
	log.WithFields(logrus.Fields{
		"type":  interp.TypeName(v),
		"value": v.String(),
	}).Debugf("[%s]: evaluated", TAG)

	_, err = fmt.Fprintln(r.Stdout, v)
	return err
}

// RunFile reads the whole file at path and runs it as one unit.
func (r *Runner) RunFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return &InputError{Path: path, Err: err}
	}
	log.WithField("path", path).Debugf("[%s]: running file", TAG)
	return r.Run(string(buf))
}

// RunPrompt reads in line by line, running each line as its own unit.
// Errors are written to Stderr and do not stop the loop. It returns nil
// at end of input and any other read or write error.
func (r *Runner) RunPrompt(in io.Reader) error {
	br := bufio.NewReader(in)

	for n := 1; ; n++ {
		if _, err := io.WriteString(r.Stdout, Prompt); err != nil {
			return err
		}

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		line = strings.TrimRight(line, "\r\n")

		if !eof || strings.TrimSpace(line) != "" {
			if rerr := r.Run(line); rerr != nil {
				log.WithError(rerr).WithField("input", n).Debugf("[%s]: line failed", TAG)
				fmt.Fprintln(r.Stderr, rerr)
			}
		}

		if eof {
			return nil
		}
	}
}

func (r *Runner) printTokens(tokens []syntax.Token) error {
	w := bufio.NewWriter(r.Stdout)
	fmt.Fprintf(w, "%-6s %-8s %s\n", "LINE", "TOKEN", "LEXEME")
	fmt.Fprintf(w, "%-6s %-8s %s\n", strings.Repeat("-", 6), strings.Repeat("-", 8), strings.Repeat("-", 12))
	for _, t := range tokens {
		fmt.Fprintf(w, "%-6d %-8s %s\n", t.Line, t.Kind, lexemeColumn(t))
	}
	return w.Flush()
}

// lexemeColumn keeps multi-line strings on one table row.
func lexemeColumn(t syntax.Token) string {
	if t.Kind == syntax.String {
		return strconv.Quote(t.Text)
	}
	return t.Lexeme
}

func (r *Runner) printAST(x syntax.Expr) error {
	switch r.ASTFormat {
	case "json":
		return syntax.FprintJSON(r.Stdout, x)
	default:
		if err := syntax.Fprint(r.Stdout, x); err != nil {
			return err
		}
		_, err := io.WriteString(r.Stdout, "\n")
		return err
	}
}

// InputError reports a script that could not be read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("could not read %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ExitCode maps a Run error to a process exit status.
func ExitCode(err error) int {
	var (
		se *syntax.ScanError
		pe *syntax.ParseError
		re *interp.RuntimeError
		ie *InputError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &se), errors.As(err, &pe):
		return ExitDataErr
	case errors.As(err, &re):
		return ExitSoftware
	case errors.As(err, &ie):
		return ExitNoInput
	}
	return 1
}
