// Package main implements the jlox command: run a lox expression file, or
// read expressions interactively when no file is given.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/you-not-fish/lox/internal/driver"
)

// Version information
const Version = "0.1.0-dev"

// options collects the command line.
type options struct {
	emitTokens bool
	emitAST    bool
	astFormat  string
	logLevel   string
	debug      bool
	scripts    []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it parses args, runs the script or the
// prompt and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	exit := -1
	app := kingpin.New("jlox", "Evaluate lox expressions.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(func(code int) {
		if exit < 0 {
			exit = code
		}
	})
	app.Version(Version)

	app.Flag("emit-tokens", "Print the token stream instead of evaluating.").BoolVar(&opts.emitTokens)
	app.Flag("emit-ast", "Print the syntax tree instead of evaluating.").BoolVar(&opts.emitAST)
	app.Flag("ast-format", "Syntax tree format for --emit-ast: text, json.").Default("text").EnumVar(&opts.astFormat, "text", "json")
	app.Flag("log-level", "Log level: panic, fatal, error, warn, info, debug.").Default("warn").StringVar(&opts.logLevel)
	app.Flag("debug", "Same as --log-level=debug.").Short('d').BoolVar(&opts.debug)
	app.Arg("script", "Script to run; omit for interactive mode.").StringsVar(&opts.scripts)

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "jlox: error: %v\n", err)
		return driver.ExitUsage
	}
	if exit >= 0 {
		// --help or --version
		return exit
	}

	if len(opts.scripts) > 1 {
		fmt.Fprintln(stderr, "Usage: jlox [script]")
		return driver.ExitUsage
	}

	if err := driver.SetLogLevelString(opts.logLevel); err != nil {
		fmt.Fprintf(stderr, "jlox: error: %v\n", err)
		return driver.ExitUsage
	}
	if opts.debug {
		driver.SetLogLevel(logrus.DebugLevel)
	}
	driver.SetLogOutput(stderr)

	r := driver.New(stdout, stderr)
	switch {
	case opts.emitTokens:
		r.Mode = driver.ModeTokens
	case opts.emitAST:
		r.Mode = driver.ModeAST
		r.ASTFormat = opts.astFormat
	}

	if len(opts.scripts) == 1 {
		if err := r.RunFile(opts.scripts[0]); err != nil {
			fmt.Fprintln(stderr, err)
			return driver.ExitCode(err)
		}
		return driver.ExitOK
	}

	if err := r.RunPrompt(stdin); err != nil {
		fmt.Fprintf(stderr, "jlox: error: %v\n", err)
		return 1
	}
	return driver.ExitOK
}
