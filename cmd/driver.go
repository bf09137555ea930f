// Package cmd is the top-level driver: command-line parsing and the
// tokenize-parse-layout-lower-SSA-emit pipeline that turns one source
// file into textual IR (or, under -printAST, just the parsed tree).
package cmd

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/conifer0us/cnf49-compiler/ast"
	"github.com/conifer0us/cnf49-compiler/lower"
	"github.com/conifer0us/cnf49-compiler/profile"
	"github.com/conifer0us/cnf49-compiler/report"
	"github.com/conifer0us/cnf49-compiler/ssa"
	"github.com/conifer0us/cnf49-compiler/syntax"
)

// Execute is the CLI entry point, called directly from main. It returns
// the process exit code.
func Execute() int {
	opts := parseArgs()
	Compile(opts)
	return 0
}

// Compile runs the pipeline over the one source file named by opts.
// Every fatal condition — parse failure, lowering failure, a missing
// file — aborts the process from within report; CatchErrors is the
// pipeline's single recovery point for panic-based Raise calls.
func Compile(opts *Options) {
	defer report.CatchErrors(opts.SourcePath, opts.SourcePath)

	srcBytes, err := ioutil.ReadFile(opts.SourcePath)
	if err != nil {
		report.ReportFatal("unable to read source file `%s`: %s", opts.SourcePath, err.Error())
	}

	prof := profile.Load(opts.SourcePath)
	if opts.PrintAST || opts.PrintCFG || opts.NoSSA || opts.NoOpt {
		// A mode flag given on the command line overrides the profile.
		prof = &profile.Profile{}
	}

	prog := syntax.Parse(opts.SourcePath, string(srcBytes))

	if opts.PrintAST || prof.PrintAST {
		printAST(prog)
		return
	}

	pinhole := !(opts.NoOpt || prof.NoPinhole)
	cfg := lower.Program(prog, pinhole)

	if !(opts.NoSSA || opts.NoOpt || prof.NoSSA) {
		for _, m := range cfg.MethodIRs {
			ssa.Run(m)
		}
	}

	fmt.Print(cfg.IR())
}

func printAST(prog *ast.Program) {
	var sb strings.Builder
	prog.Print(&sb, 0)
	fmt.Print(sb.String())
}
