package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"github.com/conifer0us/cnf49-compiler/report"
)

// Options captures the parsed CLI surface: at most one mode flag plus the
// source file to compile.
type Options struct {
	SourcePath string
	PrintAST   bool
	PrintCFG   bool
	NoSSA      bool
	NoOpt      bool
}

// parseArgs builds the olive CLI, parses os.Args, and validates that at
// most one mode flag was given.
func parseArgs() *Options {
	cli := olive.NewCLI("cnf49c", "compiles a single class-based source file to textual IR", true)
	cli.AddFlag("printAST", "pa", "parse and print the AST, skipping lowering entirely")
	cli.AddFlag("printCFG", "pc", "run the full pipeline (lower, SSA) and print the IR")
	cli.AddFlag("noSSA", "ns", "lower to IR with the pinhole optimization but skip the SSA rewrite")
	cli.AddFlag("noopt", "no", "lower to IR without the pinhole optimization and skip the SSA rewrite")
	cli.AddPrimaryArg("sourcefile", "the source file to compile", true)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	opts := &Options{
		PrintAST: result.Arguments["printAST"].(bool),
		PrintCFG: result.Arguments["printCFG"].(bool),
		NoSSA:    result.Arguments["noSSA"].(bool),
		NoOpt:    result.Arguments["noopt"].(bool),
	}

	set := 0
	for _, flag := range []bool{opts.PrintAST, opts.PrintCFG, opts.NoSSA, opts.NoOpt} {
		if flag {
			set++
		}
	}
	if set > 1 {
		report.ReportFatal("at most one of -printAST, -printCFG, -noSSA, -noopt may be given")
	}

	sourcePath, ok := result.PrimaryArg()
	if !ok {
		report.ReportFatal("a source file must be specified")
	}
	opts.SourcePath = sourcePath

	return opts
}
