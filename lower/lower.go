// Package lower implements the AST-to-IR lowering pass: class layout,
// tag-discipline-aware expression/statement lowering, and per-method
// basic-block construction. The SSA rewrite that follows lowering lives
// in the sibling ssa package.
package lower

import (
	"github.com/conifer0us/cnf49-compiler/ast"
	"github.com/conifer0us/cnf49-compiler/ir"
)

// Program lowers a complete AST into a CFG: class layout first (so method
// lowering can resolve field/method offsets and object sizes), then every
// class method, then main.
func Program(prog *ast.Program, pinhole bool) *ir.CFG {
	cfg := ir.BuildLayout(prog.Classes)

	for _, cls := range prog.Classes {
		for _, m := range cls.Methods {
			LowerMethod(cfg, cls.Name, m, false, pinhole)
		}
	}

	LowerMethod(cfg, "", prog.Main, true, pinhole)

	return cfg
}
