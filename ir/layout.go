package ir

import (
	"github.com/conifer0us/cnf49-compiler/ast"
	"github.com/conifer0us/cnf49-compiler/util"
)

// BuildLayout walks classes in source order and produces the program-wide
// field/method name lists plus each class's vtable/ftable, per the class
// layout algorithm: first-seen field and method names become the global
// index space every class shares, so a dynamic dispatch or field access
// compiles to a constant-index table lookup regardless of which class is
// behind the pointer at runtime.
func BuildLayout(classes []*ast.Class) *CFG {
	cfg := NewCFG()

	for _, cls := range classes {
		for _, f := range cls.Fields {
			if !util.Contains(cfg.Fields, f) {
				cfg.Fields = append(cfg.Fields, f)
			}
		}
		for _, m := range cls.Methods {
			if !util.Contains(cfg.Methods, m.Name) {
				cfg.Methods = append(cfg.Methods, m.Name)
			}
		}
	}

	for _, cls := range classes {
		meta := &ClassMetadata{Name: cls.Name}
		nextOffset := 2

		meta.FTable = make([]int, len(cfg.Fields))
		for i, fieldName := range cfg.Fields {
			if util.Contains(cls.Fields, fieldName) {
				meta.FTable[i] = nextOffset
				nextOffset++
			} else {
				meta.FTable[i] = SentinelField
			}
		}
		meta.ObjSize = nextOffset

		meta.VTable = make([]string, len(cfg.Methods))
		for i, methodName := range cfg.Methods {
			if classDefines(cls, methodName) {
				meta.VTable[i] = MangledMethodName(cls.Name, methodName)
			} else {
				meta.VTable[i] = SentinelMethod
			}
		}

		cfg.Classes[cls.Name] = meta
	}

	return cfg
}

// MangledMethodName is the method symbol a class's vtable slot holds and
// the key under which the lowered MethodIR is stored.
func MangledMethodName(className, methodName string) string {
	return className + "_" + methodName
}

func classDefines(cls *ast.Class, methodName string) bool {
	for _, m := range cls.Methods {
		if m.Name == methodName {
			return true
		}
	}
	return false
}
