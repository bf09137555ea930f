package ast

import "fmt"

// Method is a class method or the program's `main` entry point. Args[0] is
// `this` for class methods; main has no receiver, so its Args is empty and
// its `with` names are held in Locals (see Program).
type Method struct {
	Base
	Name   string
	Args   []string
	Locals []string
	Body   []Stmt
}

func (m *Method) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString(fmt.Sprintf("Method: %s\n", m.Name))

	indent(w, ind+2)
	w.WriteString(fmt.Sprintf("Arguments (%d):\n", len(m.Args)))
	for _, arg := range m.Args {
		indent(w, ind+4)
		w.WriteString(fmt.Sprintf("- %s\n", arg))
	}

	indent(w, ind+2)
	w.WriteString(fmt.Sprintf("Locals (%d):\n", len(m.Locals)))
	for _, local := range m.Locals {
		indent(w, ind+4)
		w.WriteString(fmt.Sprintf("- %s\n", local))
	}

	indent(w, ind+2)
	w.WriteString(fmt.Sprintf("Body (%d statements):\n", len(m.Body)))
	for _, stmt := range m.Body {
		stmt.Print(w, ind+4)
	}
}

// Class is a class declaration: an ordered field list and an ordered
// method list, both in source order (the order the layout builder relies
// on for its global name lists).
type Class struct {
	Base
	Name    string
	Fields  []string
	Methods []*Method
}

func (c *Class) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString(fmt.Sprintf("Class: %s\n", c.Name))

	indent(w, ind+2)
	w.WriteString(fmt.Sprintf("Fields (%d):\n", len(c.Fields)))
	for _, field := range c.Fields {
		indent(w, ind+4)
		w.WriteString(fmt.Sprintf("- %s\n", field))
	}

	indent(w, ind+2)
	w.WriteString(fmt.Sprintf("Methods (%d):\n", len(c.Methods)))
	for _, method := range c.Methods {
		method.Print(w, ind+4)
	}
}

// Program is the top-level AST node: zero or more classes followed by a
// mandatory `main` method.
type Program struct {
	Base
	Main    *Method
	Classes []*Class
}

func (p *Program) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString("Program\n")

	indent(w, ind+2)
	w.WriteString("Main Method:\n")
	p.Main.Print(w, ind+4)

	indent(w, ind+2)
	w.WriteString(fmt.Sprintf("Classes (%d):\n", len(p.Classes)))
	for _, cls := range p.Classes {
		cls.Print(w, ind+4)
	}
}
