package ir

import (
	"sort"
	"strings"
)

// CFG is the program-wide artifact: the ordered global field/method name
// lists and the exclusively-owned class and method maps. Classes and
// methods are looked up by name, but serialization walks them in
// sorted-name order so the emitted text is stable across runs — mirroring
// a `std::map`'s iteration order.
type CFG struct {
	Fields  []string
	Methods []string

	Classes   map[string]*ClassMetadata
	MethodIRs map[string]*MethodIR
}

func NewCFG() *CFG {
	return &CFG{
		Classes:   make(map[string]*ClassMetadata),
		MethodIRs: make(map[string]*MethodIR),
	}
}

// FieldOffset returns the index of f in the global field list.
func (c *CFG) FieldOffset(f string) (int, bool) {
	for i, name := range c.Fields {
		if name == f {
			return i, true
		}
	}
	return 0, false
}

// MethodOffset returns the index of m in the global method list.
func (c *CFG) MethodOffset(m string) (int, bool) {
	for i, name := range c.Methods {
		if name == m {
			return i, true
		}
	}
	return 0, false
}

func (c *CFG) IR() string {
	var sb strings.Builder

	sb.WriteString("data:\n")
	for _, name := range sortedKeys(c.Classes) {
		sb.WriteString(c.Classes[name].IR())
	}

	sb.WriteString("\ncode:\n\n")
	for _, name := range sortedKeys(c.MethodIRs) {
		sb.WriteString(c.MethodIRs[name].IR())
	}

	sb.WriteString("\n")
	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
