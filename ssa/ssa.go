// Package ssa applies the naive SSA construction pass to a lowered
// method: phi insertion at every multi-predecessor block for every
// variable in the method's name set, followed by a rename walk in
// reverse-postorder. It is intentionally not minimal-phi — correctness
// over optimality, per the component design it implements.
package ssa

import "github.com/conifer0us/cnf49-compiler/ir"

// Run rewrites method's blocks in place into SSA form.
func Run(method *ir.MethodIR) {
	if len(method.Blocks) == 0 {
		return
	}

	order := reversePostorder(method.Blocks)
	preds := predecessors(method.Blocks)
	names := collectNames(method)

	globalVersion := make(map[string]int, len(names))
	for _, n := range names {
		globalVersion[n] = 0
	}

	phiout := make(map[*ir.BasicBlock]map[string]*ir.Local)
	versionsEnd := make(map[*ir.BasicBlock]map[string]int)

	for _, blk := range order {
		predList := preds[blk]

		if len(predList) > 1 {
			dests := make(map[string]*ir.Local, len(names))
			for _, v := range names {
				globalVersion[v]++
				dests[v] = &ir.Local{Name: v, Version: globalVersion[v]}
			}
			phiout[blk] = dests
		}

		renameBlock(blk, globalVersion)

		snapshot := make(map[string]int, len(globalVersion))
		for k, v := range globalVersion {
			snapshot[k] = v
		}
		versionsEnd[blk] = snapshot
	}

	for _, blk := range order {
		predList := preds[blk]
		if len(predList) <= 1 {
			continue
		}

		dests := phiout[blk]
		for _, v := range names {
			incoming := make([]ir.PhiIncoming, 0, len(predList))
			for _, p := range predList {
				incoming = append(incoming, ir.PhiIncoming{
					PredLabel: p.Label,
					Val:       &ir.Local{Name: v, Version: versionsEnd[p][v]},
				})
			}
			blk.Phis = append(blk.Phis, &ir.Phi{Dest: dests[v], Incoming: incoming})
		}
	}
}

// renameBlock renames one block's instruction and terminator operands in
// place: every use is replaced with the version currently live for its
// name, every def bumps that name's version and takes the new one. Uses
// of `this` are never renamed past version 0 — the grammar has no
// assignment to `this`, so it is always the method's own receiver.
func renameBlock(blk *ir.BasicBlock, globalVersion map[string]int) {
	for _, inst := range blk.Instructions {
		for _, u := range inst.Uses() {
			if u.Name == "this" {
				continue
			}
			u.Version = globalVersion[u.Name]
		}
		for _, d := range inst.Defs() {
			globalVersion[d.Name]++
			d.Version = globalVersion[d.Name]
		}
	}

	for _, u := range blk.Terminator.Uses() {
		if u.Name == "this" {
			continue
		}
		u.Version = globalVersion[u.Name]
	}
}

// collectNames computes the method's global variable name set: every
// non-`this` parameter, every local, and every temporary that appears as
// a def or use anywhere in the method — the set every multi-predecessor
// block gets a (likely dead) phi for.
func collectNames(method *ir.MethodIR) []string {
	seen := map[string]bool{"this": true}
	var names []string

	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}

	for _, p := range method.Params {
		add(p)
	}
	for _, l := range method.Locals {
		add(l)
	}
	for _, blk := range method.Blocks {
		for _, inst := range blk.Instructions {
			for _, d := range inst.Defs() {
				add(d.Name)
			}
			for _, u := range inst.Uses() {
				add(u.Name)
			}
		}
		for _, u := range blk.Terminator.Uses() {
			add(u.Name)
		}
	}

	return names
}

// predecessors maps every block to the blocks whose terminator names it
// as a successor, in block-construction order.
func predecessors(blocks []*ir.BasicBlock) map[*ir.BasicBlock][]*ir.BasicBlock {
	preds := make(map[*ir.BasicBlock][]*ir.BasicBlock)
	for _, b := range blocks {
		for _, s := range b.Terminator.Successors() {
			preds[s] = append(preds[s], b)
		}
	}
	return preds
}

// reversePostorder computes a deterministic visitation order from the
// entry block (index 0) via a postorder DFS over successor edges,
// reversed. Blocks with no path from entry are appended afterward in
// construction order so every block still gets an iteration slot. (A
// `while`'s merge block is always a successor of the loop's Conditional,
// so it is visited by the DFS even when the condition is constant-true.)
func reversePostorder(blocks []*ir.BasicBlock) []*ir.BasicBlock {
	visited := make(map[*ir.BasicBlock]bool, len(blocks))
	var postorder []*ir.BasicBlock

	var visit func(b *ir.BasicBlock)
	visit = func(b *ir.BasicBlock) {
		if visited[b] {
			return
		}
		visited[b] = true
		for _, s := range b.Terminator.Successors() {
			visit(s)
		}
		postorder = append(postorder, b)
	}
	visit(blocks[0])

	rpo := make([]*ir.BasicBlock, len(postorder))
	for i, b := range postorder {
		rpo[len(postorder)-1-i] = b
	}

	for _, b := range blocks {
		if !visited[b] {
			rpo = append(rpo, b)
			visited[b] = true
		}
	}

	return rpo
}
