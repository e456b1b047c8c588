// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package expr

// FreeVars collects every VariableNode name reachable from n, excluding
// names in bound (typically a Mathematical function's parameter names).
// The result is a fresh set; bound is never mutated.
func FreeVars(n Node, bound map[string]bool) map[string]bool {
	out := map[string]bool{}
	collectFreeVars(n, bound, out)
	return out
}

func collectFreeVars(n Node, bound, out map[string]bool) {
	switch t := n.(type) {
	case nil:
		return
	case *NumberNode:
		return
	case *VariableNode:
		if !bound[t.Name] {
			out[t.Name] = true
		}
	case *Arithmetic:
		collectFreeVars(t.Left, bound, out)
		collectFreeVars(t.Right, bound, out)
	case *Function:
		for _, a := range t.Args {
			collectFreeVars(a, bound, out)
		}
	case *Comparison:
		collectFreeVars(t.Left, bound, out)
		collectFreeVars(t.Right, bound, out)
	}
}
