package tree

import "github.com/signadot/mmproof/stmt"

// Squish maximizes sharing in the tree rooted at n. Children are visited
// in postorder; each child is looked up in the list of subtrees seen so far
// and, when a structural duplicate exists, the child reference is replaced
// by the earlier instance. Otherwise the child is added to the list. The
// root itself is never replaced.
//
// Squish reports whether any replacement happened; if so the size caches
// are reset.
func (n *Node) Squish() bool {
	type frame struct {
		n *Node
		i int
	}
	seen := map[*stmt.Stmt][]*Node{}
	done := map[*Node]bool{}
	changed := false
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		top := len(stack) - 1
		y := stack[top].n
		if stack[top].i < len(y.Child) {
			c := y.Child[stack[top].i]
			stack[top].i++
			if !done[c] {
				stack = append(stack, frame{n: c})
			}
			continue
		}
		stack = stack[:top]
		done[y] = true
		for i, c := range y.Child {
			dup := findDup(seen[c.Stmt], c)
			switch {
			case dup == nil:
				seen[c.Stmt] = append(seen[c.Stmt], c)
			case dup != c:
				y.Child[i] = dup
				changed = true
			}
		}
	}
	if changed {
		n.ResetCaches()
	}
	return changed
}

func findDup(list []*Node, c *Node) *Node {
	for _, d := range list {
		if IsDeepDup(d, c) {
			return d
		}
	}
	return nil
}
