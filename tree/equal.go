package tree

// IsDeepDup reports whether a and b are structurally equal: every pair of
// corresponding nodes has the identical label and the same arity. Labels
// are compared by identity.
func IsDeepDup(a, b *Node) bool {
	stack := []*Node{a, b}
	for len(stack) > 0 {
		x, y := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		if x == y {
			continue
		}
		if x == nil || y == nil {
			return false
		}
		if x.Stmt != y.Stmt || len(x.Child) != len(y.Child) {
			return false
		}
		for i := range x.Child {
			stack = append(stack, x.Child[i], y.Child[i])
		}
	}
	return true
}

// isDeepDupRec is the naturally recursive form of IsDeepDup. It is only
// suitable for shallow trees.
func isDeepDupRec(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Stmt != b.Stmt || len(a.Child) != len(b.Child) {
		return false
	}
	for i := range a.Child {
		if !isDeepDupRec(a.Child[i], b.Child[i]) {
			return false
		}
	}
	return true
}

// IsDeepDup reports whether n and o are structurally equal.
func (n *Node) IsDeepDup(o *Node) bool {
	return IsDeepDup(n, o)
}
