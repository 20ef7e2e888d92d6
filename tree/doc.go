// Package tree provides the n-ary term trees used both for syntax parses and
// for proofs.
//
// # Overview
//
// A Node is labelled by a statement handle (see package stmt) and holds an
// ordered, fixed-arity list of children. For an assertion label the arity
// is the length of the assertion's mandatory hypothesis frame and children
// occupy frame order. Hypothesis labels are leaves. A nil label denotes an
// unknown proof step and is also a leaf.
//
// A Tree owns a root Node and lazily caches the maximum depth and the
// level-one/level-two signature used to pre-filter unification candidates.
// Replacing the root invalidates both.
//
// # Sharing
//
// Trees are conceptually trees, but SquishTree deliberately introduces
// sharing by making structurally equal subtrees reference-equal, and
// BuildFromRPN links back-referenced subtrees. Every operation except the
// de-duplicated linearization treats a shared subtree as if it were written
// out at each occurrence.
//
// # Operations
//
//   - IsDeepDup: structural equality on labels and arity.
//   - Clone, CloneReplacing, CloneSubstHyps, CloneResolvingWorkVars,
//     CloneTargetToSource: one clone-with-substitution walk under different
//     substitution rules.
//   - ToRPN, CountParseNodes, BuildFromRPN: postfix linearization, expanded or
//     with back-references, and its push-down inverse.
//   - SquishTree: sharing maximization.
//   - UnifyWithSubtree: one-way matching of a pattern against a ground tree.
//
// Every walk uses an explicit stack; proofs thousands of nodes deep do not
// grow the goroutine stack.
//
// # Bindings
//
// Variable bindings are not stored on statements. A Bindings value is an
// arena indexed by stmt.Stmt.VarID and is passed to the operations that read
// it.
//
// # Thread Safety
//
// Nodes carry caches and a marker that CountParseNodes and ToRPN mutate. Do
// not share a Tree between goroutines without synchronization.
package tree
