// Package stmt provides the statement handles that label proof and syntax
// trees.
//
// A Stmt is one entry of the logical database: a variable (floating)
// hypothesis, a logical (essential) hypothesis, an axiom, a theorem, or a
// work variable hypothesis created by the workvar package. Statements are
// compared by identity; two *Stmt values denote the same statement iff they
// are the same pointer.
//
// Statements are created through a Table, which assigns sequence numbers in
// creation order and dense variable ids to variable hypotheses. The variable
// id indexes binding environments (see tree.Bindings), so that no mutable
// unification state lives on the statement itself.
//
// # Thread Safety
//
// A Table is not safe for concurrent mutation. Once fully built it may be
// read from multiple goroutines.
package stmt
