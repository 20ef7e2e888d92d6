// Package proof checks decoded proof trees against the statements they
// prove.
//
// A proof tree and a syntax tree share one representation (package tree).
// Each proof node has a conclusion, itself an expression tree: a syntax
// node concludes itself, a hypothesis leaf concludes its own expression, and
// an assertion node concludes the assertion's expression with its variable
// hypotheses replaced by the conclusions of the corresponding children.
// A proof is correct when every logical hypothesis child matches the
// instantiated hypothesis and the root concludes the theorem's expression.
//
// Disjoint variable restrictions are not checked.
package proof
