// Package workvar provides the pool of placeholder ("work") variables used
// while unifying proof steps interactively.
//
// Setup has two phases. A Registry records, per type code, a prefix and a
// variable count (Define); Declare then creates the variables once, as
// symbols and work variable hypotheses of a stmt.Table, labelled prefix+1,
// prefix+2, and so on.
//
// The declared Vars are immutable and may back any number of Pools. A Pool
// holds the allocation state of one editing session and its binding
// environment, so independent sessions do not interfere. A Pool itself is
// not safe for concurrent use.
//
// Instantiate replaces the variables of an assertion's expression with
// freshly allocated work variables. Unify then binds work variables on
// either side of two expressions, refusing bindings that would make a term
// contain itself (see CheckOccurs). ResolveUpdates collapses the bindings
// into final values and frees the pool for the next step.
package workvar
