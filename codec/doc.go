// Package codec decodes and encodes compressed proofs.
//
// # Wire Format
//
// A compressed proof is a list of "other" labels and one or more text
// blocks. Blocks exist only to bound line length; their characters form one
// continuous stream over the alphabet 'A'..'Z' and '?'.
//
// Numbers are written as zero or more high digits 'U'..'Y' followed by one
// low digit 'A'..'T'. A number n refers, 1-based, into the concatenation of
//
//   - the theorem's mandatory hypotheses,
//   - the other labels that are variable hypotheses,
//   - the other labels that are assertions,
//   - the subproofs registered for reuse so far.
//
// '?' is an unknown step. 'Z' directly after a number registers the subproof
// ending at the step just produced for later reuse.
//
// # Decoding
//
// The Decoder produces the fully expanded postfix step sequence, each step
// paired with the length of the subproof ending at it. Reused subproofs are
// replayed step by step. Use tree.FromStmts (or Steps.Tree) to build the
// proof tree.
//
// # Encoding
//
// The Encoder writes a proof tree back. Other labels are ordered hypotheses
// first, then assertions, each in order of first use. Subtrees shared in the
// tree (for instance after tree.Tree.SquishTree) are written once and
// reused. Decoding the result reproduces the tree's expanded postfix
// sequence.
//
// # Thread Safety
//
// A Decoder reuses its scratch space across calls and must not be used by
// more than one goroutine at a time. Encoders are stateless once built.
package codec
