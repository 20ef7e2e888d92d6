// Package db loads a logical database from YAML.
//
// The document declares math symbols, then statements in order. A variable
// hypothesis names its variable; a logical hypothesis or assertion carries
// its formula and, optionally, its syntax parse as a postfix label string.
// Assertions list their mandatory hypothesis frame; theorems may list
// optional variable hypotheses and a compressed proof.
//
//	constants: ["|-", wff, "(", ")", "->"]
//	variables: [ph, ps]
//	statements:
//	  - {label: wph, kind: var, type: wff, var: ph}
//	  - {label: wps, kind: var, type: wff, var: ps}
//	  - label: wi
//	    kind: axiom
//	    type: wff
//	    formula: ( ph -> ps )
//	    hyps: [wph, wps]
//	  - label: a1i
//	    kind: theorem
//	    type: "|-"
//	    formula: ( ps -> ph )
//	    syntax: wps wph wi
//	    hyps: [wph, wps, a1i.1]
//	    proof:
//	      other: [wi, ax-1, ax-mp]
//	      blocks: [ABADCABEF]
//
// All symbols share one scope.
package db
