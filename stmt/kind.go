package stmt

import "fmt"

type Kind int

const (
	VarHyp Kind = iota
	LogHyp
	Axiom
	Theorem
	WorkVarHyp
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		VarHyp:     "var",
		LogHyp:     "hyp",
		Axiom:      "axiom",
		Theorem:    "theorem",
		WorkVarHyp: "workvar",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"var":     VarHyp,
		"hyp":     LogHyp,
		"axiom":   Axiom,
		"theorem": Theorem,
		"workvar": WorkVarHyp,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized statement kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{VarHyp, LogHyp, Axiom, Theorem, WorkVarHyp}
}

func (k Kind) IsHyp() bool {
	switch k {
	case VarHyp, LogHyp, WorkVarHyp:
		return true
	default:
		return false
	}
}

// IsVarHyp reports whether k is a variable hypothesis, including work
// variable hypotheses.
func (k Kind) IsVarHyp() bool {
	return k == VarHyp || k == WorkVarHyp
}

func (k Kind) IsAssertion() bool {
	return k == Axiom || k == Theorem
}
