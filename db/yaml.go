package db

// File is the YAML form of a logical database.
type File struct {
	Constants  []string  `json:"constants"`
	Variables  []string  `json:"variables"`
	Statements []StmtDef `json:"statements"`
}

// StmtDef is one statement. Formula and Syntax are space separated.
type StmtDef struct {
	Label    string    `json:"label"`
	Kind     string    `json:"kind"`
	Type     string    `json:"type"`
	Var      string    `json:"var,omitempty"`
	Formula  string    `json:"formula,omitempty"`
	Syntax   string    `json:"syntax,omitempty"`
	Hyps     []string  `json:"hyps,omitempty"`
	Optional []string  `json:"optional,omitempty"`
	Proof    *ProofDef `json:"proof,omitempty"`
}

// ProofDef is a compressed proof.
type ProofDef struct {
	Other  []string `json:"other"`
	Blocks []string `json:"blocks"`
}
