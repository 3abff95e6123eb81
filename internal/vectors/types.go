// Package vectors is a JSON-backed golden-vector fixture format (load and
// save) for decimal-string field elements, hash inputs and proofs. Only its
// own round-trip tests use it; no other package's tests load fixtures from
// it, and the repository ships no fixture files.
package vectors

// HashVector is a binding-level test case: the inputs to a leaf or branch
// hash and the expected decimal field-element output.
type HashVector struct {
	Binding  string   `json:"binding"`
	Kind     string   `json:"kind"` // "leaf" or "branch"
	Inputs   []string `json:"inputs"`
	Expected string   `json:"expected"`
}

// ProofVector is an end-to-end scenario: a proof plus the root it should
// compute to, or verify/verify_exclusion against.
type ProofVector struct {
	Name      string   `json:"name"`
	Binding   string   `json:"binding"`
	Depth     int      `json:"depth"`
	EmptyLeaf bool     `json:"emptyLeaf"`
	Key       string   `json:"key"`
	Value     string   `json:"value"`
	Siblings  []string `json:"siblings"`
	Root      string   `json:"root"`
}

// TransitionVector is an insert/update/delete scenario chaining one root to
// the next through Process.
type TransitionVector struct {
	Name      string   `json:"name"`
	Binding   string   `json:"binding"`
	Depth     int      `json:"depth"`
	Op        string   `json:"op"`
	EmptyLeaf bool     `json:"emptyLeaf"`
	Key       string   `json:"key"`
	Value     string   `json:"value"`
	Siblings  []string `json:"siblings"`
	OpKey     string   `json:"opKey"`
	OpValue   string   `json:"opValue"`
	OldRoot   string   `json:"oldRoot"`
	NewRoot   string   `json:"newRoot"`
}
