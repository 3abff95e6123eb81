package vectors

import (
	"math/big"

	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt"
)

// ParseElement parses a base-10 string into a field element, panicking on a
// malformed fixture — fixtures are committed test data, never user input.
func ParseElement(s string) field.Element {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("vectors: malformed decimal field element: " + s)
	}
	return field.FromBigInt(v)
}

func parseElements(ss []string) []field.Element {
	out := make([]field.Element, len(ss))
	for i, s := range ss {
		out[i] = ParseElement(s)
	}
	return out
}

// Proof builds the *smt.SMTProof this vector describes.
func (v ProofVector) Proof() *smt.SMTProof {
	return &smt.SMTProof{
		EmptyLeaf: v.EmptyLeaf,
		Key:       ParseElement(v.Key),
		Value:     ParseElement(v.Value),
		Siblings:  parseElements(v.Siblings),
	}
}

// ExpectedRoot parses the vector's expected root.
func (v ProofVector) ExpectedRoot() field.Element {
	return ParseElement(v.Root)
}

// Proof builds the *smt.SMTProof this transition vector starts from.
func (v TransitionVector) Proof() *smt.SMTProof {
	return &smt.SMTProof{
		EmptyLeaf: v.EmptyLeaf,
		Key:       ParseElement(v.Key),
		Value:     ParseElement(v.Value),
		Siblings:  parseElements(v.Siblings),
	}
}
