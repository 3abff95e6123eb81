package smt

import (
	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt/internal/pool"
)

// SMTProof is the compact proof object threaded through every engine
// operation. Siblings[0] is the sibling at the root level; Siblings[Depth-1]
// is the deepest one. Key bit i picks the left or right side at level i.
type SMTProof struct {
	EmptyLeaf bool
	Key       field.Element
	Value     field.Element
	Siblings  []field.Element
}

// clone returns a deep copy so Process can rewrite siblings without
// mutating the caller's proof.
func (p *SMTProof) clone() *SMTProof {
	siblings := pool.GlobalElementSlicePool.Get(len(p.Siblings))
	copy(siblings, p.Siblings)
	return &SMTProof{
		EmptyLeaf: p.EmptyLeaf,
		Key:       p.Key,
		Value:     p.Value,
		Siblings:  siblings,
	}
}
