// Package hash provides concrete smt.Hasher bindings over the BN254 scalar
// field: Poseidon, Poseidon2, and Pedersen.
package hash

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"

	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt"
)

// Poseidon is the smt.Hasher binding built directly on
// github.com/iden3/go-iden3-crypto/poseidon — the same BN254-Poseidon
// construction iden3's own sparse Merkle tree library uses.
type Poseidon struct{}

// NewPoseidon returns a Poseidon hasher binding.
func NewPoseidon() *Poseidon { return &Poseidon{} }

// NewSMT is a convenience constructor for an SMT descriptor over Poseidon.
func NewSMT(depth int) *smt.SMT {
	return smt.New(depth, NewPoseidon())
}

func poseidonHash(inputs ...field.Element) field.Element {
	args := make([]*big.Int, len(inputs))
	for i, e := range inputs {
		args[i] = field.ToBigInt(e)
	}
	out, err := poseidon.Hash(args)
	if err != nil {
		panic(err)
	}
	return field.FromBigInt(out)
}

// HashLeaf returns zero when empty, else Poseidon(key, value, 1).
func (Poseidon) HashLeaf(empty bool, key, value field.Element) field.Element {
	if empty {
		return field.Zero()
	}
	return poseidonHash(key, value, field.FromUint64(1))
}

// HashBranch returns Poseidon(left, right).
func (Poseidon) HashBranch(left, right field.Element) field.Element {
	return poseidonHash(left, right)
}

// ToBits little-endian decomposes key into exactly depth bits.
func (Poseidon) ToBits(key field.Element, depth int) []bool {
	return field.ToBits(key, depth)
}

// HashEqual reports whether two hash outputs are the same field element.
func (Poseidon) HashEqual(a, b field.Element) bool { return field.Equal(a, b) }

// KeyEqual reports whether two keys are the same field element.
func (Poseidon) KeyEqual(a, b field.Element) bool { return field.Equal(a, b) }
