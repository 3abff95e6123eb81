package hash

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"

	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt"
)

// Poseidon2 is the smt.Hasher binding built on gnark-crypto's
// poseidon2.NewMerkleDamgardHasher() sponge, the same construction
// MuriData's chunk hasher uses: feed field elements in as bytes, squeeze the
// digest back into a field element.
type Poseidon2 struct{}

// NewPoseidon2 returns a Poseidon2 hasher binding.
func NewPoseidon2() *Poseidon2 { return &Poseidon2{} }

// NewPoseidon2SMT is a convenience constructor for an SMT descriptor over
// Poseidon2.
func NewPoseidon2SMT(depth int) *smt.SMT {
	return smt.New(depth, NewPoseidon2())
}

// leafDomainTag / branchDomainTag separate the leaf and branch compression
// functions so that no leaf hash can collide with a branch hash under the
// same sponge.
const (
	leafDomainTag   = 1
	branchDomainTag = 2
)

func poseidon2Sponge(tag int64, inputs ...field.Element) field.Element {
	h := poseidon2.NewMerkleDamgardHasher()

	var tagElem fr.Element
	tagElem.SetInt64(tag)
	tagBytes := tagElem.Bytes()
	h.Write(tagBytes[:])

	for _, e := range inputs {
		b := e.Bytes()
		h.Write(b[:])
	}

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// HashLeaf returns zero when empty, else a domain-separated sponge over
// (key, value, 1).
func (Poseidon2) HashLeaf(empty bool, key, value field.Element) field.Element {
	if empty {
		return field.Zero()
	}
	return poseidon2Sponge(leafDomainTag, key, value, field.FromUint64(1))
}

// HashBranch returns a domain-separated sponge over (left, right).
func (Poseidon2) HashBranch(left, right field.Element) field.Element {
	return poseidon2Sponge(branchDomainTag, left, right)
}

// ToBits little-endian decomposes key into exactly depth bits.
func (Poseidon2) ToBits(key field.Element, depth int) []bool {
	return field.ToBits(key, depth)
}

// HashEqual reports whether two hash outputs are the same field element.
func (Poseidon2) HashEqual(a, b field.Element) bool { return field.Equal(a, b) }

// KeyEqual reports whether two keys are the same field element.
func (Poseidon2) KeyEqual(a, b field.Element) bool { return field.Equal(a, b) }
