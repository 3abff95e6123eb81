package smt

import "github.com/0xanonymeow/zksmt/field"

// Hasher is the capability a concrete binding (Pedersen, Poseidon,
// Poseidon2, ...) supplies to an SMT descriptor. The engine itself never
// bakes in a specific hash primitive or bit-decomposition scheme.
type Hasher interface {
	// HashLeaf returns zero when empty is true, else the 3-to-1 leaf hash
	// of (key, value, 1).
	HashLeaf(empty bool, key, value field.Element) field.Element
	// HashBranch is the 2-to-1 branch hash of (left, right).
	HashBranch(left, right field.Element) field.Element
	// ToBits little-endian decomposes key into exactly depth bits.
	ToBits(key field.Element, depth int) []bool
	// HashEqual reports whether two hash outputs are the same field element.
	HashEqual(a, b field.Element) bool
	// KeyEqual reports whether two keys are the same field element.
	KeyEqual(a, b field.Element) bool
}
