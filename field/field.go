// Package field wraps the BN254 scalar field element used throughout this
// module as the single concrete type for keys, values, and hash outputs.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/0xanonymeow/zksmt/bits"
)

// Element is a BN254 scalar field element — the working field for every
// hasher binding and for every key/value/sibling in an SMTProof.
type Element = fr.Element

// Zero is the additive identity, also the canonical "empty" placeholder used
// for unset siblings and empty leaves throughout the engine.
func Zero() Element {
	var z Element
	return z
}

// IsZero reports whether e is the additive identity.
func IsZero(e Element) bool {
	return e.IsZero()
}

// Equal reports whether a and b represent the same field element.
func Equal(a, b Element) bool {
	return a.Equal(&b)
}

// FromUint64 builds a field element from a small integer constant.
func FromUint64(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// FromBigInt reduces v into the field.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.SetBigInt(v)
	return e
}

// ToBigInt returns the canonical big.Int representation of e.
func ToBigInt(e Element) *big.Int {
	var out big.Int
	e.BigInt(&out)
	return &out
}

// ToBits little-endian decomposes e into exactly d bits (bit 0 = least
// significant), indexed the same way big.Int.Bit is.
func ToBits(e Element, d int) []bool {
	v := new(big.Int)
	e.BigInt(v)

	out := make([]bool, d)
	for i := 0; i < d; i++ {
		out[i] = v.Bit(i) == 1
	}
	return out
}

// FromBits reconstructs a field element from its little-endian bit
// decomposition, the inverse of ToBits. It folds from the most significant
// bit down so each step is a single shift-and-or, using bits.FoldRight over
// the bit-index/value pairs.
func FromBits(b []bool) Element {
	type indexedBit struct {
		idx int
		set bool
	}
	xs := make([]indexedBit, len(b))
	for i, v := range b {
		xs[i] = indexedBit{idx: i, set: v}
	}
	acc := new(big.Int)
	acc = bits.FoldRight(func(x indexedBit, a *big.Int) *big.Int {
		if x.set {
			a.SetBit(a, x.idx, 1)
		}
		return a
	}, acc, xs)
	return FromBigInt(acc)
}
