package hash

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt"
)

// Pedersen is the smt.Hasher binding built on the classical elliptic-curve
// Pedersen hash (as used by Circom's pedersenhash.circom): a multi-scalar
// commitment over fixed BN254-G1 generator points, projected back into the
// field via the resulting point's affine X-coordinate.
//
// Generator derivation is a one-time, binding-internal detail (deterministic
// from fixed domain-separation tags via hash-to-curve) — it never crosses
// the SMT engine's surface and is not a general trusted-setup.
type Pedersen struct {
	leafGens   []bn254.G1Affine
	branchGens []bn254.G1Affine
}

// NewPedersen derives the generator points once and returns a ready Pedersen
// binding. Leaf hashing needs 3 generators (key, value, domain flag);
// branch hashing needs 2 (left, right).
func NewPedersen() *Pedersen {
	return &Pedersen{
		leafGens:   deriveGenerators("zksmt/pedersen/leaf", 3),
		branchGens: deriveGenerators("zksmt/pedersen/branch", 2),
	}
}

// NewPedersenSMT is a convenience constructor for an SMT descriptor over
// Pedersen.
func NewPedersenSMT(depth int) *smt.SMT {
	return smt.New(depth, NewPedersen())
}

func deriveGenerators(domain string, n int) []bn254.G1Affine {
	out := make([]bn254.G1Affine, n)
	dst := []byte(domain)
	for i := 0; i < n; i++ {
		msg := []byte{byte(i)}
		p, err := bn254.HashToG1(msg, dst)
		if err != nil {
			panic(err)
		}
		out[i] = p
	}
	return out
}

func commit(gens []bn254.G1Affine, scalars []field.Element) field.Element {
	var acc bn254.G1Jac
	for i, s := range scalars {
		var scalarBig = field.ToBigInt(s)
		var term bn254.G1Affine
		term.ScalarMultiplication(&gens[i], scalarBig)
		var termJac bn254.G1Jac
		termJac.FromAffine(&term)
		acc.AddAssign(&termJac)
	}
	var result bn254.G1Affine
	result.FromJacobian(&acc)

	xBytes := result.X.Bytes()
	var out field.Element
	out.SetBytes(xBytes[:])
	return out
}

// HashLeaf returns zero when empty, else the Pedersen commitment to
// (key, value, 1).
func (p *Pedersen) HashLeaf(empty bool, key, value field.Element) field.Element {
	if empty {
		return field.Zero()
	}
	return commit(p.leafGens, []field.Element{key, value, field.FromUint64(1)})
}

// HashBranch returns the Pedersen commitment to (left, right).
func (p *Pedersen) HashBranch(left, right field.Element) field.Element {
	return commit(p.branchGens, []field.Element{left, right})
}

// ToBits little-endian decomposes key into exactly depth bits.
func (*Pedersen) ToBits(key field.Element, depth int) []bool {
	return field.ToBits(key, depth)
}

// HashEqual reports whether two hash outputs are the same field element.
func (*Pedersen) HashEqual(a, b field.Element) bool { return field.Equal(a, b) }

// KeyEqual reports whether two keys are the same field element.
func (*Pedersen) KeyEqual(a, b field.Element) bool { return field.Equal(a, b) }
