package hash

import (
	"testing"

	"github.com/0xanonymeow/zksmt"
	"github.com/0xanonymeow/zksmt/field"
)

func TestPoseidon2HashLeafZeroWhenEmpty(t *testing.T) {
	p := NewPoseidon2()
	h := p.HashLeaf(true, field.FromUint64(7), field.FromUint64(9))
	if !field.IsZero(h) {
		t.Fatal("expected empty leaf hash to be zero")
	}
}

func TestPoseidon2LeafBranchDomainSeparation(t *testing.T) {
	p := NewPoseidon2()
	key := field.FromUint64(3)
	value := field.FromUint64(4)

	leaf := p.HashLeaf(false, key, value)
	branch := p.HashBranch(key, value)

	if field.Equal(leaf, branch) {
		t.Fatal("leaf and branch hashing over the same inputs must not collide")
	}
}

func TestPoseidon2HashBranchOrderSensitive(t *testing.T) {
	p := NewPoseidon2()
	l := field.FromUint64(11)
	r := field.FromUint64(12)
	if field.Equal(p.HashBranch(l, r), p.HashBranch(r, l)) {
		t.Fatal("expected HashBranch to be order-sensitive")
	}
}

func TestPoseidon2InsertVerifyRoundTrip(t *testing.T) {
	s := NewPoseidon2SMT(8)
	p0 := s.EmptyProof()
	r0 := s.ComputeRoot(p0)

	key := field.FromUint64(42)
	value := field.FromUint64(100)

	p1 := s.Process(p0, smt.OpInsert, key, value, r0)
	r1 := s.ComputeRoot(p1)

	if !s.Verify(p1, r1) {
		t.Fatal("expected Poseidon2 inclusion proof to verify after insert")
	}
}
