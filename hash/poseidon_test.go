package hash

import (
	"math/big"
	"testing"

	"github.com/0xanonymeow/zksmt"
	"github.com/0xanonymeow/zksmt/field"
)

func mustElement(t *testing.T, decimal string) field.Element {
	t.Helper()
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		t.Fatalf("bad decimal constant %q", decimal)
	}
	return field.FromBigInt(v)
}

// TestPoseidonGoldenVectors pins down the concrete Poseidon/BN254 scenarios:
// compute_root, verify, and the insert/insert/insert/delete/update chain
// starting from the empty tree.
func TestPoseidonGoldenVectors(t *testing.T) {
	s := NewSMT(3)

	// S1 — empty compute.
	p1 := &smt.SMTProof{
		EmptyLeaf: true,
		Key:       field.FromUint64(1),
		Value:     field.FromUint64(10),
		Siblings:  []field.Element{field.Zero(), field.Zero(), field.Zero()},
	}
	if root := s.ComputeRoot(p1); !field.IsZero(root) {
		t.Fatalf("S1: expected zero root, got %v", field.ToBigInt(root))
	}

	// S2 — singleton inclusion, D=2.
	s2 := NewSMT(2)
	proofS2 := &smt.SMTProof{
		EmptyLeaf: false,
		Key:       field.FromUint64(0),
		Value:     field.FromUint64(10),
		Siblings:  []field.Element{field.Zero(), field.Zero()},
	}
	rootS2 := mustElement(t, "18069132284520201727832024694996019315677027866342868341249356941629964797693")
	if !s2.Verify(proofS2, rootS2) {
		t.Fatal("S2: expected singleton inclusion proof to verify")
	}

	// S3 — insert into empty.
	r1 := mustElement(t, "17745286145841574461080870515538432642488178426701997089182084200349283295644")
	got := s.InsertAndComputeRoot(s.EmptyProof(), field.FromUint64(1), field.FromUint64(10), field.Zero())
	if !field.Equal(got, r1) {
		t.Fatalf("S3: got %v, want %v", field.ToBigInt(got), field.ToBigInt(r1))
	}

	// S4 — insert second key.
	r2 := mustElement(t, "18508676215879297097623875026733409214533276976775300711445773127911914420383")
	proofS4 := &smt.SMTProof{
		EmptyLeaf: false,
		Key:       field.FromUint64(1),
		Value:     field.FromUint64(10),
		Siblings:  []field.Element{field.Zero(), field.Zero(), field.Zero()},
	}
	got = s.InsertAndComputeRoot(proofS4, field.FromUint64(5), field.FromUint64(20), r1)
	if !field.Equal(got, r2) {
		t.Fatalf("S4: got %v, want %v", field.ToBigInt(got), field.ToBigInt(r2))
	}

	// S5 — insert third key, the accepted direct-exclusion tie.
	r3 := mustElement(t, "12969130658784983238190929361355671504677343582636515678221303782186445329124")
	sibling := mustElement(t, "2996922252417443465966018502620271371886265112327727499202960396308391015872")
	proofS5 := &smt.SMTProof{
		EmptyLeaf: true,
		Key:       field.FromUint64(2),
		Value:     field.Zero(),
		Siblings:  []field.Element{sibling, field.Zero(), field.Zero()},
	}
	got = s.InsertAndComputeRoot(proofS5, field.FromUint64(2), field.FromUint64(10), r2)
	if !field.Equal(got, r3) {
		t.Fatalf("S5: got %v, want %v", field.ToBigInt(got), field.ToBigInt(r3))
	}

	// S6 — delete third key, unwinding back toward the empty tree. Deletion
	// takes an inclusion proof of a remaining key (key 1) whose siblings hold
	// the leaf being removed: key 2's leaf at the root level, where keys 1
	// and 2 split, and key 5's leaf at index 2, where keys 1 and 5 split.
	leaves := NewPoseidon()
	proofS6 := &smt.SMTProof{
		EmptyLeaf: false,
		Key:       field.FromUint64(1),
		Value:     field.FromUint64(10),
		Siblings: []field.Element{
			leaves.HashLeaf(false, field.FromUint64(2), field.FromUint64(10)),
			field.Zero(),
			leaves.HashLeaf(false, field.FromUint64(5), field.FromUint64(20)),
		},
	}
	got = s.DeleteAndComputeRoot(proofS6, field.FromUint64(2), field.FromUint64(10), r3)
	if !field.Equal(got, r2) {
		t.Fatalf("S6: got %v, want %v", field.ToBigInt(got), field.ToBigInt(r2))
	}

	// S7 — update.
	rUpdated := mustElement(t, "10455899125583343723660476237945369238709688510771807024557867026308788199134")
	proofS7 := &smt.SMTProof{
		EmptyLeaf: false,
		Key:       field.FromUint64(1),
		Value:     field.FromUint64(10),
		Siblings:  []field.Element{field.Zero(), field.Zero(), field.Zero()},
	}
	got = s.UpdateAndComputeRoot(proofS7, field.FromUint64(1), field.FromUint64(20), r1)
	if !field.Equal(got, rUpdated) {
		t.Fatalf("S7: got %v, want %v", field.ToBigInt(got), field.ToBigInt(rUpdated))
	}
}

func TestPoseidonHashLeafZeroWhenEmpty(t *testing.T) {
	p := NewPoseidon()
	h := p.HashLeaf(true, field.FromUint64(1), field.FromUint64(2))
	if !field.IsZero(h) {
		t.Fatal("expected empty leaf hash to be zero")
	}
}

func TestPoseidonHashBranchDeterministic(t *testing.T) {
	p := NewPoseidon()
	l := field.FromUint64(3)
	r := field.FromUint64(4)
	if !field.Equal(p.HashBranch(l, r), p.HashBranch(l, r)) {
		t.Fatal("expected HashBranch to be deterministic")
	}
	if field.Equal(p.HashBranch(l, r), p.HashBranch(r, l)) {
		t.Fatal("expected HashBranch to be order-sensitive")
	}
}
