package smt

import (
	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt/internal/pool"
)

const (
	// MaxDepth is the largest tree depth this engine will construct.
	MaxDepth = 256
)

// SMT is the value-level descriptor bundle: a default value, a hasher
// binding, and a fixed depth. It is immutable once constructed by New and
// safe to share across goroutines — there is no tree to materialise, so
// there is no mutable root state to guard with a mutex.
type SMT struct {
	depth        int
	defaultValue field.Element
	hasher       Hasher
}

// New builds an SMT descriptor of the given depth over the supplied hasher
// binding. Go has no const-generics to pin depth at compile time, so it is
// validated once here and trusted by every method below.
func New(depth int, h Hasher) *SMT {
	if depth < 1 || depth > MaxDepth {
		panic(&SMTError{Cause: CauseMalformedProof, Message: "depth must be between 1 and MaxDepth"})
	}
	if h == nil {
		panic(&SMTError{Cause: CauseMalformedProof, Message: "hasher must not be nil"})
	}
	return &SMT{
		depth:        depth,
		defaultValue: field.Zero(),
		hasher:       h,
	}
}

// Depth returns the tree depth this descriptor was constructed with.
func (s *SMT) Depth() int { return s.depth }

// EmptyProof returns the canonical proof of the empty tree: an empty leaf
// at the zero key with every sibling set to the default value. Its
// computed root is zero.
func (s *SMT) EmptyProof() *SMTProof {
	siblings := pool.GlobalElementSlicePool.Get(s.depth)
	for i := range siblings {
		siblings[i] = s.defaultValue
	}
	return &SMTProof{
		EmptyLeaf: true,
		Key:       s.defaultValue,
		Value:     s.defaultValue,
		Siblings:  siblings,
	}
}

func (s *SMT) checkSiblingLen(p *SMTProof) {
	assertf(len(p.Siblings) == s.depth, CauseMalformedProof,
		"proof has %d siblings, want %d", len(p.Siblings), s.depth)
}

// ComputeRoot folds siblings from the leaf up to the root: it starts at index
// depth-1 (the deepest level) and ends at index 0 (the root level). Below the
// last active bitmap level the partial hash passes through unchanged — the
// default-value optimisation that lets empty subtrees stay represented as
// the constant zero without ever being re-hashed.
func (s *SMT) ComputeRoot(p *SMTProof) field.Element {
	s.checkSiblingLen(p)

	h := s.hasher.HashLeaf(p.EmptyLeaf, p.Key, p.Value)
	keyBits := s.hasher.ToBits(p.Key, s.depth)
	b := bitmap(p.Siblings)
	defer pool.GlobalBoolSlicePool.Put(b)

	for i := s.depth - 1; i >= 0; i-- {
		if !b[i] {
			continue
		}
		if keyBits[i] {
			h = s.hasher.HashBranch(p.Siblings[i], h)
		} else {
			h = s.hasher.HashBranch(h, p.Siblings[i])
		}
	}
	return h
}

// Verify checks an inclusion proof: the leaf must not be empty, and the
// computed root must match root.
func (s *SMT) Verify(p *SMTProof, root field.Element) bool {
	assertf(!p.EmptyLeaf, CauseMalformedProof, "inclusion proof has an empty leaf")
	return s.hasher.HashEqual(s.ComputeRoot(p), root)
}

// VerifyExclusion checks that p witnesses the absence of excludedKey from
// the tree rooted at root. Two sub-cases:
//
//   - direct exclusion (p.EmptyLeaf): p's own path resolves to an empty
//     leaf; if p.Key == excludedKey this is accepted directly (the empty
//     leaf found at excludedKey's own path witnesses its own absence).
//   - indirect exclusion (!p.EmptyLeaf): p's path resolves to an occupied
//     leaf of a different key; the two keys must diverge somewhere, and the
//     sibling at the first point of divergence (scanning from index depth-1,
//     the deepest level, toward the root) must be the default value.
func (s *SMT) VerifyExclusion(p *SMTProof, excludedKey field.Element, root field.Element) bool {
	s.checkSiblingLen(p)

	pBits := s.hasher.ToBits(p.Key, s.depth)
	exBits := s.hasher.ToBits(excludedKey, s.depth)

	diverged := false
	for i := s.depth - 1; i >= 0; i-- {
		if pBits[i] != exBits[i] {
			assertf(field.IsZero(p.Siblings[i]), CauseSiblingMismatch,
				"sibling at depth %d must be default at the first diverging bit", i)
			diverged = true
			break
		}
	}

	assertf(diverged || p.EmptyLeaf, CauseMalformedProof,
		"indirect exclusion requires the occupying key to differ from the excluded key")

	return s.hasher.HashEqual(s.ComputeRoot(p), root)
}

// InsertAndComputeRoot, UpdateAndComputeRoot, DeleteAndComputeRoot are thin
// wrappers over Process + ComputeRoot.
func (s *SMT) InsertAndComputeRoot(p *SMTProof, key, value, root field.Element) field.Element {
	return s.ComputeRoot(s.Process(p, OpInsert, key, value, root))
}

func (s *SMT) UpdateAndComputeRoot(p *SMTProof, key, newValue, root field.Element) field.Element {
	return s.ComputeRoot(s.Process(p, OpUpdate, key, newValue, root))
}

func (s *SMT) DeleteAndComputeRoot(p *SMTProof, key, value, root field.Element) field.Element {
	return s.ComputeRoot(s.Process(p, OpDelete, key, value, root))
}

// Process is the central transition routine: it validates a precondition
// against root, rewrites siblings and (key, value) to reflect the
// post-operation state, and returns the new proof. The caller then calls
// ComputeRoot on the result to obtain the new root.
func (s *SMT) Process(p *SMTProof, op Op, opKey, opValue field.Element, root field.Element) *SMTProof {
	assertf(IsOp(op), CauseInvalidOp, "unrecognized op %d", op)
	s.checkSiblingLen(p)

	switch op {
	case OpInsert:
		assertf(s.VerifyExclusion(p, opKey, root), CauseWrongPrecondition,
			"insert precondition: proof does not witness exclusion of the new key under root")
		return s.processInsert(p, opKey, opValue)
	case OpUpdate:
		assertf(s.hasher.KeyEqual(p.Key, opKey), CauseWrongPrecondition,
			"update precondition: proof key does not match op key")
		assertf(s.Verify(p, root), CauseWrongPrecondition,
			"update precondition: proof does not witness inclusion under root")
		out := p.clone()
		out.Value = opValue
		return out
	case OpDelete:
		assertf(s.Verify(p, root), CauseWrongPrecondition,
			"delete precondition: proof does not witness inclusion under root")
		return s.processDelete(p, opKey, opValue)
	default:
		panic(&SMTError{Cause: CauseInvalidOp, Message: "unreachable"})
	}
}

// processInsert rewrites siblings so the old leaf becomes the sibling of
// the new one at the bit where the two keys diverge. When proof.Key and
// opKey are the same key — the accepted direct-exclusion tie, where the
// empty leaf sits at opKey's own path — there is no divergence and no old
// leaf to push aside, so the sibling list passes through untouched, the
// same way UPDATE leaves it untouched.
func (s *SMT) processInsert(p *SMTProof, opKey, opValue field.Element) *SMTProof {
	bits := s.hasher.ToBits(p.Key, s.depth)
	opBits := s.hasher.ToBits(opKey, s.depth)
	out := p.clone()

	// Scan root-first (index 0 upward): the two leaves' paths split at the
	// first bit, counted from the root, where the keys differ, so the old
	// leaf's hash belongs at exactly that level, not wherever the two keys
	// differ nearest the leaf.
	for i := 0; i < s.depth; i++ {
		if bits[i] != opBits[i] {
			out.Siblings[i] = s.hasher.HashLeaf(p.EmptyLeaf, p.Key, p.Value)
			break
		}
	}

	out.Key, out.Value, out.EmptyLeaf = opKey, opValue, false
	return out
}

// processDelete rewrites siblings to remove opKey's leaf, or collapses to
// the empty proof in the singleton case.
func (s *SMT) processDelete(p *SMTProof, opKey, opValue field.Element) *SMTProof {
	bits := s.hasher.ToBits(p.Key, s.depth)
	opBits := s.hasher.ToBits(opKey, s.depth)
	out := p.clone()

	divergeAt := -1
	for i := 0; i < s.depth; i++ {
		if bits[i] != opBits[i] {
			divergeAt = i
			break
		}
	}

	if divergeAt < 0 {
		b := bitmap(p.Siblings)
		for i, active := range b {
			assertf(!active, CauseWrongPrecondition,
				"delete: singleton precondition requires an all-zero bitmap, depth %d is active", i)
		}
		pool.GlobalBoolSlicePool.Put(b)
		return s.EmptyProof()
	}

	expected := s.hasher.HashLeaf(false, opKey, opValue)
	assertf(s.hasher.HashEqual(out.Siblings[divergeAt], expected), CauseSiblingMismatch,
		"delete: sibling at depth %d does not match the hash of the deletion target", divergeAt)
	out.Siblings[divergeAt] = s.defaultValue

	out.EmptyLeaf = false
	return out
}

// VerifyDeletion proves a deletion by replaying it as the inverse
// insertion: p must be an exclusion proof for deletedKey under newRoot;
// this asserts that inserting (deletedKey, deletedValue) into p reproduces
// oldRoot.
func (s *SMT) VerifyDeletion(p *SMTProof, deletedKey, deletedValue, newRoot, oldRoot field.Element) {
	got := s.InsertAndComputeRoot(p, deletedKey, deletedValue, newRoot)
	assertf(s.hasher.HashEqual(got, oldRoot), CauseWrongPrecondition,
		"verify_deletion: replaying the deletion as an insertion did not reproduce the old root")
}
