package smt

import (
	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt/internal/pool"
)

// bitmap computes the sibling bitmap B: scanning siblings from depth D-1
// down to 0, B[i] turns on at the first non-default sibling encountered in
// that scan and stays on for the rest of the scan (i.e. for every lower
// index). Levels below the last active one pass their partial hash through
// ComputeRoot unchanged — this is the default-value optimisation that keeps
// an empty subtree represented as the constant zero without ever re-hashing
// it.
//
// The returned slice is borrowed from a size-keyed pool; callers are done
// with it by the time ComputeRoot/processDelete return, so it is
// returned to the pool there rather than reallocated on every call.
func bitmap(siblings []field.Element) []bool {
	n := len(siblings)
	b := pool.GlobalBoolSlicePool.Get(n)
	active := false
	for i := n - 1; i >= 0; i-- {
		active = active || !field.IsZero(siblings[i])
		b[i] = active
	}
	return b
}
