// Package pool provides reusable, sync.Pool-backed scratch buffers for the
// SMT engine's hot paths: field-element and bool slices sized to a tree's
// depth, reused across ComputeRoot/VerifyExclusion/Process calls instead of
// allocated fresh each time.
package pool

import (
	"sync"

	"github.com/0xanonymeow/zksmt/field"
)

// ElementSlicePool hands out []field.Element scratch buffers of a fixed
// size, keyed by size, avoiding a fresh allocation on every ComputeRoot
// call for a depth used repeatedly (e.g. one fixed-depth SMT serving many
// proofs). Safe for concurrent use.
type ElementSlicePool struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewElementSlicePool creates an empty pool; buckets are created lazily per
// requested size.
func NewElementSlicePool() *ElementSlicePool {
	return &ElementSlicePool{pools: make(map[int]*sync.Pool)}
}

func (p *ElementSlicePool) bucket(n int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.pools[n]
	if !ok {
		b = &sync.Pool{New: func() interface{} { return make([]field.Element, n) }}
		p.pools[n] = b
	}
	return b
}

// Get returns a zeroed []field.Element of length n, reused from the pool
// when available.
func (p *ElementSlicePool) Get(n int) []field.Element {
	s := p.bucket(n).Get().([]field.Element)
	for i := range s {
		s[i] = field.Zero()
	}
	return s
}

// Put returns a slice to the pool for reuse.
func (p *ElementSlicePool) Put(s []field.Element) {
	if len(s) == 0 {
		return
	}
	p.bucket(len(s)).Put(s)
}

// BoolSlicePool hands out []bool scratch buffers of a fixed size, used by
// the sibling-bitmap scan so it doesn't allocate on every call. Safe for
// concurrent use.
type BoolSlicePool struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewBoolSlicePool creates an empty pool; buckets are created lazily per
// requested size.
func NewBoolSlicePool() *BoolSlicePool {
	return &BoolSlicePool{pools: make(map[int]*sync.Pool)}
}

func (p *BoolSlicePool) bucket(n int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.pools[n]
	if !ok {
		b = &sync.Pool{New: func() interface{} { return make([]bool, n) }}
		p.pools[n] = b
	}
	return b
}

// Get returns a zeroed []bool of length n, reused from the pool when
// available.
func (p *BoolSlicePool) Get(n int) []bool {
	s := p.bucket(n).Get().([]bool)
	for i := range s {
		s[i] = false
	}
	return s
}

// Put returns a slice to the pool for reuse.
func (p *BoolSlicePool) Put(s []bool) {
	if len(s) == 0 {
		return
	}
	p.bucket(len(s)).Put(s)
}

// Global pools shared by the smt package's hot paths.
var (
	GlobalElementSlicePool = NewElementSlicePool()
	GlobalBoolSlicePool    = NewBoolSlicePool()
)
