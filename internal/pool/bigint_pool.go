package pool

import (
	"math/big"
	"sync"
)

// BigIntPool provides a pool of reusable big.Int instances to reduce allocations
type BigIntPool struct {
	pool sync.Pool
}

// NewBigIntPool creates a new BigIntPool
func NewBigIntPool() *BigIntPool {
	return &BigIntPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(big.Int)
			},
		},
	}
}

// Get retrieves a big.Int from the pool
func (p *BigIntPool) Get() *big.Int {
	return p.pool.Get().(*big.Int)
}

// Put returns a big.Int to the pool after resetting it
func (p *BigIntPool) Put(x *big.Int) {
	if x != nil {
		x.SetInt64(0) // Reset to zero
		p.pool.Put(x)
	}
}

// GetCopy retrieves a big.Int from the pool and sets it to the value of src
func (p *BigIntPool) GetCopy(src *big.Int) *big.Int {
	x := p.Get()
	x.Set(src)
	return x
}

// Global pool instance for convenience
var GlobalBigIntPool = NewBigIntPool()

// StringSlicePool provides a pool of reusable string slices
type StringSlicePool struct {
	pool sync.Pool
	size int
}

// NewStringSlicePool creates a new StringSlicePool with initial capacity
func NewStringSlicePool(size int) *StringSlicePool {
	return &StringSlicePool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]string, 0, size)
			},
		},
	}
}

// Get retrieves a string slice from the pool
func (p *StringSlicePool) Get() []string {
	return p.pool.Get().([]string)[:0] // Reset length but keep capacity
}

// Put returns a string slice to the pool
func (p *StringSlicePool) Put(s []string) {
	if s != nil && cap(s) >= p.size {
		p.pool.Put(s)
	}
}

// Global string slice pool for sibling-decimal-string arrays (cmd/smtgen)
var GlobalStringSlicePool = NewStringSlicePool(256) // Max tree depth
