package pool

import (
	"testing"

	"github.com/0xanonymeow/zksmt/field"
)

func TestElementSlicePoolGetIsZeroed(t *testing.T) {
	p := NewElementSlicePool()
	s := p.Get(3)
	if len(s) != 3 {
		t.Fatalf("expected length 3, got %d", len(s))
	}
	for i, e := range s {
		if !field.IsZero(e) {
			t.Fatalf("element %d not zeroed", i)
		}
	}
}

func TestElementSlicePoolReuse(t *testing.T) {
	p := NewElementSlicePool()
	s := p.Get(4)
	s[0] = field.FromUint64(99)
	p.Put(s)

	s2 := p.Get(4)
	if !field.IsZero(s2[0]) {
		t.Fatal("slice returned from pool must be re-zeroed on Get")
	}
}

func TestBoolSlicePoolGetIsZeroed(t *testing.T) {
	p := NewBoolSlicePool()
	s := p.Get(5)
	if len(s) != 5 {
		t.Fatalf("expected length 5, got %d", len(s))
	}
	for i, b := range s {
		if b {
			t.Fatalf("bool %d not zeroed", i)
		}
	}
}

func TestBoolSlicePoolReuse(t *testing.T) {
	p := NewBoolSlicePool()
	s := p.Get(2)
	s[0] = true
	p.Put(s)

	s2 := p.Get(2)
	if s2[0] {
		t.Fatal("slice returned from pool must be re-zeroed on Get")
	}
}
