// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
//
// Typed object pooling.

package pool

import "sync"

// ObjectPool is the reuse contract BytePool builds on.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool is an ObjectPool over sync.Pool. Get never returns the zero value:
// an empty pool calls newFn.
type SyncPool[T any] struct {
	p sync.Pool
}

var _ ObjectPool[*[]byte] = (*SyncPool[*[]byte])(nil)

func NewSyncPool[T any](newFn func() T) *SyncPool[T] {
	sp := &SyncPool[T]{}
	sp.p.New = func() any { return newFn() }
	return sp
}

func (sp *SyncPool[T]) Get() T { return sp.p.Get().(T) }

// Put hands obj back; the pool may drop it at any GC.
func (sp *SyncPool[T]) Put(obj T) { sp.p.Put(obj) }
