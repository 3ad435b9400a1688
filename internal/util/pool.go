package util

import (
	"sync"
)

// BufferPool hands out fixed-size byte buffers for stream conversion so that
// long-running copies do not allocate a fresh chunk per read.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with the specified buffer size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				b := make([]byte, size)
				return &b
			},
		},
	}
}

// Size returns the length of every buffer in the pool.
func (p *BufferPool) Size() int {
	return p.size
}

// Get retrieves a buffer of length Size from the pool.
// The buffer contents are undefined and should be overwritten.
func (p *BufferPool) Get() []byte {
	return *p.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool. Buffers whose capacity does not match
// Size are dropped; shorter reslices of a pooled buffer are restored to full
// length first.
func (p *BufferPool) Put(b []byte) {
	if cap(b) != p.size {
		return
	}
	b = b[:p.size]
	p.pool.Put(&b)
}
