// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

// BytePool hands out fixed-size byte slices. Slices whose capacity does not
// match the pool size are dropped on Put.
type BytePool struct {
	objs ObjectPool[*[]byte]
	size int
}

// NewBytePool returns a pool of size-byte buffers. size must be positive.
func NewBytePool(size int) *BytePool {
	if size <= 0 {
		panic("pool: buffer size must be positive")
	}
	return &BytePool{
		objs: NewSyncPool(func() *[]byte {
			b := make([]byte, size)
			return &b
		}),
		size: size,
	}
}

// Size reports the length of buffers returned by GetBuffer.
func (b *BytePool) Size() int { return b.size }

// GetBuffer returns a buffer of exactly Size bytes. Contents are unspecified.
func (b *BytePool) GetBuffer() []byte {
	p := b.objs.Get()
	return (*p)[:b.size]
}

// PutBuffer returns a buffer to the pool.
func (b *BytePool) PutBuffer(buf []byte) {
	if cap(buf) != b.size {
		return
	}
	buf = buf[:b.size]
	b.objs.Put(&buf)
}
