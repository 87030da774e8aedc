package internal

import "sync"

// FloatBufferPool reuses float32 field buffers across pipeline invocations.
// The pipeline's largest allocations are the decoded dBZ field and the RGBA
// raster, both O(width*height); reusing them avoids repeated large
// allocations when the same process handles many requests back to back.
//
// Buffers are not safe to share between concurrent invocations; callers
// must Put a buffer back only after they are done with it exclusively.
type FloatBufferPool struct {
	pool sync.Pool
}

// NewFloatBufferPool creates an empty pool.
func NewFloatBufferPool() *FloatBufferPool {
	return &FloatBufferPool{}
}

// Get returns a []float32 with length n, either freshly allocated or
// recycled from a previous Put. Contents are not zeroed.
func (p *FloatBufferPool) Get(n int) []float32 {
	if v := p.pool.Get(); v != nil {
		buf := v.([]float32)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]float32, n)
}

// Put returns a buffer to the pool for reuse.
func (p *FloatBufferPool) Put(buf []float32) {
	p.pool.Put(buf) //nolint:staticcheck // deliberately pooling the backing array
}

// ByteBufferPool reuses raw byte buffers, used for the RGBA raster before
// PNG encoding.
type ByteBufferPool struct {
	pool sync.Pool
}

// NewByteBufferPool creates an empty pool.
func NewByteBufferPool() *ByteBufferPool {
	return &ByteBufferPool{}
}

// Get returns a []byte with length n, either freshly allocated or recycled.
func (p *ByteBufferPool) Get(n int) []byte {
	if v := p.pool.Get(); v != nil {
		buf := v.([]byte)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]byte, n)
}

// Put returns a buffer to the pool for reuse.
func (p *ByteBufferPool) Put(buf []byte) {
	p.pool.Put(buf)
}
