// Package ringbuf provides a fixed-capacity circular buffer that keeps the
// most recent values pushed into it.
package ringbuf

// DefaultCapacity is the per-vital history length kept for each patient.
const DefaultCapacity = 60

// Buffer is not safe for concurrent use; callers serialize access.
type Buffer[T any] struct {
	data []T
	head int // index of the oldest value
	size int
}

func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// Push appends v at the tail. Once the buffer is full the oldest value is
// overwritten and head advances.
func (b *Buffer[T]) Push(v T) {
	capacity := len(b.data)
	if b.size < capacity {
		b.data[(b.head+b.size)%capacity] = v
		b.size++
		return
	}
	b.data[b.head] = v
	b.head = (b.head + 1) % capacity
}

// Values returns a copy of the buffered values, oldest first.
func (b *Buffer[T]) Values() []T {
	out := make([]T, b.size)
	for i := range b.size {
		out[i] = b.data[(b.head+i)%len(b.data)]
	}
	return out
}

// Last returns the most recent value; ok is false when nothing was pushed yet.
func (b *Buffer[T]) Last() (v T, ok bool) {
	if b.size == 0 {
		return v, false
	}
	return b.data[(b.head+b.size-1)%len(b.data)], true
}

func (b *Buffer[T]) Len() int { return b.size }

func (b *Buffer[T]) Cap() int { return len(b.data) }
