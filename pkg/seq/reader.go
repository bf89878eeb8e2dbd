package seq

import "iter"

// Reader reads chunks of values from an iter.Seq without allocating a new slice for
// each chunk.
type Reader[T any] struct {
	// next and stop are the functions returned by iter.Pull for the wrapped sequence.
	next func() (T, bool)
	stop func()
}

// NewReader constructs a Reader that pulls from s. The caller must call Close if it
// stops reading before Read reports the end of the sequence.
func NewReader[T any](s iter.Seq[T]) *Reader[T] {
	next, stop := iter.Pull(s)
	return &Reader[T]{
		next: next,
		stop: stop,
	}
}

// Read fills buf with the next values of the sequence and returns how many were read.
// A count lower than len(buf) means the sequence is complete and later calls return 0.
func (r *Reader[T]) Read(buf []T) int {
	var head int

	for head < len(buf) {
		value, ok := r.next()
		if !ok {
			r.stop()
			break
		}

		buf[head] = value
		head++
	}
	return head
}

// Close releases the underlying sequence. Read must not be called after Close.
func (r *Reader[T]) Close() error {
	r.stop()
	return nil
}

// Chunk splits s into consecutive slices of size elements. The final chunk holds the
// remaining elements and may be shorter. Chunk panics if size is not positive.
func Chunk[T any](s iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		panic("chunk size must be greater than 0")
	}
	return func(yield func([]T) bool) {
		r := NewReader(s)
		defer r.Close()

		for {
			buf := make([]T, size)
			n := r.Read(buf)
			if n == 0 {
				return
			}
			if !yield(buf[:n]) || n < size {
				return
			}
		}
	}
}
