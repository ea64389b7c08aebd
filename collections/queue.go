package collections

// Queue is a FIFO circular buffer.
//
// Live elements occupy data[front], data[front+1], ... wrapping at len(data);
// rear is the slot the next Offer writes to.
type Queue[T any] struct {
	data  []T
	front int
	rear  int
	size  int
}

// NewQueue returns an empty Queue with DefaultArrayCapacity.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{data: make([]T, DefaultArrayCapacity)}
}

// NewQueueWithCapacity returns an empty Queue; capacity must be > 0.
func NewQueueWithCapacity[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, capacityError(capacity)
	}

	return &Queue[T]{data: make([]T, capacity)}, nil
}

// Offer appends v at the rear.
func (q *Queue[T]) Offer(v T) {
	if q.size == len(q.data) {
		q.grow()
	}
	q.data[q.rear] = v
	q.rear = (q.rear + 1) % len(q.data)
	q.size++
}

// grow doubles the buffer, unrolling the live window so that front becomes 0.
func (q *Queue[T]) grow() {
	next := make([]T, grownCapacity(len(q.data)))
	for i := 0; i < q.size; i++ {
		next[i] = q.data[(q.front+i)%len(q.data)]
	}
	q.data = next
	q.front = 0
	q.rear = q.size
}

// Poll removes and returns the front element.
// Returns ErrEmptyContainer when the queue is empty.
func (q *Queue[T]) Poll() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyContainer
	}
	v := q.data[q.front]
	q.data[q.front] = zero
	q.front = (q.front + 1) % len(q.data)
	q.size--

	return v, nil
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return q.data[q.front], nil
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int { return q.size }

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Clear drops every element, keeping capacity.
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.data {
		q.data[i] = zero
	}
	q.front, q.rear, q.size = 0, 0, 0
}
