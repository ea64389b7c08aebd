package collections

// Stack is a LIFO buffer over a doubling slice.
type Stack[T any] struct {
	data []T
	top  int // number of live elements; data[top-1] is the top
}

// NewStack returns an empty Stack with DefaultArrayCapacity.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{data: make([]T, DefaultArrayCapacity)}
}

// NewStackWithCapacity returns an empty Stack; capacity must be > 0.
func NewStackWithCapacity[T any](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, capacityError(capacity)
	}

	return &Stack[T]{data: make([]T, capacity)}, nil
}

// Push places v on top.
func (s *Stack[T]) Push(v T) {
	if s.top == len(s.data) {
		next := make([]T, grownCapacity(len(s.data)))
		copy(next, s.data)
		s.data = next
	}
	s.data[s.top] = v
	s.top++
}

// Pop removes and returns the top element.
// Returns ErrEmptyContainer when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top == 0 {
		return zero, ErrEmptyContainer
	}
	s.top--
	v := s.data[s.top]
	s.data[s.top] = zero

	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return s.data[s.top-1], nil
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int { return s.top }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return s.top == 0 }

// Clear drops every element, keeping capacity.
func (s *Stack[T]) Clear() {
	var zero T
	for i := 0; i < s.top; i++ {
		s.data[i] = zero
	}
	s.top = 0
}
