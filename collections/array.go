// SPDX-License-Identifier: MIT
//
// File: array.go
// Role: Growable indexed sequence backing every enumeration in the module.
// Policy:
//   - Capacity only grows (x2); Remove and Clear never shrink the backing slice.
//   - Vacated slots are zeroed so removed elements can be collected.

package collections

import (
	"fmt"
	"iter"
	"strings"
)

// DefaultArrayCapacity is the backing capacity of NewArray.
const DefaultArrayCapacity = 10

// growthFactor is shared by Array, Stack and Queue.
const growthFactor = 2

// Array is a resizable, insertion-ordered sequence.
//
// Only data[:size] is logically live; data[size:] holds zero values.
type Array[T any] struct {
	data []T
	size int
}

// NewArray returns an empty Array with DefaultArrayCapacity.
func NewArray[T any]() *Array[T] {
	return &Array[T]{data: make([]T, DefaultArrayCapacity)}
}

// NewArrayWithCapacity returns an empty Array with the given backing capacity.
// Returns ErrInvalidCapacity if capacity <= 0.
func NewArrayWithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity <= 0 {
		return nil, capacityError(capacity)
	}

	return &Array[T]{data: make([]T, capacity)}, nil
}

// ArrayOf builds an Array holding vals in order.
func ArrayOf[T any](vals ...T) *Array[T] {
	capacity := len(vals)
	if capacity < DefaultArrayCapacity {
		capacity = DefaultArrayCapacity
	}
	a := &Array[T]{data: make([]T, capacity)}
	for _, v := range vals {
		a.Add(v)
	}

	return a
}

// Add appends v. Amortized O(1): the backing slice doubles when full.
func (a *Array[T]) Add(v T) {
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = v
	a.size++
}

func (a *Array[T]) grow() {
	next := make([]T, grownCapacity(len(a.data)))
	copy(next, a.data[:a.size])
	a.data = next
}

// Get returns the element at i.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, indexError(i, a.size)
	}

	return a.data[i], nil
}

// Set replaces the element at i and returns the previous one.
func (a *Array[T]) Set(i int, v T) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, indexError(i, a.size)
	}
	old := a.data[i]
	a.data[i] = v

	return old, nil
}

// Remove deletes the element at i, shifting later elements left by one.
// Complexity: O(n - i).
func (a *Array[T]) Remove(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, indexError(i, a.size)
	}
	old := a.data[i]
	copy(a.data[i:], a.data[i+1:a.size])
	a.size--
	var zero T
	a.data[a.size] = zero

	return old, nil
}

// grownCapacity doubles capacity; a zero-value container starts at the default.
func grownCapacity(capacity int) int {
	if capacity == 0 {
		return DefaultArrayCapacity
	}

	return capacity * growthFactor
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (a *Array[T]) IndexFunc(pred func(T) bool) int {
	for i := 0; i < a.size; i++ {
		if pred(a.data[i]) {
			return i
		}
	}

	return -1
}

// Clear drops every element but keeps the backing capacity.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.data[i] = zero
	}
	a.size = 0
}

// Size returns the number of elements.
func (a *Array[T]) Size() int { return a.size }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Cap returns the backing capacity.
func (a *Array[T]) Cap() int { return len(a.data) }

// Slice returns a fresh copy of the elements in order.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])

	return out
}

// All yields index/element pairs in order.
// The array must not be mutated while ranging.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values yields elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// String renders the array as "[a b c]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, a.data[i])
	}
	sb.WriteByte(']')

	return sb.String()
}

// IndexOf returns the index of the first element equal to v, or -1.
// Zero values compare equal to stored zero values.
func IndexOf[T comparable](a *Array[T], v T) int {
	for i := 0; i < a.size; i++ {
		if a.data[i] == v {
			return i
		}
	}

	return -1
}

// Contains reports whether v is present in a.
func Contains[T comparable](a *Array[T], v T) bool {
	return IndexOf(a, v) >= 0
}
