// Package collections provides the small generic container set the graph engine
// is built on: a growable Array, a separately chained hash Map, a Set over that
// Map, and array-backed Stack and Queue buffers.
//
// What
//
//   - Array[T]: indexed sequence, doubling growth (default capacity 10).
//   - Map[K,V]: hash table with separate chaining (default 16 buckets). The
//     table is statically sized unless MapConfig.LoadFactor opts in to rehashing.
//   - Set[K]: adapter over Map[K, struct{}].
//   - Stack[T]: LIFO over a doubling slice.
//   - Queue[T]: FIFO circular buffer; growth copies elements out in logical order.
//
// Determinism
//
//	Map enumeration (Keys, Values, Entries, All) walks buckets in table order and
//	each chain head-first. New keys are pushed at the head of their bucket, so the
//	most recent collision comes first. Every Hasher shipped here is seedless, which
//	makes the enumeration order a pure function of the operation sequence; golden
//	outputs built on it are reproducible across runs and processes.
//
// Errors
//
//   - ErrInvalidArgument   umbrella for caller mistakes:
//   - ErrInvalidCapacity   non-positive capacity passed to a constructor.
//   - ErrIndexOutOfRange   Array index outside [0, Size()).
//   - ErrEmptyContainer    Pop/Peek/Poll on an empty Stack or Queue.
//
// None of the containers are safe for concurrent use.
package collections
