package collections

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to its bucket hash. It must be deterministic and consistent
// with ==: equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

// StringHash is the 31-polynomial string hash (h = 31*h + c over code points,
// wrapping at 32 bits). Single-character keys hash to their code point, so
// "A".."O" land in buckets 1..15 of a 16-bucket table in alphabetical order.
func StringHash(s string) uint64 {
	var h int32
	for _, r := range s {
		h = 31*h + r
	}

	return uint64(uint32(h))
}

// IntHash is the identity hash for integer keys.
func IntHash(n int64) uint64 { return uint64(n) }

// FloatHash hashes the IEEE-754 bits of f with xxhash64. Both zeros hash to
// 0 because 0.0 == -0.0; NaN keys never compare equal and are not findable.
func FloatHash(f float64) uint64 {
	if f == 0 {
		return 0
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))

	return xxhash.Sum64(b[:])
}

// XXHash hashes s with xxhash64. It spreads similar keys (e.g. "node-1",
// "node-2") far better than StringHash at the cost of readable bucket order.
func XXHash(s string) uint64 { return xxhash.Sum64String(s) }

// DefaultHasher picks a hasher by the dynamic type of K:
//
//	string            → StringHash
//	signed integers   → IntHash
//	unsigned integers → identity
//	bool              → 0 / 1
//	floats, complex   → FloatHash (per component)
//	anything else     → XXHash of the %#v rendering
//
// The fallback is deterministic for value types; pointer keys hash by address
// and therefore only enumerate reproducibly within one process. Structs with
// float fields render 0.0 and -0.0 differently and need their own Hasher.
func DefaultHasher[K comparable]() Hasher[K] {
	var zero K
	switch any(zero).(type) {
	case string:
		return func(k K) uint64 { return StringHash(any(k).(string)) }
	case int:
		return func(k K) uint64 { return IntHash(int64(any(k).(int))) }
	case int8:
		return func(k K) uint64 { return IntHash(int64(any(k).(int8))) }
	case int16:
		return func(k K) uint64 { return IntHash(int64(any(k).(int16))) }
	case int32:
		return func(k K) uint64 { return IntHash(int64(any(k).(int32))) }
	case int64:
		return func(k K) uint64 { return IntHash(any(k).(int64)) }
	case uint:
		return func(k K) uint64 { return uint64(any(k).(uint)) }
	case uint8:
		return func(k K) uint64 { return uint64(any(k).(uint8)) }
	case uint16:
		return func(k K) uint64 { return uint64(any(k).(uint16)) }
	case uint32:
		return func(k K) uint64 { return uint64(any(k).(uint32)) }
	case uint64:
		return func(k K) uint64 { return any(k).(uint64) }
	case float32:
		return func(k K) uint64 { return FloatHash(float64(any(k).(float32))) }
	case float64:
		return func(k K) uint64 { return FloatHash(any(k).(float64)) }
	case complex64:
		return func(k K) uint64 {
			c := complex128(any(k).(complex64))
			return 31*FloatHash(real(c)) + FloatHash(imag(c))
		}
	case complex128:
		return func(k K) uint64 {
			c := any(k).(complex128)
			return 31*FloatHash(real(c)) + FloatHash(imag(c))
		}
	case bool:
		return func(k K) uint64 {
			if any(k).(bool) {
				return 1
			}
			return 0
		}
	default:
		return func(k K) uint64 { return XXHash(fmt.Sprintf("%#v", k)) }
	}
}

// XXHasher adapts XXHash to any string-kinded key type.
func XXHasher[K ~string]() Hasher[K] {
	return func(k K) uint64 { return XXHash(string(k)) }
}
