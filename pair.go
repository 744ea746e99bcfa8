package scalaps

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Dict.Items], [Enumerate], and [Zip],
// and the input element type of [ToDict] and [DictOf].
//
// Portability note: in Python this maps to a 2-tuple; in TypeScript to
// [A, B]; in Rust to (A, B).
type Pair[A, B any] struct {
	First  A
	Second B
}

// KV builds a Pair from a key and a value. It reads better than a struct
// literal when constructing dicts:
//
//	d := scalaps.DictOf(scalaps.KV("a", 1), scalaps.KV("b", 2))
func KV[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
