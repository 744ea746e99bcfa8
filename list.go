package scalaps

import (
	"encoding/json"
	"fmt"
	"iter"
)

// List is a mutable, insertion-ordered eager sequence.
//
// Unlike [Seq], a List may be traversed any number of times: every call to
// [List.Traverse] (and every combinator built on it) gets an independent
// cursor over the same backing slice. Transformation methods still return a
// lazy [Seq]; materialize with ToList when a reusable result is needed.
//
// Lists are safe for concurrent reads. Appending while another goroutine (or
// an outstanding cursor) reads the list is not supported.
type List[T any] struct {
	items []T
}

// NewList creates a List from a variadic list of items (copied).
func NewList[T any](items ...T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// ListFrom creates a List from a slice (the slice is copied).
func ListFrom[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Traverse returns a fresh forward cursor. It never fails and never
// invalidates the list.
func (l *List[T]) Traverse() (iter.Seq[T], error) {
	return forward(l.items), nil
}

// Append adds items to the end of the list, preserving insertion order.
// Amortized O(1) per item.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the item at index together with a presence flag.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the list is empty or no item
// satisfies the predicate.
func (l *List[T]) First(fns ...func(T) bool) (T, bool) { return first(l.items, fns) }

// Last returns the last item, optionally matching fns[0].
func (l *List[T]) Last(fns ...func(T) bool) (T, bool) { return last(l.items, fns) }

// ForEach calls fn on every item.
func (l *List[T]) ForEach(fn func(T)) {
	for _, v := range l.items {
		fn(v)
	}
}

// Filter returns a lazy Seq of the items for which fn returns true.
func (l *List[T]) Filter(fn func(T) bool) *Seq[T] { return filterOf[T](l, fn) }

// Map transforms each item with fn, producing a Seq[any].
// For type-safe transformation use the package-level [Map].
func (l *List[T]) Map(fn func(T) any) *Seq[any] { return Map[T, any](l, fn) }

// FlatMap maps each item to a slice and flattens one level, producing a
// Seq[any]. For type-safe flat-mapping use the package-level [FlatMap].
func (l *List[T]) FlatMap(fn func(T) []any) *Seq[any] { return FlatMap[T, any](l, fn) }

// Take returns a lazy Seq of at most the first n items (last -n when n is
// negative).
func (l *List[T]) Take(n int) *Seq[T] { return takeOf[T](l, n) }

// TakeRight returns a lazy Seq of the last n items.
func (l *List[T]) TakeRight(n int) *Seq[T] { return takeRightOf[T](l, n) }

// Drop returns a lazy Seq without the first n items.
func (l *List[T]) Drop(n int) *Seq[T] { return dropOf[T](l, n) }

// Chain returns a lazy Seq of this list's items followed by other's.
func (l *List[T]) Chain(other Traversable[T]) *Seq[T] { return Chain[T](l, other) }

// Apply threads a fresh cursor through a custom iterator transformation.
func (l *List[T]) Apply(fn func(iter.Seq[T]) iter.Seq[T]) *Seq[T] { return derive[T, T](l, fn) }

// Reverse returns a lazy Seq over the items in backward order. The view is
// taken over the list's contents at call time; it is itself single-pass and
// in turn reversible.
func (l *List[T]) Reverse() *Seq[T] { return sliceSeq(l.items).mustReverse() }

// ToList returns the receiver.
func (l *List[T]) ToList() *List[T] { return l }

// ToFrozenList returns an immutable copy of the list.
func (l *List[T]) ToFrozenList() *FrozenList[T] {
	return FrozenListFrom(l.items)
}

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// String returns a debugging representation: "List([a b c])".
// It implements [fmt.Stringer]; the format is not meant to be parsed.
func (l *List[T]) String() string {
	return fmt.Sprintf("List(%v)", l.items)
}

// Dump prints the list to stdout and returns it for chaining.
func (l *List[T]) Dump() *List[T] {
	fmt.Println(l.String())
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// FrozenList
// ─────────────────────────────────────────────────────────────────────────────

// FrozenList is an immutable, insertion-ordered eager sequence. It is built
// once from any source and has no mutating methods; beyond that it behaves
// exactly like [List].
type FrozenList[T any] struct {
	items []T
}

// NewFrozenList creates a FrozenList from a variadic list of items (copied).
func NewFrozenList[T any](items ...T) *FrozenList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &FrozenList[T]{items: dst}
}

// FrozenListFrom creates a FrozenList from a slice (the slice is copied).
func FrozenListFrom[T any](items []T) *FrozenList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &FrozenList[T]{items: dst}
}

// Traverse returns a fresh forward cursor. It never fails.
func (l *FrozenList[T]) Traverse() (iter.Seq[T], error) {
	return forward(l.items), nil
}

// Len returns the number of items.
func (l *FrozenList[T]) Len() int { return len(l.items) }

// All returns a copy of the underlying slice.
func (l *FrozenList[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the item at index together with a presence flag.
func (l *FrozenList[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// First returns the first item, optionally matching fns[0].
func (l *FrozenList[T]) First(fns ...func(T) bool) (T, bool) { return first(l.items, fns) }

// Last returns the last item, optionally matching fns[0].
func (l *FrozenList[T]) Last(fns ...func(T) bool) (T, bool) { return last(l.items, fns) }

// ForEach calls fn on every item.
func (l *FrozenList[T]) ForEach(fn func(T)) {
	for _, v := range l.items {
		fn(v)
	}
}

// Filter returns a lazy Seq of the items for which fn returns true.
func (l *FrozenList[T]) Filter(fn func(T) bool) *Seq[T] { return filterOf[T](l, fn) }

// Map transforms each item with fn, producing a Seq[any].
func (l *FrozenList[T]) Map(fn func(T) any) *Seq[any] { return Map[T, any](l, fn) }

// FlatMap maps each item to a slice and flattens one level.
func (l *FrozenList[T]) FlatMap(fn func(T) []any) *Seq[any] { return FlatMap[T, any](l, fn) }

// Take returns a lazy Seq of at most the first n items (last -n when n is
// negative).
func (l *FrozenList[T]) Take(n int) *Seq[T] { return takeOf[T](l, n) }

// TakeRight returns a lazy Seq of the last n items.
func (l *FrozenList[T]) TakeRight(n int) *Seq[T] { return takeRightOf[T](l, n) }

// Drop returns a lazy Seq without the first n items.
func (l *FrozenList[T]) Drop(n int) *Seq[T] { return dropOf[T](l, n) }

// Chain returns a lazy Seq of this list's items followed by other's.
func (l *FrozenList[T]) Chain(other Traversable[T]) *Seq[T] { return Chain[T](l, other) }

// Apply threads a fresh cursor through a custom iterator transformation.
func (l *FrozenList[T]) Apply(fn func(iter.Seq[T]) iter.Seq[T]) *Seq[T] { return derive[T, T](l, fn) }

// Reverse returns a lazy Seq over the items in backward order.
func (l *FrozenList[T]) Reverse() *Seq[T] { return sliceSeq(l.items).mustReverse() }

// ToList returns a mutable copy of the list.
func (l *FrozenList[T]) ToList() *List[T] { return ListFrom(l.items) }

// ToFrozenList returns the receiver.
func (l *FrozenList[T]) ToFrozenList() *FrozenList[T] { return l }

// ToJSON serialises the items to a JSON array.
func (l *FrozenList[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// String returns a debugging representation: "FrozenList([a b c])".
func (l *FrozenList[T]) String() string {
	return fmt.Sprintf("FrozenList(%v)", l.items)
}

// Dump prints the list to stdout and returns it for chaining.
func (l *FrozenList[T]) Dump() *FrozenList[T] {
	fmt.Println(l.String())
	return l
}

// mustReverse is Reverse for fresh slice-backed sequences, which cannot fail.
func (s *Seq[T]) mustReverse() *Seq[T] {
	r, err := s.Reverse()
	if err != nil {
		panic(err) // unreachable: s is fresh and bidirectional
	}
	return r
}

func first[T any](items []T, fns []func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

func last[T any](items []T, fns []func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, item := range items {
			if fns[0](item) {
				found = item
				matched = true
			}
		}
		return found, matched
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}
