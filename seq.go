package scalaps

import (
	"fmt"
	"iter"
)

// Seq is a lazy, single-pass sequence: a one-shot wrapper around an
// arbitrary (finite or infinite) element source.
//
// A Seq may be traversed at most once, and the transition happens the moment
// a traversal is *requested*, not when it completes. Requesting is
// committing: once any terminal operation ([Seq.ToList], [Seq.Count],
// [Seq.ForEach], …) or [Seq.Traverse] has been called, every later traversal
// attempt fails with [ErrAlreadyConsumed]. Use [List] or [FrozenList] for
// realized sequences that can be iterated any number of times.
//
// Transformation methods (Filter, Take, Drop, …) do no work and consume
// nothing: they wrap the act of traversing the receiver inside a new Seq.
// Building a chain of ten combinators touches no element; the upstream
// sequences are committed only when the final Seq is traversed. An
// already-consumed upstream therefore surfaces as ErrAlreadyConsumed from
// the terminal operation of the derived sequence.
//
//	evens, err := scalaps.SeqOf(1, 2, 3, 4).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    ToList()
type Seq[T any] struct {
	src      func() (iter.Seq[T], error)
	rev      func() (iter.Seq[T], error) // non-nil only for bidirectional sources
	consumed bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSeq wraps an iterator in a single-pass Seq. The iterator may be
// infinite; bound consumption with [Seq.Take] before any terminal operation.
func NewSeq[T any](src iter.Seq[T]) *Seq[T] {
	return &Seq[T]{src: func() (iter.Seq[T], error) { return src, nil }}
}

// SeqOf creates a Seq from a variadic list of items (copied).
// Slice-backed sequences support [Seq.Reverse].
func SeqOf[T any](items ...T) *Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return sliceSeq(dst)
}

// SeqFrom creates a Seq from a slice (the slice is copied).
// Slice-backed sequences support [Seq.Reverse].
func SeqFrom[T any](items []T) *Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return sliceSeq(dst)
}

// sliceSeq builds a bidirectional Seq over a backing slice the caller
// promises not to mutate.
func sliceSeq[T any](items []T) *Seq[T] {
	return &Seq[T]{
		src: func() (iter.Seq[T], error) { return forward(items), nil },
		rev: func() (iter.Seq[T], error) { return backward(items), nil },
	}
}

func forward[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

func backward[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Single-pass contract
// ─────────────────────────────────────────────────────────────────────────────

// Traverse returns the forward cursor over the source, committing the Seq.
// A second call — whether or not the first cursor was ever advanced — fails
// with [ErrAlreadyConsumed].
//
// Traversing releases the Seq's reference to its source, so upstream
// resources feeding the sequence can be reclaimed once the cursor itself is
// done, even while the Seq value stays reachable.
func (s *Seq[T]) Traverse() (iter.Seq[T], error) {
	if s.consumed {
		return nil, ErrAlreadyConsumed
	}
	s.consumed = true
	src := s.src
	s.src, s.rev = nil, nil
	return src()
}

// Reverse returns a new Seq over the elements in backward order.
//
// Only bidirectional sources can be reversed: slice-backed sequences
// ([SeqOf], [SeqFrom], [List.Reverse], dict views) qualify; sequences derived
// through combinators do not and fail with [ErrNotReversible]. Reversing
// does not consume the receiver — a bidirectional source supports one
// forward and one backward view, each single-pass on its own. A consumed
// Seq fails with [ErrAlreadyConsumed].
func (s *Seq[T]) Reverse() (*Seq[T], error) {
	if s.consumed {
		return nil, ErrAlreadyConsumed
	}
	if s.rev == nil {
		return nil, fmt.Errorf("%w: materialize with ToList before reversing", ErrNotReversible)
	}
	return &Seq[T]{src: s.rev, rev: s.src}, nil
}

// derive wraps the act of traversing t inside a new lazy Seq. Nothing is
// consumed until the returned Seq is itself traversed; traversal errors from
// t propagate to whoever requests that traversal.
func derive[T, U any](t Traversable[T], wrap func(iter.Seq[T]) iter.Seq[U]) *Seq[U] {
	return &Seq[U]{src: func() (iter.Seq[U], error) {
		cursor, err := t.Traverse()
		if err != nil {
			return nil, err
		}
		return wrap(cursor), nil
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations (lazy)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a lazy Seq of the elements for which fn returns true.
func (s *Seq[T]) Filter(fn func(T) bool) *Seq[T] { return filterOf[T](s, fn) }

// Map transforms each element with fn, producing a Seq[any].
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (s *Seq[T]) Map(fn func(T) any) *Seq[any] { return Map(s, fn) }

// FlatMap maps each element to a slice and flattens the results one level,
// producing a Seq[any]. For type-safe flat-mapping, use the package-level
// [FlatMap] function.
func (s *Seq[T]) FlatMap(fn func(T) []any) *Seq[any] { return FlatMap(s, fn) }

// Take returns a lazy Seq of at most the first n elements. This is the only
// bounded way to consume an infinite sequence. A negative n keeps the last
// -n elements instead (Take(-3) ≡ TakeRight(3)); that form buffers and only
// terminates on finite input.
func (s *Seq[T]) Take(n int) *Seq[T] { return takeOf[T](s, n) }

// TakeRight returns a lazy Seq of the last n elements. The input is fully
// consumed (through a ring buffer of size n) when the result is traversed.
func (s *Seq[T]) TakeRight(n int) *Seq[T] { return takeRightOf[T](s, n) }

// Drop returns a lazy Seq without the first n elements.
func (s *Seq[T]) Drop(n int) *Seq[T] { return dropOf[T](s, n) }

// Chain returns a lazy Seq of the receiver's elements followed by the other
// traversable's elements. Both sources are committed when the result is
// traversed.
func (s *Seq[T]) Chain(other Traversable[T]) *Seq[T] { return Chain[T](s, other) }

// Apply threads the traversal through a custom iterator transformation.
// It is the extension point for combinators this package does not provide:
//
//	pairs := s.Apply(slidingPairs) // func(iter.Seq[int]) iter.Seq[int]
func (s *Seq[T]) Apply(fn func(iter.Seq[T]) iter.Seq[T]) *Seq[T] {
	return derive(s, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations (each commits the Seq)
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn on every element.
func (s *Seq[T]) ForEach(fn func(T)) error { return ForEach[T](s, fn) }

// Count consumes the Seq and returns the number of elements.
func (s *Seq[T]) Count() (int, error) { return Count[T](s) }

// ToList materializes the Seq into a mutable [List].
func (s *Seq[T]) ToList() (*List[T], error) { return ToList[T](s) }

// ToFrozenList materializes the Seq into an immutable [FrozenList].
func (s *Seq[T]) ToFrozenList() (*FrozenList[T], error) { return ToFrozenList[T](s) }

// shared implementations, usable from List and FrozenList as well

func filterOf[T any](t Traversable[T], fn func(T) bool) *Seq[T] {
	return derive(t, func(cursor iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range cursor {
				if fn(v) && !yield(v) {
					return
				}
			}
		}
	})
}

func takeOf[T any](t Traversable[T], n int) *Seq[T] {
	if n < 0 {
		return takeRightOf(t, -n)
	}
	return derive(t, func(cursor iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			if n == 0 {
				return
			}
			left := n
			for v := range cursor {
				if !yield(v) {
					return
				}
				if left--; left == 0 {
					return
				}
			}
		}
	})
}

func takeRightOf[T any](t Traversable[T], n int) *Seq[T] {
	return derive(t, func(cursor iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			// ring buffer of the n most recent elements
			buf := make([]T, 0, n)
			start := 0
			for v := range cursor {
				if len(buf) < n {
					buf = append(buf, v)
				} else {
					buf[start] = v
					start = (start + 1) % n
				}
			}
			for i := range buf {
				if !yield(buf[(start+i)%len(buf)]) {
					return
				}
			}
		}
	})
}

func dropOf[T any](t Traversable[T], n int) *Seq[T] {
	return derive(t, func(cursor iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			skipped := 0
			for v := range cursor {
				if skipped < n {
					skipped++
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	})
}
