package scalaps

// This file contains the package-level generic combinators, defined once
// against the [Traversable] capability so they apply uniformly to [Seq],
// [List], [FrozenList], and dict views.
//
// Go generics do not allow methods to introduce their own type parameters,
// so every operation that changes the element type — or needs a comparable
// or ordered constraint — lives here as a stand-alone function. They compose
// with the method-chaining calls:
//
//	groups, err := scalaps.GroupBy(
//	    scalaps.SeqFrom(lines).Filter(nonEmpty),
//	    func(r Record) string { return r.Kind },
//	)

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the constraint accepted by [Sum].
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element and returns a lazy Seq[U].
//
//	posts := scalaps.Map(scalaps.SeqFrom(lines), parsePost)
func Map[T, U any](t Traversable[T], fn func(T) U) *Seq[U] {
	return derive(t, func(cursor iter.Seq[T]) iter.Seq[U] {
		return func(yield func(U) bool) {
			for v := range cursor {
				if !yield(fn(v)) {
					return
				}
			}
		}
	})
}

// FlatMap applies fn to every element (producing a []U per element) and
// flattens the results into a single lazy Seq[U].
//
//	words := scalaps.FlatMap(titles, strings.Fields)
func FlatMap[T, U any](t Traversable[T], fn func(T) []U) *Seq[U] {
	return derive(t, func(cursor iter.Seq[T]) iter.Seq[U] {
		return func(yield func(U) bool) {
			for v := range cursor {
				for _, u := range fn(v) {
					if !yield(u) {
						return
					}
				}
			}
		}
	})
}

// Chain concatenates any number of traversables into one lazy Seq. All
// inputs are committed when the result is traversed.
func Chain[T any](ts ...Traversable[T]) *Seq[T] {
	return &Seq[T]{src: func() (iter.Seq[T], error) {
		cursors := make([]iter.Seq[T], len(ts))
		for i, t := range ts {
			cursor, err := t.Traverse()
			if err != nil {
				return nil, err
			}
			cursors[i] = cursor
		}
		return func(yield func(T) bool) {
			for _, cursor := range cursors {
				for v := range cursor {
					if !yield(v) {
						return
					}
				}
			}
		}, nil
	}}
}

// Apply threads the traversal of t through a custom iterator transformation,
// the extension point for combinators this package does not provide.
func Apply[T, U any](t Traversable[T], fn func(iter.Seq[T]) iter.Seq[U]) *Seq[U] {
	return derive(t, fn)
}

// Enumerate pairs every element with its position: (0, e0), (1, e1), …
func Enumerate[T any](t Traversable[T]) *Seq[Pair[int, T]] {
	return derive(t, func(cursor iter.Seq[T]) iter.Seq[Pair[int, T]] {
		return func(yield func(Pair[int, T]) bool) {
			i := 0
			for v := range cursor {
				if !yield(Pair[int, T]{First: i, Second: v}) {
					return
				}
				i++
			}
		}
	})
}

// Zip combines two traversables element-by-element into Pairs, stopping at
// the shorter input. Both inputs are committed when the result is traversed.
func Zip[A, B any](a Traversable[A], b Traversable[B]) *Seq[Pair[A, B]] {
	return &Seq[Pair[A, B]]{src: func() (iter.Seq[Pair[A, B]], error) {
		as, err := a.Traverse()
		if err != nil {
			return nil, err
		}
		bs, err := b.Traverse()
		if err != nil {
			return nil, err
		}
		return func(yield func(Pair[A, B]) bool) {
			next, stop := iter.Pull(bs)
			defer stop()
			for av := range as {
				bv, ok := next()
				if !ok {
					return
				}
				if !yield(Pair[A, B]{First: av, Second: bv}) {
					return
				}
			}
		}, nil
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn on every element. It performs exactly one traversal.
func ForEach[T any](t Traversable[T], fn func(T)) error {
	cursor, err := t.Traverse()
	if err != nil {
		return err
	}
	for v := range cursor {
		fn(v)
	}
	return nil
}

// Count returns the number of elements.
func Count[T any](t Traversable[T]) (int, error) {
	n := 0
	err := ForEach(t, func(T) { n++ })
	return n, err
}

// Fold reduces the elements onto init, left to right.
//
//	total, err := scalaps.Fold(scores, 0, func(acc, s int) int { return acc + s })
func Fold[T, A any](t Traversable[T], init A, fn func(A, T) A) (A, error) {
	acc := init
	err := ForEach(t, func(v T) { acc = fn(acc, v) })
	return acc, err
}

// Reduce combines the elements left to right using fn, seeding with the
// first element. An empty input fails with [ErrEmptyCollection].
func Reduce[T any](t Traversable[T], fn func(T, T) T) (T, error) {
	var acc T
	seeded := false
	err := ForEach(t, func(v T) {
		if !seeded {
			acc, seeded = v, true
			return
		}
		acc = fn(acc, v)
	})
	if err == nil && !seeded {
		err = ErrEmptyCollection
	}
	return acc, err
}

// Sum adds up the elements. The sum of an empty input is zero.
func Sum[T Number](t Traversable[T]) (T, error) {
	var sum T
	err := ForEach(t, func(v T) { sum += v })
	return sum, err
}

// Min returns the smallest element, or [ErrEmptyCollection].
func Min[T constraints.Ordered](t Traversable[T]) (T, error) {
	return Reduce(t, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// Max returns the largest element, or [ErrEmptyCollection].
func Max[T constraints.Ordered](t Traversable[T]) (T, error) {
	return Reduce(t, func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}

// MkString renders every element with fmt.Sprint and joins them with sep.
//
//	s, err := scalaps.MkString(scalaps.SeqOf(1, 2, 3), " .. ") // "1 .. 2 .. 3"
func MkString[T any](t Traversable[T], sep string) (string, error) {
	parts := []string{}
	err := ForEach(t, func(v T) { parts = append(parts, fmt.Sprint(v)) })
	return strings.Join(parts, sep), err
}

// ─────────────────────────────────────────────────────────────────────────────
// Materializing operations
// ─────────────────────────────────────────────────────────────────────────────

// ToList materializes any traversable into a mutable [List].
func ToList[T any](t Traversable[T]) (*List[T], error) {
	items, err := collect(t)
	if err != nil {
		return nil, err
	}
	return &List[T]{items: items}, nil
}

// ToFrozenList materializes any traversable into an immutable [FrozenList].
func ToFrozenList[T any](t Traversable[T]) (*FrozenList[T], error) {
	items, err := collect(t)
	if err != nil {
		return nil, err
	}
	return &FrozenList[T]{items: items}, nil
}

// ToDict materializes a traversable of pairs into a [Dict]. A repeated key
// keeps its first position and takes the last value; use [KeyBy] when
// duplicates should be an error.
func ToDict[K comparable, V any](t Traversable[Pair[K, V]]) (*Dict[K, V], error) {
	d := NewDict[K, V]()
	err := ForEach(t, func(p Pair[K, V]) { d.Set(p.First, p.Second) })
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Sort materializes the elements in ascending order. The sort is stable.
func Sort[T constraints.Ordered](t Traversable[T]) (*List[T], error) {
	return SortBy(t, func(v T) T { return v })
}

// SortBy materializes the elements sorted in ascending order of the rank
// extracted by fn. The sort is stable: equal ranks preserve traversal order.
//
//	byScore, err := scalaps.SortBy(posts, scalaps.Field[Post, int]("Score"))
func SortBy[T any, R constraints.Ordered](t Traversable[T], fn func(T) R) (*List[T], error) {
	items, err := collect(t)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return fn(items[i]) < fn(items[j]) })
	return &List[T]{items: items}, nil
}

// Distinct materializes the elements with duplicates removed, keeping the
// first occurrence of each and its order.
func Distinct[T comparable](t Traversable[T]) (*List[T], error) {
	return DistinctBy(t, func(v T) T { return v })
}

// DistinctBy materializes the elements with duplicates removed, comparing
// elements by the key extracted by fn.
func DistinctBy[T any, K comparable](t Traversable[T], fn func(T) K) (*List[T], error) {
	seen := make(map[K]struct{})
	out := &List[T]{}
	err := ForEach(t, func(v T) {
		k := fn(v)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out.items = append(out.items, v)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func collect[T any](t Traversable[T]) ([]T, error) {
	cursor, err := t.Traverse()
	if err != nil {
		return nil, err
	}
	items := []T{}
	for v := range cursor {
		items = append(items, v)
	}
	return items, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy partitions the elements by the key extracted by fn, in a single
// traversal. Each group is a [List] in element order; the groups come out in
// first-occurrence order of their keys.
//
//	byDept, err := scalaps.GroupBy(employees, func(e Employee) string { return e.Dept })
func GroupBy[T any, K comparable](t Traversable[T], fn func(T) K) (*Dict[K, *List[T]], error) {
	d := NewDict[K, *List[T]]()
	err := ForEach(t, func(v T) {
		k := fn(v)
		g, ok := d.Get(k)
		if !ok {
			g = &List[T]{}
			d.Set(k, g)
		}
		g.Append(v)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// KeyBy indexes the elements by the key extracted by fn, in a single
// traversal. A repeated key fails immediately with [ErrDuplicateKey] naming
// the key; no partial dict is returned.
//
//	byID, err := scalaps.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](t Traversable[T], fn func(T) K) (*Dict[K, T], error) {
	cursor, err := t.Traverse()
	if err != nil {
		return nil, err
	}
	d := NewDict[K, T]()
	for v := range cursor {
		k := fn(v)
		if d.Has(k) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		d.Set(k, v)
	}
	return d, nil
}

// AggregateBy maintains one running aggregate per key over a single
// traversal. create is invoked exactly once per newly seen key, lazily, on
// its first occurrence; add folds every element of that key (including the
// first) into the aggregate.
//
//	totals, err := scalaps.AggregateBy(sales,
//	    func(s Sale) string { return s.Region },
//	    func() *Stats { return &Stats{} },
//	    func(st *Stats, s Sale) *Stats { st.Add(s.Amount); return st },
//	)
func AggregateBy[T any, K comparable, A any](t Traversable[T], key func(T) K, create func() A, add func(A, T) A) (*Dict[K, A], error) {
	d := NewDict[K, A]()
	err := ForEach(t, func(v T) {
		k := key(v)
		acc, ok := d.Get(k)
		if !ok {
			acc = create()
		}
		d.Set(k, add(acc, v))
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// FoldBy is [AggregateBy] with a constant initial value per key.
// init is copied by value for every new key; use AggregateBy when the
// aggregate holds a pointer or slice.
func FoldBy[T any, K comparable, A any](t Traversable[T], key func(T) K, init A, fn func(A, T) A) (*Dict[K, A], error) {
	return AggregateBy(t, key, func() A { return init }, fn)
}

// ReduceBy combines the elements of each key with fn, seeding each group
// with its first element. The reducer is never invoked for a key with a
// single element.
//
//	sums, err := scalaps.ReduceBy(pairs,
//	    func(p Pair[string, int]) string { return p.First },
//	    func(a, b Pair[string, int]) Pair[string, int] { a.Second += b.Second; return a },
//	)
func ReduceBy[T any, K comparable](t Traversable[T], key func(T) K, fn func(T, T) T) (*Dict[K, T], error) {
	d := NewDict[K, T]()
	err := ForEach(t, func(v T) {
		k := key(v)
		if acc, ok := d.Get(k); ok {
			d.Set(k, fn(acc, v))
			return
		}
		d.Set(k, v)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ValueCounts tallies how often each distinct element occurs, in a single
// traversal. Keys come out in first-occurrence order.
//
//	counts, err := scalaps.ValueCounts(scalaps.SeqOf(1, 1, 2, 3, 3, 3))
//	// Dict({1: 2, 2: 1, 3: 3})
func ValueCounts[T comparable](t Traversable[T]) (*Dict[T, int], error) {
	return AggregateBy(t,
		func(v T) T { return v },
		func() int { return 0 },
		func(n int, _ T) int { return n + 1 },
	)
}
