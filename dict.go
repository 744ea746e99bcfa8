package scalaps

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dict is an associative container with Scala-style accessors. Keys are
// unique; iteration follows insertion order (first occurrence wins the
// position, later Sets keep it), which makes every grouping and counting
// operation in this package deterministic.
//
// The view accessors [Dict.Keys], [Dict.Values], and [Dict.Items] each
// return a fresh lazy [Seq] over the dict's current contents: calling Keys
// twice yields two independently consumable single-pass views. Because the
// backing store is doubly linked, dict views also support [Seq.Reverse].
//
// Dicts are produced by [GroupBy], [KeyBy], [ValueCounts], the aggregation
// family, or built directly:
//
//	d := scalaps.DictOf(scalaps.KV("a", 1), scalaps.KV("b", 2))
type Dict[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

// NewDict creates an empty Dict.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{om: orderedmap.New[K, V]()}
}

// DictOf creates a Dict from key-value pairs, in order. A repeated key keeps
// its first position and takes the last value.
func DictOf[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	d := NewDict[K, V]()
	for _, p := range pairs {
		d.om.Set(p.First, p.Second)
	}
	return d
}

// DictFrom creates a Dict from a Go map. The insertion order is whatever
// order the map iterates in, i.e. unspecified.
func DictFrom[K comparable, V any](m map[K]V) *Dict[K, V] {
	d := NewDict[K, V]()
	for k, v := range m {
		d.om.Set(k, v)
	}
	return d
}

// Get returns the value for key together with a presence flag.
func (d *Dict[K, V]) Get(key K) (V, bool) { return d.om.Get(key) }

// Set stores value under key. An existing key keeps its insertion position.
func (d *Dict[K, V]) Set(key K, value V) { d.om.Set(key, value) }

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.om.Get(key)
	return ok
}

// Delete removes key, reporting whether it was present.
func (d *Dict[K, V]) Delete(key K) bool {
	_, ok := d.om.Delete(key)
	return ok
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return d.om.Len() }

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns a fresh lazy view over the keys in insertion order.
func (d *Dict[K, V]) Keys() *Seq[K] {
	return viewSeq(d, func(p *orderedmap.Pair[K, V]) K { return p.Key })
}

// Values returns a fresh lazy view over the values in key insertion order.
func (d *Dict[K, V]) Values() *Seq[V] {
	return viewSeq(d, func(p *orderedmap.Pair[K, V]) V { return p.Value })
}

// Items returns a fresh lazy view over the (key, value) pairs in insertion
// order.
func (d *Dict[K, V]) Items() *Seq[Pair[K, V]] {
	return viewSeq(d, func(p *orderedmap.Pair[K, V]) Pair[K, V] {
		return Pair[K, V]{First: p.Key, Second: p.Value}
	})
}

// viewSeq builds a bidirectional single-pass view over d, projecting each
// stored pair through f at traversal time.
func viewSeq[K comparable, V, T any](d *Dict[K, V], f func(*orderedmap.Pair[K, V]) T) *Seq[T] {
	return &Seq[T]{
		src: func() (iter.Seq[T], error) {
			return func(yield func(T) bool) {
				for p := d.om.Oldest(); p != nil; p = p.Next() {
					if !yield(f(p)) {
						return
					}
				}
			}, nil
		},
		rev: func() (iter.Seq[T], error) {
			return func(yield func(T) bool) {
				for p := d.om.Newest(); p != nil; p = p.Prev() {
					if !yield(f(p)) {
						return
					}
				}
			}, nil
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

// MapValues returns a new Dict with the same keys, each value replaced by
// fn(value), producing Dict[K, any]. For a type-safe result use the
// package-level [MapValues].
func (d *Dict[K, V]) MapValues(fn func(V) any) *Dict[K, any] {
	return MapValues[K, V, any](d, fn)
}

// MapValues returns a new Dict with the same keys in the same order, each
// value replaced by fn(value).
//
//	sizes := scalaps.MapValues(groups, (*scalaps.List[Post]).Len)
func MapValues[K comparable, V, U any](d *Dict[K, V], fn func(V) U) *Dict[K, U] {
	out := NewDict[K, U]()
	for p := d.om.Oldest(); p != nil; p = p.Next() {
		out.om.Set(p.Key, fn(p.Value))
	}
	return out
}

// Union returns a new Dict holding the entries of d merged with other.
// On a shared key other's value wins while the key keeps d's insertion
// position, matching the merge semantics of a host-map update.
//
// With errorOnOverlap set, any key present in both sides fails with
// [ErrOverlappingKeys] naming the overlap count; the check runs before any
// merging, so no partial result is ever produced. Neither input is modified.
func (d *Dict[K, V]) Union(other *Dict[K, V], errorOnOverlap bool) (*Dict[K, V], error) {
	if errorOnOverlap {
		overlap := 0
		for p := other.om.Oldest(); p != nil; p = p.Next() {
			if d.Has(p.Key) {
				overlap++
			}
		}
		if overlap > 0 {
			return nil, fmt.Errorf("%w: %d keys in common when none were expected", ErrOverlappingKeys, overlap)
		}
	}
	out := NewDict[K, V]()
	for p := d.om.Oldest(); p != nil; p = p.Next() {
		out.om.Set(p.Key, p.Value)
	}
	for p := other.om.Oldest(); p != nil; p = p.Next() {
		out.om.Set(p.Key, p.Value)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Join
// ─────────────────────────────────────────────────────────────────────────────

// JoinMode selects the key set a [Join] produces rows for.
type JoinMode string

const (
	Inner JoinMode = "inner" // keys present in both dicts
	Outer JoinMode = "outer" // keys present in either dict
	Left  JoinMode = "left"  // the left dict's keys
	Right JoinMode = "right" // the right dict's keys
)

// Joined is one row of a [Join]: the key plus the value each side holds for
// it. HasLeft/HasRight distinguish "key absent on that side" from a present
// zero value.
type Joined[K comparable, V, W any] struct {
	Key      K
	Left     V
	HasLeft  bool
	Right    W
	HasRight bool
}

// Join matches the entries of two dicts by key and returns a lazy Seq of
// [Joined] rows. The key set follows mode: Inner is the intersection, Outer
// the union, Left and Right the respective side's keys. Rows come out in the
// driving side's insertion order (for Outer: left's keys, then right's keys
// not already seen). An unknown mode fails with [ErrInvalidJoinMode].
//
// Values are looked up when the result is traversed, so a Join sees
// modifications made to either dict before traversal.
func Join[K comparable, V, W any](left *Dict[K, V], right *Dict[K, W], mode JoinMode) (*Seq[Joined[K, V, W]], error) {
	switch mode {
	case Inner, Outer, Left, Right:
	default:
		return nil, fmt.Errorf("%w: %q (must be inner, outer, left, or right)", ErrInvalidJoinMode, string(mode))
	}
	return &Seq[Joined[K, V, W]]{src: func() (iter.Seq[Joined[K, V, W]], error) {
		return func(yield func(Joined[K, V, W]) bool) {
			emit := func(k K) bool {
				lv, lok := left.Get(k)
				rv, rok := right.Get(k)
				return yield(Joined[K, V, W]{Key: k, Left: lv, HasLeft: lok, Right: rv, HasRight: rok})
			}
			if mode != Right {
				for p := left.om.Oldest(); p != nil; p = p.Next() {
					if mode == Inner && !right.Has(p.Key) {
						continue
					}
					if !emit(p.Key) {
						return
					}
				}
			}
			if mode == Right || mode == Outer {
				for p := right.om.Oldest(); p != nil; p = p.Next() {
					if mode == Outer && left.Has(p.Key) {
						continue
					}
					if !emit(p.Key) {
						return
					}
				}
			}
		}, nil
	}}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion & debugging
// ─────────────────────────────────────────────────────────────────────────────

// ToMap returns the entries as a plain Go map (insertion order is lost).
func (d *Dict[K, V]) ToMap() map[K]V {
	out := make(map[K]V, d.om.Len())
	for p := d.om.Oldest(); p != nil; p = p.Next() {
		out[p.Key] = p.Value
	}
	return out
}

// ToJSON serialises the dict to a JSON object, preserving key order.
func (d *Dict[K, V]) ToJSON() ([]byte, error) {
	return json.Marshal(d.om)
}

// String returns a debugging representation in insertion order:
// "Dict({a: 1, b: 2})". It implements [fmt.Stringer]; the format is not
// meant to be parsed.
func (d *Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteString("Dict({")
	for p := d.om.Oldest(); p != nil; p = p.Next() {
		if b.Len() > len("Dict({") {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", p.Key, p.Value)
	}
	b.WriteString("})")
	return b.String()
}

// Dump prints the dict to stdout and returns it for chaining.
func (d *Dict[K, V]) Dump() *Dict[K, V] {
	fmt.Println(d.String())
	return d
}
