package scalaps

import "iter"

// Traversable is the capability shared by every container in this package:
// producing a single forward traversal of its elements.
//
// [Seq] implements it with single-pass semantics — Traverse succeeds at most
// once and returns [ErrAlreadyConsumed] afterwards. [List], [FrozenList], and
// the views returned by [Dict.Keys], [Dict.Values], and [Dict.Items] hand out
// an independent cursor on every call and never fail.
//
// All package-level combinators ([Map], [GroupBy], [Fold], …) are defined
// against this interface, so they work uniformly across all four container
// types. Accept Traversable in your own functions to stay independent of the
// concrete container.
//
// Portability note: this maps to __iter__ in Python or Iterable in
// Java/TypeScript, minus the re-iteration guarantee.
type Traversable[T any] interface {
	// Traverse returns a forward cursor over the elements.
	Traverse() (iter.Seq[T], error)
}

var (
	_ Traversable[int] = (*Seq[int])(nil)
	_ Traversable[int] = (*List[int])(nil)
	_ Traversable[int] = (*FrozenList[int])(nil)
)
