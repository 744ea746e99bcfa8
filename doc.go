// Package scalaps provides Scala-inspired collection pipelines for Go:
// a lazy single-pass sequence plus eager list and dict containers sharing
// one fluent, chainable combinator surface.
//
// # Overview
//
// The central type is [Seq][T], a lazy wrapper around any element source.
// Transformations are free — they build up a pipeline without touching an
// element — and a terminal operation runs the whole pipeline in one pass:
//
//	doubled, err := scalaps.SeqOf(1, 2, 3, 4).
//	    Filter(func(n int) bool { return n > 1 }).
//	    Take(2).
//	    ToList() // List([2 3])
//
// [List] and [FrozenList] hold realized, reusable sequences; [Dict] is an
// insertion-ordered associative container with lazy key/value/item views and
// grouping, union, and join operations. All of them share the [Traversable]
// capability, so every package-level combinator works on every container.
//
// # Single-pass sequences
//
// A Seq wraps a source that may only be walked once (a generator, a
// network stream, another pipeline). Requesting a second traversal fails
// with [ErrAlreadyConsumed] rather than silently yielding nothing:
//
//	s := scalaps.SeqOf(1, 2, 3)
//	_, _ = s.ToList()
//	_, err := s.Count() // err is ErrAlreadyConsumed
//
// Materialize with ToList or ToFrozenList when a result must be traversed
// more than once.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type, or need comparable/ordered
// constraints, are package-level functions designed to compose with the
// method-chaining calls:
//
//	// Method-based (returns Seq[any]):
//	s.Map(func(n int) any { return n * 2 })
//
//	// Package-level (returns Seq[string], fully typed):
//	scalaps.Map(s, strconv.Itoa)
//
// Package-level functions: [Map], [FlatMap], [Fold], [Reduce], [Sum],
// [Min], [Max], [Count], [ForEach], [Sort], [SortBy], [Distinct],
// [DistinctBy], [GroupBy], [KeyBy], [AggregateBy], [FoldBy], [ReduceBy],
// [ValueCounts], [ToList], [ToFrozenList], [ToDict], [Chain], [Apply],
// [Enumerate], [Zip], [MkString], [MapValues], [Join].
//
// # Projections
//
// Combinators take ordinary Go functions. For struct-field and positional
// access, [Field] and [At] build getters from a field path or an index, and
// [Resolve] accepts the fully polymorphic function-or-field-or-index form:
//
//	byScore, err := scalaps.SortBy(posts, scalaps.Field[Post, int]("Score"))
//	second := scalaps.At[[]string, string](1)
//
// # Errors
//
// Contract violations surface as sentinel errors ([ErrAlreadyConsumed],
// [ErrDuplicateKey], [ErrOverlappingKeys], …) wrapped with detail; test with
// errors.Is. Nothing is retried or recovered internally, and no operation
// returns a partial result alongside an error.
//
// # Portability
//
// The API mirrors Scala's collection library (map/filter/groupBy/foldLeft)
// and translates directly to other languages:
//
//   - Scala: Seq/List/Map combinator chains
//   - Python: generators plus itertools, or the scalaps package
//   - Rust: Iterator adapter chains
package scalaps
