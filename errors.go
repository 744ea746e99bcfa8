package scalaps

import "errors"

// Sentinel errors returned by sequence, list, and dict operations.
var (
	// ErrUnsupportedProjection is returned by Resolve when a projection value
	// is neither a function, a field-name string, nor an integer index.
	ErrUnsupportedProjection = errors.New("scalaps: unsupported projection")

	// ErrAlreadyConsumed is returned when a Seq is traversed (or reversed)
	// after its single permitted traversal has been requested.
	ErrAlreadyConsumed = errors.New("scalaps: sequence already consumed")

	// ErrNotReversible is returned by Seq.Reverse when the underlying source
	// does not support backward traversal. Materialize with ToList first.
	ErrNotReversible = errors.New("scalaps: source is not reversible")

	// ErrDuplicateKey is returned by KeyBy when the key function produces the
	// same key for two elements.
	ErrDuplicateKey = errors.New("scalaps: duplicate key")

	// ErrOverlappingKeys is returned by Dict.Union when overlap checking is
	// requested and both dicts share at least one key.
	ErrOverlappingKeys = errors.New("scalaps: overlapping keys")

	// ErrInvalidJoinMode is returned by Join for a mode outside
	// Inner, Outer, Left, Right.
	ErrInvalidJoinMode = errors.New("scalaps: invalid join mode")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the input is empty.
	ErrEmptyCollection = errors.New("scalaps: operation on empty collection")
)
