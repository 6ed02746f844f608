package shimmer

import "errors"

var (
	// ErrShapeDetached is returned when a shape is revealed after it left the tree.
	ErrShapeDetached = errors.New("shimmer: placeholder shape is not mounted")

	// ErrNotMounted is returned by operations that need a mounted node.
	ErrNotMounted = errors.New("shimmer: node is not mounted")

	// ErrRevealPanicked wraps a panic recovered while revealing a shape.
	ErrRevealPanicked = errors.New("shimmer: reveal panicked")

	// ErrPromiseCancelled is the rejection reason of a promise whose producer
	// context was cancelled before it produced a value.
	ErrPromiseCancelled = errors.New("shimmer: promise producer cancelled")
)
