// Package layout implements the small box model used to place placeholder
// trees on a cell grid.
//
// It supports row/column stacking, padding, margin, gap, fixed and percentage
// dimensions, absolute positioning relative to the parent's content box, and
// natural (content-based) sizing. Types are re-exported through the root
// shimmer package for public consumption.
//
// The main entry points are [Arrange], which assigns absolute [Rect]s to a
// list of boxes, and [Extent], which reports the natural size of a stack.
package layout
