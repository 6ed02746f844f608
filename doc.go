// Package shimmer renders placeholder (skeleton) loading states for terminal
// views, with a shimmering gradient swept across every placeholder shape
// while asynchronous content resolves.
//
// A Container measures itself and its shine element, derives the start and
// stop offsets of the sweep, and drives one shared Driver value that every
// descendant Shape reads through the Scope it was mounted with. When the
// container's loader resolves, the container either swaps its whole subtree
// for the resolved node or, in replace mode, reveals each registered shape in
// place.
//
// Users import this single package for the complete public API: node
// construction, layout values, the Screen host, the EventLoop, and promises.
package shimmer
