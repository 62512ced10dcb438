// Package routes converts a scanned pages tree into a route tree, a set of
// import bindings, and a set of typed route paths.
//
// The conversion rules:
//
//   - Every directory becomes a route node. A layout file inside the
//     directory supplies the node's wrapping element; a loading file
//     supplies the suspense fallback for lazily loaded descendants,
//     nearest ancestor winning.
//   - Files named "index" render at their parent's path (empty segment).
//   - Bracketed names ([id].tsx) become dynamic segments (:id).
//   - A file or directory named "404" becomes the catch-all segment (*),
//     which always sorts last among its siblings.
//   - Files directly under the pages root are imported eagerly; files in
//     any subdirectory are imported lazily and wrapped in a suspense
//     boundary.
//   - A file shadowed by a same-named sibling directory is excluded.
//
// All accumulator state lives in a per-call value created inside Build, so
// repeated generation passes can never leak imports into each other.
package routes
