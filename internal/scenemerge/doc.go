// Package scenemerge implements the Merger / URL Rewriter: a
// post-order walk of the Import Map that deep-merges every
// imported document into a single root document and, at each step,
// rewrites the scalars that name embedded resources into resolved,
// registered asset URLs.
package scenemerge
