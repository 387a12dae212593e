// Package sceneurl implements the Url value used throughout the scene
// import resolver: an immutable string with derived scheme/absoluteness
// predicates and RFC 3986-style reference resolution against a base.
//
// Url is a plain string type so that values compare and hash by their
// normalized string form, which is exactly the identity needed for
// map keys in the import map and asset registry.
package sceneurl
