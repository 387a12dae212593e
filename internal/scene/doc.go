// Package scene is the library's single entry point: given a Scene
// carrying a path and a resource root, Import fetches every
// scene document it transitively references, merges them into one
// document, and rewrites every embedded resource URL to an absolute
// form. The Scene's asset registry is populated as a side effect, ready
// for a downstream stage to read resource bytes from.
package scene
