// Package platform implements the host capabilities the scene import
// resolver treats as an external collaborator: asynchronous HTTP fetch,
// synchronous local reads, and a hook for platform-specific
// data-source path rewriting.
//
// HTTPPlatform is backed by resty.dev/v3; LocalPlatform is backed by
// github.com/go-git/go-billy/v5, giving local reads a single filesystem
// abstraction regardless of whether they ultimately come from disk, an
// in-memory fixture (billy/memfs, used in tests), or another billy
// backend. Composite wires the two together into the single Platform a
// Coordinator needs.
package platform
