package platform

import "context"

// Platform is the set of host capabilities the scene import resolver
// requires from its environment.
type Platform interface {
	// StartURLRequest initiates an asynchronous fetch of url. callback is
	// invoked exactly once with the response body, or a nil/empty slice
	// on failure. It never blocks the caller.
	StartURLRequest(ctx context.Context, url string, callback func(body []byte))

	// BytesFromFile synchronously reads a local resource. An error
	// return is treated by callers exactly like an empty buffer: the
	// resource is simply missing from the result.
	BytesFromFile(path string) ([]byte, error)

	// StringFromFile is BytesFromFile with the result decoded as text.
	StringFromFile(path string) (string, error)

	// ResolveAssetPath applies a platform-specific rewrite to a
	// non-absolute data-source path.
	ResolveAssetPath(path string) string
}
