package platform

import "context"

// Composite wires an HTTPPlatform and a LocalPlatform into the single
// Platform the resolver needs.
type Composite struct {
	HTTP  *HTTPPlatform
	Local *LocalPlatform
}

// New returns the default Platform: HTTP fetches over resty, local reads
// rooted at localRoot via go-billy's osfs.
func New(localRoot string) *Composite {
	return &Composite{
		HTTP:  NewHTTPPlatform(),
		Local: NewLocalPlatform(localRoot),
	}
}

// StartURLRequest implements Platform.
func (c *Composite) StartURLRequest(ctx context.Context, url string, callback func(body []byte)) {
	c.HTTP.StartURLRequest(ctx, url, callback)
}

// BytesFromFile implements Platform.
func (c *Composite) BytesFromFile(path string) ([]byte, error) {
	return c.Local.BytesFromFile(path)
}

// StringFromFile implements Platform.
func (c *Composite) StringFromFile(path string) (string, error) {
	return c.Local.StringFromFile(path)
}

// ResolveAssetPath implements Platform.
func (c *Composite) ResolveAssetPath(path string) string {
	return c.Local.ResolveAssetPath(path)
}
