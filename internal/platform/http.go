package platform

import (
	"context"

	"resty.dev/v3"

	"github.com/vk/sceneimport/internal/ctxlog"
)

// HTTPPlatform performs StartURLRequest over resty.dev/v3, dispatching
// each fetch on its own goroutine so callers never block.
type HTTPPlatform struct {
	client *resty.Client
}

// NewHTTPPlatform returns an HTTPPlatform using a freshly constructed
// resty client.
func NewHTTPPlatform() *HTTPPlatform {
	return &HTTPPlatform{client: resty.New()}
}

// StartURLRequest implements Platform.
func (p *HTTPPlatform) StartURLRequest(ctx context.Context, url string, callback func(body []byte)) {
	logger := ctxlog.FromContext(ctx)
	go func() {
		resp, err := p.client.R().SetContext(ctx).Get(url)
		if err != nil {
			logger.Error("scene fetch failed", "url", url, "error", err)
			callback(nil)
			return
		}
		if resp.IsError() {
			logger.Error("scene fetch returned an error status", "url", url, "status", resp.StatusCode())
			callback(nil)
			return
		}
		callback(resp.Bytes())
	}()
}
