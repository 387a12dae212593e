package scenefetch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v3"

	"github.com/vk/sceneimport/internal/ctxlog"
	"github.com/vk/sceneimport/internal/platform"
	"github.com/vk/sceneimport/internal/sceneasset"
	"github.com/vk/sceneimport/internal/scenedoc"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// MaxInFlight bounds the number of asynchronous (HTTP) fetches that may
// be outstanding at once. Local fetches run synchronously on the
// coordinating goroutine and never consume a slot.
const MaxInFlight = 4

// Coordinator drives the fetch-parse-enqueue loop that turns a scene's
// root URL into a fully populated Import Map. A Coordinator is used once,
// for a single Run call.
type Coordinator struct {
	platform platform.Platform
	registry *sceneasset.Registry
	sem      *semaphore.Weighted

	mu       sync.Mutex
	cond     *sync.Cond
	queue    []sceneurl.Url
	imports  map[sceneurl.Url]*yaml.Node
	inFlight int
}

// NewCoordinator returns a Coordinator that dispatches fetches through
// plat and registers every discovered asset in registry.
func NewCoordinator(plat platform.Platform, registry *sceneasset.Registry) *Coordinator {
	c := &Coordinator{
		platform: plat,
		registry: registry,
		sem:      semaphore.NewWeighted(MaxInFlight),
		imports:  make(map[sceneurl.Url]*yaml.Node),
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Run resolves root and every scene it transitively imports, returning
// the Import Map: resolved scene URL to parsed document tree. A scene
// that fails to fetch or fails to parse is logged and simply absent from
// the result; only a canceled context aborts the whole resolution early.
func (c *Coordinator) Run(ctx context.Context, root sceneurl.Url) (map[sceneurl.Url]*yaml.Node, error) {
	c.mu.Lock()
	c.queue = append(c.queue, root)
	c.mu.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.mu.Lock()
		for len(c.queue) == 0 && c.inFlight > 0 {
			c.cond.Wait()
		}
		if len(c.queue) == 0 {
			imports := c.snapshotLocked()
			c.mu.Unlock()
			return imports, nil
		}

		path := c.queue[len(c.queue)-1]
		c.queue = c.queue[:len(c.queue)-1]

		sPath := path
		var bundledRoot sceneurl.Url
		isZipped := path.IsBundle()
		if isZipped {
			bundledRoot = path.BundledRootPath()
			sPath = path.BundledSceneURL()
		}

		if _, seen := c.imports[sPath]; seen {
			c.mu.Unlock()
			continue
		}

		if path.HasHTTPScheme() {
			c.inFlight++
			c.mu.Unlock()
			if err := c.sem.Acquire(ctx, 1); err != nil {
				c.mu.Lock()
				c.inFlight--
				c.cond.Broadcast()
				c.mu.Unlock()
				return nil, err
			}
			c.dispatchHTTP(ctx, path, sPath, bundledRoot, isZipped)
			continue
		}

		c.mu.Unlock()
		c.dispatchLocal(ctx, path, sPath, bundledRoot, isZipped)
	}
}

// snapshotLocked returns a copy of the Import Map. Callers must hold c.mu.
func (c *Coordinator) snapshotLocked() map[sceneurl.Url]*yaml.Node {
	out := make(map[sceneurl.Url]*yaml.Node, len(c.imports))
	for k, v := range c.imports {
		out[k] = v
	}
	return out
}

// dispatchHTTP fetches path over HTTP and processes the result once it
// arrives. It assumes c.inFlight has already been incremented and a
// semaphore permit already acquired by the caller, and releases both
// once the callback runs.
func (c *Coordinator) dispatchHTTP(ctx context.Context, path, sPath, bundledRoot sceneurl.Url, isZipped bool) {
	logger := ctxlog.FromContext(ctx)

	c.platform.StartURLRequest(ctx, path.String(), func(body []byte) {
		defer c.sem.Release(1)

		c.mu.Lock()
		defer func() {
			c.inFlight--
			c.cond.Broadcast()
			c.mu.Unlock()
		}()

		if len(body) == 0 {
			logger.Error("scene fetch returned no data", "url", path.String())
			return
		}

		var zipBytes []byte
		if isZipped {
			zipBytes = body
		}
		asset := c.registry.CreateAsset(ctx, sPath, bundledRoot, sceneurl.Empty, zipBytes)

		text := string(body)
		if isZipped {
			read, err := asset.ReadString(c.platform)
			if err != nil {
				logger.Error("failed to read bundled scene", "url", sPath.String(), "error", err)
				return
			}
			text = read
		}

		c.processSceneLocked(ctx, sPath, text)
	})
}

// dispatchLocal handles a local scene synchronously. For a bundle it reads
// the archive bytes before taking the lock; then, under the lock, it
// registers the asset, reads the scene text through it, and mutates the
// Import Map and queue exactly like the HTTP path's callback does.
func (c *Coordinator) dispatchLocal(ctx context.Context, path, sPath, bundledRoot sceneurl.Url, isZipped bool) {
	logger := ctxlog.FromContext(ctx)

	var zipBytes []byte
	if isZipped {
		data, err := c.platform.BytesFromFile(path.String())
		if err != nil {
			logger.Error("failed to read local bundle", "path", path.String(), "error", err)
			return
		}
		zipBytes = data
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	asset := c.registry.CreateAsset(ctx, sPath, bundledRoot, sceneurl.Empty, zipBytes)
	text, err := asset.ReadString(c.platform)
	if err != nil {
		logger.Error("failed to read local scene", "path", sPath.String(), "error", err)
		return
	}

	c.processSceneLocked(ctx, sPath, text)
}

// processSceneLocked parses text, the scene document fetched from url,
// inserts it into the Import Map, and enqueues every scene it imports.
// Callers must hold c.mu.
func (c *Coordinator) processSceneLocked(ctx context.Context, url sceneurl.Url, text string) {
	logger := ctxlog.FromContext(ctx)

	if _, ok := c.imports[url]; ok {
		return
	}

	doc, err := scenedoc.Parse(text)
	if err != nil {
		logger.Error("failed to parse scene document", "url", url.String(), "error", err)
		return
	}

	c.imports[url] = doc
	for _, imp := range scenedoc.ResolvedImports(ctx, c.registry, doc, url) {
		c.queue = append(c.queue, imp)
	}
	c.cond.Broadcast()
}
