package scene

import (
	"github.com/vk/sceneimport/internal/sceneasset"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// Scene identifies the document to resolve: path is the scene document's
// own URL (possibly relative), resourceRoot is the base a relative path
// resolves against. Every other relative URL resolves against the URL of
// the document that contains it.
type Scene struct {
	path         sceneurl.Url
	resourceRoot sceneurl.Url
	assets       *sceneasset.Registry
}

// New returns a Scene for the document at path, relative to resourceRoot.
func New(path, resourceRoot sceneurl.Url) *Scene {
	return &Scene{
		path:         path,
		resourceRoot: resourceRoot,
		assets:       sceneasset.NewRegistry(),
	}
}

// Path returns the scene document's own URL.
func (s *Scene) Path() sceneurl.Url { return s.path }

// ResourceRoot returns the base URL a relative Path resolves against.
func (s *Scene) ResourceRoot() sceneurl.Url { return s.resourceRoot }

// Assets returns the registry Import populates as it discovers embedded
// resources. It is valid to inspect at any point, but is only complete
// once Import has returned.
func (s *Scene) Assets() *sceneasset.Registry { return s.assets }

// Close releases every asset's hold on its bundle's ZipHandle. Call it
// once the merged document and any resource reads it drove are done, so
// the last asset out of each zip bundle can drop the decompressed
// archive instead of holding it for the lifetime of the Scene.
func (s *Scene) Close() {
	s.assets.Close()
}
