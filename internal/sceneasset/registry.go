package sceneasset

import (
	"context"
	"sync"

	"github.com/vk/sceneimport/internal/ctxlog"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// Registry owns every Asset discovered while resolving a scene, keyed by
// resolved URL. It is safe for concurrent use: CreateAsset is the single
// mutating operation, guarded by a mutex, so that every mutation of the
// asset registry is serialized the same way as the fetch queue and
// import map.
type Registry struct {
	mu     sync.Mutex
	assets map[sceneurl.Url]*Asset
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{assets: make(map[sceneurl.Url]*Asset)}
}

// Get returns the asset registered under resolved, if any.
func (r *Registry) Get(resolved sceneurl.Url) (*Asset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[resolved]
	return a, ok
}

// All returns a snapshot of every registered asset, keyed by resolved URL.
func (r *Registry) All() map[sceneurl.Url]*Asset {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[sceneurl.Url]*Asset, len(r.assets))
	for k, v := range r.assets {
		out[k] = v
	}
	return out
}

// CreateAsset registers the asset named resolved, or returns the
// existing entry if one is already registered. Which of four cases
// applies is decided by base and relative:
//
//  1. resolved already present: return the existing entry unchanged
//     (idempotent).
//  2. base is empty: this is a root asset. If zipBytes is non-empty, a
//     fresh ZipHandle is opened over it and attached.
//  3. relative is absolute: this asset escapes its parent bundle; no
//     ZipHandle is attached.
//  4. otherwise: this asset lives inside the same bundle as base; the
//     parent's ZipHandle reference is shared (retained), if it has one.
//
// A failure to open an archive is logged and the asset is left without a
// ZipHandle, so reads for it fall back to the platform.
func (r *Registry) CreateAsset(ctx context.Context, resolved, relative, base sceneurl.Url, zipBytes []byte) *Asset {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.assets[resolved]; ok {
		return existing
	}

	var asset *Asset
	switch {
	case base.IsEmpty():
		asset = &Asset{name: resolved.String(), path: relative.String()}
		if len(zipBytes) > 0 {
			zh, err := newZipHandle(zipBytes)
			if err != nil {
				logger.Error("failed to open zip bundle, asset will read via platform", "url", resolved.String(), "error", err)
			} else {
				asset.zip = zh
			}
		}

	case relative.IsAbsolute():
		asset = &Asset{name: resolved.String(), path: relative.String()}

	default:
		asset = &Asset{name: resolved.String(), path: relative.String()}
		if parent, ok := r.assets[base]; ok && parent.zip != nil {
			asset.zip = parent.zip.Retain()
		}
	}

	r.assets[resolved] = asset
	return asset
}

// Close releases every registered asset's hold on its ZipHandle, letting
// the last asset out of each bundle drop the decompressed archive. The
// registry remains otherwise usable afterward, but every asset's reads
// now go through the platform rather than its (now nil) ZipHandle.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.assets {
		a.Release()
	}
}
