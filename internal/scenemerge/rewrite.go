package scenemerge

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/vk/sceneimport/internal/platform"
	"github.com/vk/sceneimport/internal/sceneasset"
	"github.com/vk/sceneimport/internal/scenedoc"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// rewriteURL resolves n's scalar value against base, registers the
// result as an asset, and replaces n in place with the resolved URL.
func rewriteURL(ctx context.Context, registry *sceneasset.Registry, n *yaml.Node, base sceneurl.Url) {
	rel := sceneurl.New(n.Value)
	resolved := rel.Resolve(base)
	registry.CreateAsset(ctx, resolved, rel, base, nil)
	scenedoc.SetScalar(n, resolved.String())
}

// rewriteSourceURL resolves n's scalar value against base and replaces
// it in place, without registering an asset: data sources are opened
// later by a different subsystem. A non-absolute result is additionally
// passed through the platform's asset-path rewrite.
func rewriteSourceURL(plat platform.Platform, n *yaml.Node, base sceneurl.Url) {
	rel := sceneurl.New(n.Value)
	resolved := rel.Resolve(base)
	if resolved.IsAbsolute() {
		scenedoc.SetScalar(n, resolved.String())
		return
	}
	scenedoc.SetScalar(n, plat.ResolveAssetPath(resolved.String()))
}

// ResolveSceneURLs rewrites every embedded resource URL in root — as it
// stands after merging cur at curURL's position in the import walk —
// against base, registering an asset for each except data-source URLs.
func ResolveSceneURLs(ctx context.Context, plat platform.Platform, registry *sceneasset.Registry, root *yaml.Node, base sceneurl.Url) {
	if !scenedoc.IsMapping(root) {
		return
	}

	textures := scenedoc.MapGet(root, "textures")
	if scenedoc.IsMapping(textures) {
		for _, entry := range scenedoc.MapEntries(textures) {
			if !scenedoc.IsMapping(entry.Value) {
				continue
			}
			if url := scenedoc.MapGet(entry.Value, "url"); scenedoc.IsPotentialURL(url) {
				rewriteURL(ctx, registry, url, base)
			}
		}
	}

	if styles := scenedoc.MapGet(root, "styles"); scenedoc.IsMapping(styles) {
		for _, entry := range scenedoc.MapEntries(styles) {
			style := entry.Value
			if !scenedoc.IsMapping(style) {
				continue
			}

			if texture := scenedoc.MapGet(style, "texture"); scenedoc.IsTextureURL(texture, textures) {
				rewriteURL(ctx, registry, texture, base)
			}

			if material := scenedoc.MapGet(style, "material"); scenedoc.IsMapping(material) {
				for _, prop := range []string{"emission", "ambient", "diffuse", "specular", "normal"} {
					propNode := scenedoc.MapGet(material, prop)
					if !scenedoc.IsMapping(propNode) {
						continue
					}
					if texture := scenedoc.MapGet(propNode, "texture"); scenedoc.IsTextureURL(texture, textures) {
						rewriteURL(ctx, registry, texture, base)
					}
				}
			}

			if shaders := scenedoc.MapGet(style, "shaders"); scenedoc.IsMapping(shaders) {
				if uniforms := scenedoc.MapGet(shaders, "uniforms"); scenedoc.IsMapping(uniforms) {
					for _, u := range scenedoc.MapEntries(uniforms) {
						switch {
						case scenedoc.IsTextureURL(u.Value, textures):
							rewriteURL(ctx, registry, u.Value, base)
						case scenedoc.IsSequence(u.Value):
							for _, elem := range u.Value.Content {
								if scenedoc.IsTextureURL(elem, textures) {
									rewriteURL(ctx, registry, elem, base)
								}
							}
						}
					}
				}
			}
		}
	}

	if sources := scenedoc.MapGet(root, "sources"); scenedoc.IsMapping(sources) {
		for _, entry := range scenedoc.MapEntries(sources) {
			if !scenedoc.IsMapping(entry.Value) {
				continue
			}
			if url := scenedoc.MapGet(entry.Value, "url"); scenedoc.IsPotentialURL(url) {
				rewriteSourceURL(plat, url, base)
			}
		}
	}

	if fonts := scenedoc.MapGet(root, "fonts"); scenedoc.IsMapping(fonts) {
		for _, entry := range scenedoc.MapEntries(fonts) {
			switch {
			case scenedoc.IsMapping(entry.Value):
				if url := scenedoc.MapGet(entry.Value, "url"); scenedoc.IsPotentialURL(url) {
					rewriteURL(ctx, registry, url, base)
				}
			case scenedoc.IsSequence(entry.Value):
				for _, fontNode := range entry.Value.Content {
					if !scenedoc.IsMapping(fontNode) {
						continue
					}
					if url := scenedoc.MapGet(fontNode, "url"); scenedoc.IsPotentialURL(url) {
						rewriteURL(ctx, registry, url, base)
					}
				}
			}
		}
	}
}
