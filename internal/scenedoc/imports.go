package scenedoc

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/vk/sceneimport/internal/sceneasset"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// ResolvedImports reads doc's top-level "import" key and returns the
// resolved URL of each entry,
// in source order. A scalar import yields one URL; a sequence yields one
// per scalar element; any other shape (including a missing key) yields
// nil. Each resolved import is also registered in registry as an asset,
// matching the original's behavior of treating an import edge itself as
// an addressable resource.
func ResolvedImports(ctx context.Context, registry *sceneasset.Registry, doc *yaml.Node, base sceneurl.Url) []sceneurl.Url {
	imp := MapGet(doc, "import")
	if imp == nil {
		return nil
	}

	var raw []*yaml.Node
	switch {
	case IsScalar(imp):
		raw = []*yaml.Node{imp}
	case IsSequence(imp):
		for _, entry := range imp.Content {
			if IsScalar(entry) {
				raw = append(raw, entry)
			}
		}
	default:
		return nil
	}

	urls := make([]sceneurl.Url, 0, len(raw))
	for _, n := range raw {
		rel := sceneurl.New(n.Value)
		resolved := rel.Resolve(base)
		registry.CreateAsset(ctx, resolved, rel, base, nil)
		urls = append(urls, resolved)
	}
	return urls
}
