package scene

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/sceneimport/internal/platform"
	"github.com/vk/sceneimport/internal/scenefetch"
	"github.com/vk/sceneimport/internal/scenemerge"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// Import performs the full fetch-and-merge pipeline for s: the Fetch
// Coordinator transitively resolves every scene document s's root
// imports, and the Merger / URL Rewriter folds them into a single
// document in deterministic, "current document and later imports win"
// order. s.Assets() is populated as a side effect.
//
// A nil Scene or Platform is a programmer error; Import reports it
// rather than dereferencing either.
func Import(ctx context.Context, s *Scene, plat platform.Platform) (*yaml.Node, error) {
	if s == nil || plat == nil {
		return nil, fmt.Errorf("scene: Import called with a nil Scene or Platform")
	}

	rootScenePath := s.path.Resolve(s.resourceRoot)

	coordinator := scenefetch.NewCoordinator(plat, s.assets)
	imports, err := coordinator.Run(ctx, rootScenePath)
	if err != nil {
		return nil, fmt.Errorf("scene: fetching imports: %w", err)
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	scenemerge.ImportScenesRecursive(ctx, plat, s.assets, imports, root, rootScenePath, map[sceneurl.Url]bool{})

	return root, nil
}
