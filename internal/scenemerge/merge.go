package scenemerge

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/vk/sceneimport/internal/ctxlog"
	"github.com/vk/sceneimport/internal/platform"
	"github.com/vk/sceneimport/internal/sceneasset"
	"github.com/vk/sceneimport/internal/scenedoc"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// variant classifies a node the way merge_map_fields' "destination type"
// dispatch does: null (including an absent node) is its own variant, and
// anything that isn't a plain scalar/sequence/mapping falls into "other".
// When source and target share either of those two variants, the merge
// leaves the target untouched.
type variant int

const (
	variantOther variant = iota
	variantNull
	variantScalar
	variantSequence
	variantMapping
)

func variantOf(n *yaml.Node) variant {
	switch {
	case scenedoc.IsNull(n):
		return variantNull
	case n.Kind == yaml.ScalarNode:
		return variantScalar
	case n.Kind == yaml.SequenceNode:
		return variantSequence
	case n.Kind == yaml.MappingNode:
		return variantMapping
	default:
		return variantOther
	}
}

// MergeMapFields deep-merges source into target field by field: an
// absent key is assigned by reference; a
// type mismatch is logged and overwritten (a null source over a non-null
// field counts as a mismatch); scalars and sequences replace outright;
// mappings recurse; a null source over a null field leaves it alone.
func MergeMapFields(ctx context.Context, target, source *yaml.Node) {
	if !scenedoc.IsMapping(target) || !scenedoc.IsMapping(source) {
		return
	}
	logger := ctxlog.FromContext(ctx)

	for _, entry := range scenedoc.MapEntries(source) {
		key := entry.Key.Value
		src := entry.Value
		existing := scenedoc.MapGet(target, key)

		if existing == nil {
			scenedoc.MapSet(target, key, src)
			continue
		}

		srcVariant := variantOf(src)
		if srcVariant != variantOf(existing) {
			logger.Error("scene merge: field type mismatch, overwriting", "key", key)
			scenedoc.MapSet(target, key, src)
			continue
		}

		switch srcVariant {
		case variantScalar, variantSequence:
			scenedoc.MapSet(target, key, src)
		case variantMapping:
			MergeMapFields(ctx, existing, src)
		default:
			// null or other: leave target's field as it was.
		}
	}
}

// ImportScenesRecursive performs a post-order depth-first walk of the
// import DAG rooted at curURL,
// merging each visited document into root in turn and rewriting its
// embedded resource URLs. stack carries the set of URLs on the current
// path, for cycle detection; the top-level call should pass an empty
// stack.
//
// A cycle is logged and that branch is simply not merged again — cycles
// are possible in user-authored scenes and must not abort the load.
func ImportScenesRecursive(
	ctx context.Context,
	plat platform.Platform,
	registry *sceneasset.Registry,
	imports map[sceneurl.Url]*yaml.Node,
	root *yaml.Node,
	curURL sceneurl.Url,
	stack map[sceneurl.Url]bool,
) {
	logger := ctxlog.FromContext(ctx)

	// A bundle's root scene is stored in the Import Map under its
	// in-bundle scene URL, not under the archive URL that names it.
	if curURL.IsBundle() {
		curURL = curURL.BundledSceneURL()
	}

	if stack[curURL] {
		logger.Error("scene merge: import cycle detected, skipping", "url", curURL.String())
		return
	}
	stack[curURL] = true
	defer delete(stack, curURL)

	cur, ok := imports[curURL]
	if !ok || scenedoc.IsNull(cur) || !scenedoc.IsMapping(cur) {
		return
	}

	children := scenedoc.ResolvedImports(ctx, registry, cur, curURL)
	scenedoc.MapDelete(cur, "import")

	for _, child := range children {
		ImportScenesRecursive(ctx, plat, registry, imports, root, child, stack)
	}

	MergeMapFields(ctx, root, cur)
	ResolveSceneURLs(ctx, plat, registry, root, curURL)
}
