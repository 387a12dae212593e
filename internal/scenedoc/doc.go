// Package scenedoc provides node-level helpers over gopkg.in/yaml.v3's
// *yaml.Node tree: mapping lookup/set/delete, variant classification, and
// the "potential URL" / "texture URL" scalar classification used to
// decide which scalars get rewritten into asset URLs.
//
// A *yaml.Node already gives us a "variant {null, scalar, sequence,
// mapping}" tree, plus in-place-mutable scalar leaves and tentative
// bool/number decoding (via Node.Decode) — so rather than define a
// parallel Document type, this package operates directly on *yaml.Node.
package scenedoc
