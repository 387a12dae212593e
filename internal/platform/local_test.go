package platform

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPlatform_BytesFromFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "scene/a.yaml", []byte("x: 1"), 0o644))

	p := NewLocalPlatformFS(fs)

	got, err := p.BytesFromFile("scene/a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "x: 1", string(got))

	str, err := p.StringFromFile("scene/a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "x: 1", str)
}

func TestLocalPlatform_BytesFromFile_StripsFileScheme(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "scene/a.yaml", []byte("x: 1"), 0o644))

	p := NewLocalPlatformFS(fs)

	got, err := p.BytesFromFile("file:///scene/a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "x: 1", string(got))
}

func TestLocalPlatform_MissingFile(t *testing.T) {
	p := NewLocalPlatformFS(memfs.New())

	_, err := p.BytesFromFile("missing.yaml")
	assert.Error(t, err)
}

func TestLocalPlatform_ResolveAssetPath(t *testing.T) {
	p := NewLocalPlatformFS(memfs.New())
	assert.Equal(t, "sources/world.mbtiles", p.ResolveAssetPath("sources/world.mbtiles"))
}
