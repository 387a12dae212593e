package sceneurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAbsolute(t *testing.T) {
	assert.True(t, New("http://host/a.yaml").IsAbsolute())
	assert.True(t, New("file:///a.yaml").IsAbsolute())
	assert.False(t, New("sub/a.yaml").IsAbsolute())
	assert.False(t, New("").IsAbsolute())
}

func TestHasHTTPScheme(t *testing.T) {
	assert.True(t, New("http://host/a.yaml").HasHTTPScheme())
	assert.True(t, New("https://host/a.yaml").HasHTTPScheme())
	assert.False(t, New("file:///a.yaml").HasHTTPScheme())
	assert.False(t, New("sub/a.yaml").HasHTTPScheme())
}

func TestResolve(t *testing.T) {
	t.Run("absolute self wins", func(t *testing.T) {
		u := New("http://other/x.yaml")
		got := u.Resolve(New("http://host/scene/a.yaml"))
		assert.Equal(t, u, got)
	})

	t.Run("relative resolves against base", func(t *testing.T) {
		got := New("sub/p.png").Resolve(New("http://host/scene/a.yaml"))
		assert.Equal(t, Url("http://host/scene/sub/p.png"), got)
	})

	t.Run("empty base leaves relative unresolved", func(t *testing.T) {
		u := New("sub/p.png")
		got := u.Resolve(Empty)
		assert.Equal(t, u, got)
	})

	t.Run("sibling ascension", func(t *testing.T) {
		got := New("../other/b.yaml").Resolve(New("http://host/scene/a.yaml"))
		assert.Equal(t, Url("http://host/other/b.yaml"), got)
	})
}

func TestBundledRootPath(t *testing.T) {
	got := New("http://host/pkg.zip").BundledRootPath()
	assert.Equal(t, Url("/pkg.yaml"), got)

	require.True(t, New("http://host/dir/pkg.zip").IsBundle())
	got = New("http://host/dir/pkg.zip").BundledRootPath()
	assert.Equal(t, Url("/pkg.yaml"), got)

	// Non-bundle URLs pass through unchanged.
	got = New("http://host/a.yaml").BundledRootPath()
	assert.Equal(t, Url("http://host/a.yaml"), got)
}

func TestBundledSceneURL(t *testing.T) {
	got := New("http://host/pkg.zip").BundledSceneURL()
	assert.Equal(t, Url("http://host/pkg//pkg.yaml"), got)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.False(t, New("x").IsEmpty())
}
