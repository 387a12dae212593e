package scenefetch

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sceneimport/internal/sceneasset"
	"github.com/vk/sceneimport/internal/scenedoc"
	"github.com/vk/sceneimport/internal/sceneurl"
)

// fakePlatform is a hand-written test double for platform.Platform: local
// reads come from files, HTTP fetches come from http, dispatched either
// inline or on a goroutine depending on async.
type fakePlatform struct {
	mu    sync.Mutex
	files map[string]string
	http  map[string]string
	async bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{files: map[string]string{}, http: map[string]string{}}
}

func (f *fakePlatform) StartURLRequest(ctx context.Context, url string, callback func(body []byte)) {
	deliver := func() {
		f.mu.Lock()
		body, ok := f.http[url]
		f.mu.Unlock()
		if !ok {
			callback(nil)
			return
		}
		callback([]byte(body))
	}
	if f.async {
		go deliver()
		return
	}
	deliver()
}

func (f *fakePlatform) BytesFromFile(path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("fake platform: no such file %q", path)
	}
	return []byte(data), nil
}

func (f *fakePlatform) StringFromFile(path string) (string, error) {
	b, err := f.BytesFromFile(path)
	return string(b), err
}

func (f *fakePlatform) ResolveAssetPath(path string) string { return path }

func TestRun_SingleLocalSceneNoImports(t *testing.T) {
	plat := newFakePlatform()
	plat.files["file:///scene.yaml"] = "cameras: {}\n"

	c := NewCoordinator(plat, sceneasset.NewRegistry())
	imports, err := c.Run(context.Background(), sceneurl.New("file:///scene.yaml"))
	require.NoError(t, err)
	require.Len(t, imports, 1)

	doc := imports[sceneurl.New("file:///scene.yaml")]
	require.True(t, scenedoc.IsMapping(doc))
	assert.NotNil(t, scenedoc.MapGet(doc, "cameras"))
}

func TestRun_FollowsImportsAndHandlesCycles(t *testing.T) {
	plat := newFakePlatform()
	plat.files["file:///root.yaml"] = "import: b.yaml\nx: 1\n"
	plat.files["file:///b.yaml"] = "import: root.yaml\ny: 2\n"

	c := NewCoordinator(plat, sceneasset.NewRegistry())
	imports, err := c.Run(context.Background(), sceneurl.New("file:///root.yaml"))
	require.NoError(t, err)

	require.Len(t, imports, 2)
	root := imports[sceneurl.New("file:///root.yaml")]
	b := imports[sceneurl.New("file:///b.yaml")]
	require.NotNil(t, root)
	require.NotNil(t, b)
	assert.Equal(t, "1", scenedoc.MapGet(root, "x").Value)
	assert.Equal(t, "2", scenedoc.MapGet(b, "y").Value)
}

func TestRun_ParseFailureIsSkippedNotFatal(t *testing.T) {
	plat := newFakePlatform()
	plat.files["file:///root.yaml"] = "import: bad.yaml\nx: 1\n"
	plat.files["file:///bad.yaml"] = "a:\n\tb: 1\n" // tabs are not valid YAML indentation

	c := NewCoordinator(plat, sceneasset.NewRegistry())
	imports, err := c.Run(context.Background(), sceneurl.New("file:///root.yaml"))
	require.NoError(t, err)

	require.Len(t, imports, 1)
	_, ok := imports[sceneurl.New("file:///bad.yaml")]
	assert.False(t, ok)
}

func TestRun_HTTPFetchAsync(t *testing.T) {
	plat := newFakePlatform()
	plat.async = true
	plat.http["http://host/root.yaml"] = "import: b.yaml\nx: 1\n"
	plat.http["http://host/b.yaml"] = "y: 2\n"

	c := NewCoordinator(plat, sceneasset.NewRegistry())
	imports, err := c.Run(context.Background(), sceneurl.New("http://host/root.yaml"))
	require.NoError(t, err)

	require.Len(t, imports, 2)
	assert.Equal(t, "2", scenedoc.MapGet(imports[sceneurl.New("http://host/b.yaml")], "y").Value)
}

func TestRun_HTTPFailureYieldsAbsentScene(t *testing.T) {
	plat := newFakePlatform()
	plat.http["http://host/root.yaml"] = "import: missing.yaml\nx: 1\n"
	// http/missing.yaml deliberately not registered: fake returns no data.

	c := NewCoordinator(plat, sceneasset.NewRegistry())
	imports, err := c.Run(context.Background(), sceneurl.New("http://host/root.yaml"))
	require.NoError(t, err)

	require.Len(t, imports, 1)
	_, ok := imports[sceneurl.New("http://host/missing.yaml")]
	assert.False(t, ok)
}

func TestRun_LocalZipBundle(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("pkg.yaml")
	require.NoError(t, err)
	_, err = w.Write([]byte("cameras: {}\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	plat := newFakePlatform()
	plat.files["file:///pkg.zip"] = buf.String()

	c := NewCoordinator(plat, sceneasset.NewRegistry())
	imports, err := c.Run(context.Background(), sceneurl.New("file:///pkg.zip"))
	require.NoError(t, err)
	require.Len(t, imports, 1)

	root := sceneurl.New("file:///pkg.zip").BundledSceneURL()
	doc := imports[root]
	require.NotNil(t, doc)
	assert.NotNil(t, scenedoc.MapGet(doc, "cameras"))
}

func TestRun_RegistersImportAssets(t *testing.T) {
	plat := newFakePlatform()
	plat.files["file:///root.yaml"] = "import: [b.yaml, c.yaml]\n"
	plat.files["file:///b.yaml"] = "x: 1\n"
	plat.files["file:///c.yaml"] = "x: 2\n"

	registry := sceneasset.NewRegistry()
	c := NewCoordinator(plat, registry)
	_, err := c.Run(context.Background(), sceneurl.New("file:///root.yaml"))
	require.NoError(t, err)

	_, ok := registry.Get(sceneurl.New("file:///b.yaml"))
	assert.True(t, ok)
	_, ok = registry.Get(sceneurl.New("file:///c.yaml"))
	assert.True(t, ok)
}
