package platform

import (
	"fmt"
	"io"
	"net/url"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// LocalPlatform performs local reads and data-source path resolution
// through a billy.Filesystem, giving "local" a single abstraction whether
// it is backed by the real disk (osfs, the default) or an in-memory fixture
// (memfs, used in tests).
type LocalPlatform struct {
	fs billy.Filesystem
}

// NewLocalPlatform returns a LocalPlatform rooted at root on the real
// filesystem.
func NewLocalPlatform(root string) *LocalPlatform {
	return &LocalPlatform{fs: osfs.New(root)}
}

// NewLocalPlatformFS returns a LocalPlatform backed by an arbitrary
// billy.Filesystem, for tests.
func NewLocalPlatformFS(fs billy.Filesystem) *LocalPlatform {
	return &LocalPlatform{fs: fs}
}

// localPath strips a "file://" scheme from path, if present, so a
// resolved Url can be handed straight to BytesFromFile: billy's
// filesystem expects a path relative to its own root, not a URI.
func localPath(path string) string {
	u, err := url.Parse(path)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return path
	}
	if u.Path != "" {
		return u.Path
	}
	return path
}

// BytesFromFile implements Platform.
func (p *LocalPlatform) BytesFromFile(path string) ([]byte, error) {
	f, err := p.fs.Open(localPath(path))
	if err != nil {
		return nil, fmt.Errorf("platform: opening %q: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("platform: reading %q: %w", path, err)
	}
	return data, nil
}

// StringFromFile implements Platform.
func (p *LocalPlatform) StringFromFile(path string) (string, error) {
	data, err := p.BytesFromFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ResolveAssetPath implements Platform. The default behavior is the
// identity rewrite; platform-specific builds (e.g. a packaged asset
// bundle on a mobile target) would override this to map a relative
// source path into that platform's asset namespace.
func (p *LocalPlatform) ResolveAssetPath(path string) string {
	return path
}
