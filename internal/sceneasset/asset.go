package sceneasset

// ByteReader reads the raw bytes backing a resolved URL when an Asset has
// no ZipHandle of its own (either because it never lived in a bundle, or
// because opening its bundle failed). Satisfied by platform.Platform.
type ByteReader interface {
	BytesFromFile(path string) ([]byte, error)
}

// Asset is a resource addressable by a resolved, absolute URL: a scene
// document, texture, font, or data source. name identifies it globally;
// path is the relative URL as written in the source document, used to
// look the asset up inside its ZipHandle (if any).
type Asset struct {
	name string
	path string
	zip  *ZipHandle
}

// Name returns the asset's resolved, absolute URL.
func (a *Asset) Name() string { return a.name }

// Path returns the relative URL as written in the source document.
func (a *Asset) Path() string { return a.path }

// ZipHandle returns the bundle this asset was drawn from, or nil if the
// asset does not live inside a bundle.
func (a *Asset) ZipHandle() *ZipHandle { return a.zip }

// ReadBytes returns the asset's contents: from its ZipHandle if it has
// one, otherwise via r against the asset's resolved name.
func (a *Asset) ReadBytes(r ByteReader) ([]byte, error) {
	if a.zip != nil {
		return a.zip.Read(a.path)
	}
	return r.BytesFromFile(a.name)
}

// ReadString is ReadBytes with the result decoded as text.
func (a *Asset) ReadString(r ByteReader) (string, error) {
	data, err := a.ReadBytes(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Release drops this asset's reference to its ZipHandle, if any. Callers
// that discard an Asset before the registry itself is discarded should
// call Release to let a bundle's last holder close it promptly.
func (a *Asset) Release() {
	if a.zip != nil {
		a.zip.Release()
		a.zip = nil
	}
}
