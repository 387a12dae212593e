package sceneurl

import (
	"net/url"
	"path"
	"strings"
)

// Url is an immutable, byte-wise-comparable URL. The zero value is the
// empty Url, used by the rest of the resolver to mean "no base".
type Url string

// Empty is the zero Url, used as the sentinel "no base" value.
const Empty Url = ""

// New wraps a raw string as a Url. It performs no validation: an
// unparsable string simply behaves as a non-absolute, schemeless Url.
func New(s string) Url {
	return Url(s)
}

// String returns the underlying string.
func (u Url) String() string {
	return string(u)
}

// IsEmpty reports whether u is the zero Url.
func (u Url) IsEmpty() bool {
	return u == Empty
}

func (u Url) parse() (*url.URL, bool) {
	if u.IsEmpty() {
		return nil, false
	}
	p, err := url.Parse(string(u))
	if err != nil {
		return nil, false
	}
	return p, true
}

// Scheme returns the URL's scheme, or the empty string if u has none or
// does not parse.
func (u Url) Scheme() string {
	p, ok := u.parse()
	if !ok {
		return ""
	}
	return p.Scheme
}

// IsAbsolute reports whether u is an absolute URL reference.
func (u Url) IsAbsolute() bool {
	p, ok := u.parse()
	return ok && p.IsAbs()
}

// HasHTTPScheme reports whether u's scheme is http or https.
func (u Url) HasHTTPScheme() bool {
	switch u.Scheme() {
	case "http", "https":
		return true
	default:
		return false
	}
}

// Resolve produces the RFC 3986 reference resolution of u against base.
// If u is already absolute, or base is empty, u is returned unchanged.
func (u Url) Resolve(base Url) Url {
	if u.IsAbsolute() || base.IsEmpty() {
		return u
	}
	baseParsed, ok := base.parse()
	if !ok {
		return u
	}
	ref, ok := u.parse()
	if !ok {
		return u
	}
	return Url(baseParsed.ResolveReference(ref).String())
}

const zipExt = ".zip"
const yamlExt = ".yaml"

// IsBundle reports whether u names a zip-bundle scene (a URL ending in
// ".zip"; the scheme is not checked).
func (u Url) IsBundle() bool {
	return strings.HasSuffix(string(u), zipExt)
}

// BundledRootPath computes the relative path, inside the archive named by
// u, of the bundle's root scene document: "/" + the archive's filename
// stem + ".yaml". u must satisfy IsBundle; otherwise u is returned
// unchanged.
//
// This deliberately does not replicate the original implementation's
// rfind("/")-based derivation, which breaks when the archive URL has no
// path separator; the root-inside-bundle path is instead defined
// directly from the archive's filename stem.
func (u Url) BundledRootPath() Url {
	if !u.IsBundle() {
		return u
	}
	base := path.Base(string(u))
	stem := strings.TrimSuffix(base, zipExt)
	return Url("/" + stem + yamlExt)
}

// BundledSceneURL computes the synthetic URL used as the import-map key
// for a bundle's root scene: u with its ".zip" suffix replaced by
// "/" + BundledRootPath(u). This mirrors the original source's string
// surgery faithfully, including the doubled slash that results from
// BundledRootPath's own leading slash. Besides the import-map key, the
// value is the root scene's asset name and the base its relative
// references resolve against, so those URLs carry the doubled slash too.
func (u Url) BundledSceneURL() Url {
	if !u.IsBundle() {
		return u
	}
	trimmed := strings.TrimSuffix(string(u), zipExt)
	return Url(trimmed + "/" + u.BundledRootPath().String())
}
