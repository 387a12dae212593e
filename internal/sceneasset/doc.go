// Package sceneasset owns the Asset and ZipHandle records: an Asset
// Registry keyed by resolved URL, and a reference-counted ZipHandle
// shared by every Asset drawn from the same zip bundle.
package sceneasset
