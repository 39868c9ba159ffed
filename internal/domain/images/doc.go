// Package images defines how uploaded card images are named, staged and
// read back from an image store.
package images
