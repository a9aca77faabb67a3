// Package platform wraps the OS-level symbolic link primitives findx needs:
// creating and reading links, and deciding whether a readlink failure only
// means "this entry is not a link". The classification differs per OS, so it
// lives in build-tagged files.
package platform
