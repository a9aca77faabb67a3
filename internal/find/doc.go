// Package find evaluates a single matcher against an explicit list of paths
// and prints the ones that match. It does not descend into directories: the
// caller supplies every path to test.
package find
