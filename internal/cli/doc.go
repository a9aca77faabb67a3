// Package cli defines the Cobra command tree for the findx CLI. Each file
// registers one top-level command with the root command. Commands only parse
// flags and format output; predicate construction and evaluation live in the
// find and matchers packages.
package cli
