// Package doctidy keeps a repository's documentation tree self-consistent.
// It relocates stray Markdown files into a canonical docs/ folder layout
// chosen by filename keywords, rewrites relative links that pointed at
// moved files, and verifies that local Markdown cross-references resolve
// to existing files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., fs/, classify/).
package doctidy
