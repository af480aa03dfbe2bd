package doctidy

import (
	"path"
	"path/filepath"
	"strings"
)

// Repo describes the repository tree a run operates on. It is constructed
// once in cmd/ and passed to every component; treat it as immutable for the
// duration of a run.
type Repo struct {
	// Root is the absolute path of the repository root. All relative
	// computations resolve against it.
	Root string

	// SkipDirs are directory names excluded from every scan, wherever
	// they appear in the tree.
	SkipDirs map[string]bool

	// AllowedRootFiles are root-level files that are canonical as-is.
	AllowedRootFiles map[string]bool

	// AllowedPrefixes are directory prefixes (root-relative, slash
	// separated) under which documentation is already correctly placed.
	AllowedPrefixes []string

	// DocsDir is the canonical documentation directory, root-relative.
	DocsDir string

	// IndexFile is the only file permitted directly inside DocsDir.
	IndexFile string

	// TextSuffixes are the filename suffixes treated as text-bearing by
	// the link rewriter. Multi-part suffixes (".blade.php") are matched
	// against the whole filename, not just the final extension.
	TextSuffixes []string
}

// DefaultRepo returns the repository configuration for the given root.
func DefaultRepo(root string) *Repo {
	return &Repo{
		Root: root,
		SkipDirs: map[string]bool{
			"node_modules": true,
			"vendor":       true,
			"storage":      true,
			"public":       true,
			"bootstrap":    true,
			".git":         true,
			".idea":        true,
			".vscode":      true,
			"vendor-bin":   true,
		},
		AllowedRootFiles: map[string]bool{
			"README.md": true,
		},
		AllowedPrefixes: []string{
			"docs",
			"tests",
			"resources/markdown",
			".github",
			".kiro",
		},
		DocsDir:   "docs",
		IndexFile: "README.md",
		TextSuffixes: []string{
			".md", ".mdx",
			".php", ".blade.php",
			".js", ".ts", ".tsx",
			".json", ".yaml", ".yml", ".neon", ".xml",
			".html", ".css", ".scss",
			".txt",
		},
	}
}

// CandidateFile is a file discovered by a scan.
type CandidateFile struct {
	// Path is the absolute filesystem path.
	Path string

	// RelPath is the root-relative path in slash form, e.g. "docs/api/auth.md".
	RelPath string
}

// Skipped reports whether any component of the root-relative path is an
// excluded directory name.
func (r *Repo) Skipped(relPath string) bool {
	for _, part := range strings.Split(path.Clean(relPath), "/") {
		if r.SkipDirs[part] {
			return true
		}
	}
	return false
}

// Allowed reports whether a root-relative path is in a canonical location:
// either a whitelisted root-level file, or equal to / nested under one of
// the allowed directory prefixes.
func (r *Repo) Allowed(relPath string) bool {
	relPath = NormalizePath(relPath)
	if r.AllowedRootFiles[relPath] {
		return true
	}
	for _, prefix := range r.AllowedPrefixes {
		if relPath == prefix || strings.HasPrefix(relPath, prefix+"/") {
			return true
		}
	}
	return false
}

// TextFile reports whether the filename carries one of the recognized
// text-bearing suffixes.
func (r *Repo) TextFile(name string) bool {
	for _, suffix := range r.TextSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Abs converts a root-relative slash path to an absolute filesystem path.
func (r *Repo) Abs(relPath string) string {
	return filepath.Join(r.Root, filepath.FromSlash(relPath))
}

// Rel converts an absolute filesystem path to a root-relative slash path.
func (r *Repo) Rel(absPath string) (string, error) {
	rel, err := filepath.Rel(r.Root, absPath)
	if err != nil {
		return "", Errorf(EINVALID, "path %q is not under repository root %q", absPath, r.Root)
	}
	return filepath.ToSlash(rel), nil
}

// NormalizePath cleans a root-relative path: forward slashes, no leading "./".
func NormalizePath(relPath string) string {
	clean := path.Clean(filepath.ToSlash(relPath))
	return strings.TrimPrefix(clean, "./")
}
