package doctidy

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// linkRe matches inline Markdown links and captures the href.
var linkRe = regexp.MustCompile(`\[[^\]]+\]\(([^)]+)\)`)

// skipSchemes are URI schemes the tools never validate.
var skipSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// ExtractHrefs returns the href of every inline Markdown link in content,
// in document order.
func ExtractHrefs(content string) []string {
	matches := linkRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	hrefs := make([]string, 0, len(matches))
	for _, m := range matches {
		hrefs = append(hrefs, m[1])
	}
	return hrefs
}

// IsMarkdownHref reports whether an href is a local link to a Markdown file,
// i.e. worth validating. External schemes, pure fragments, protocol-relative
// URLs, and non-Markdown targets are out of scope.
func IsMarkdownHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return false
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if skipSchemes[u.Scheme] {
		return false
	}
	return strings.HasSuffix(u.Path, ".md")
}

// ResolveHref resolves an href found in the file at root-relative path
// fromRel to the canonical root-relative path it targets. Absolute hrefs
// ("/docs/a.md") are rooted at the repository root, not the host
// filesystem. The second return value is false when the href is out of
// scope (empty, fragment-only, protocol-relative, external scheme,
// unparsable) or normalizes to a path outside the repository root.
// Existence of the target is the caller's concern.
func ResolveHref(fromRel, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if skipSchemes[u.Scheme] {
		return "", false
	}

	// url.Parse percent-decodes the path; decoding can surface stray
	// fragment or query characters, so strip them again.
	p := u.Path
	if i := strings.IndexByte(p, '#'); i >= 0 {
		p = p[:i]
	}
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "", false
	}

	var target string
	if path.IsAbs(p) {
		target = path.Clean(strings.TrimPrefix(p, "/"))
	} else {
		target = path.Join(path.Dir(NormalizePath(fromRel)), p)
	}

	if target == ".." || strings.HasPrefix(target, "../") {
		return "", false
	}
	return target, true
}
