package routes

import (
	"path"
	"strings"
)

// Fixed identifiers and suffixes.
const (
	// RootIdent names the pages root directory itself.
	RootIdent = "Pages"

	// NotFoundIdent is the reserved identifier for 404 files.
	NotFoundIdent = "NotFound"

	layoutSuffix  = "Layout"
	loadingSuffix = "Loading"
)

// Reserved base names, matched case-insensitively. Kept as a fixed
// enumeration so every code path recognizes them identically.
const (
	nameIndex    = "index"
	nameLayout   = "layout"
	nameLoading  = "loading"
	nameNotFound = "404"
)

// baseName strips the extension from a file name.
func baseName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

func isIndex(name string) bool {
	return strings.EqualFold(baseName(name), nameIndex)
}

func isLayout(name string) bool {
	return strings.EqualFold(baseName(name), nameLayout)
}

func isLoading(name string) bool {
	return strings.EqualFold(baseName(name), nameLoading)
}

func isNotFound(name string) bool {
	return baseName(name) == nameNotFound
}

// segment converts a file or directory name into a URL path segment.
// Bracket syntax becomes a named parameter, "404" becomes the catch-all
// wildcard, and everything else is lowercased.
func segment(name string, isFile bool) string {
	if isFile {
		name = baseName(name)
	}
	if name == nameNotFound {
		return "*"
	}
	if inner, ok := bracketed(name); ok {
		return ":" + strings.ToLower(inner)
	}
	return strings.ToLower(name)
}

// typeSegment converts a name into its route-path-type form. Dynamic
// segments become a template-literal string placeholder: the resulting
// path type admits any value there, a deliberate precision loss.
func typeSegment(name string, isFile bool) string {
	if isFile {
		name = baseName(name)
	}
	if _, ok := bracketed(name); ok {
		return "${string}"
	}
	return strings.ToLower(name)
}

// bracketed reports whether name has the [param] form and returns the
// inner name.
func bracketed(name string) (string, bool) {
	if len(name) > 2 && strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		return name[1 : len(name)-1], true
	}
	return "", false
}

// pascalCase converts a file or directory name into a capitalized-word
// identifier: the extension and brackets are stripped, and each -/_
// delimited token is uppercased at the first letter and joined
// (e.g. "user-profile" -> "UserProfile").
func pascalCase(name string) string {
	name = baseName(name)
	if inner, ok := bracketed(name); ok {
		name = inner
	}

	var b strings.Builder
	for _, token := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		b.WriteString(strings.ToUpper(token[:1]))
		b.WriteString(token[1:])
	}

	ident := b.String()
	if ident == "" {
		return ident
	}
	// Identifiers cannot start with a digit.
	if ident[0] >= '0' && ident[0] <= '9' {
		ident = "P" + ident
	}
	return ident
}

// dirIdent returns the identifier stem for a directory. The pages root is
// special-cased to a fixed name rather than an empty derived one.
func dirIdent(relPath string) string {
	if relPath == "" {
		return RootIdent
	}
	segs := strings.Split(relPath, "/")
	return pascalCase(segs[len(segs)-1])
}

// indexIdent builds the identifier for an index file from its parent
// directory's path segments ("admin/index.tsx" -> "AdminIndex"), avoiding
// collisions between index files in different directories.
func indexIdent(parentPath string) string {
	if parentPath == "" {
		return "Index"
	}
	var b strings.Builder
	for _, seg := range strings.Split(parentPath, "/") {
		b.WriteString(pascalCase(seg))
	}
	b.WriteString("Index")
	return b.String()
}

// ancestorPrefixes returns identifier prefixes for collision avoidance,
// nearest ancestor first, each one extending the last
// ("a/b" -> ["B", "AB"]).
func ancestorPrefixes(parentPath string) []string {
	if parentPath == "" {
		return nil
	}
	segs := strings.Split(parentPath, "/")
	prefixes := make([]string, 0, len(segs))
	prefix := ""
	for i := len(segs) - 1; i >= 0; i-- {
		prefix = pascalCase(segs[i]) + prefix
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}
