package routes

import (
	"sort"
	"strings"

	"github.com/routegen-dev/routegen/internal/scanner"
)

// RoutePaths derives the set of route-path strings used for the generated
// path type. It walks the scanned tree independently of route-node
// construction: layout and loading files never contribute a path, an index
// file contributes its parent's accumulated path, 404 catch-alls are
// omitted (a not-found route is not a navigable typed path), and dynamic
// segments are rendered as a string placeholder. The result is
// deduplicated and sorted so repeated passes emit byte-identical output.
func RoutePaths(root *scanner.FileNode) []string {
	seen := make(map[string]struct{})
	collectPaths(root, "", seen)

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func collectPaths(d *scanner.FileNode, prefix string, seen map[string]struct{}) {
	dirNames := make(map[string]struct{})
	for _, c := range d.Children {
		if c.IsDir {
			dirNames[strings.ToLower(c.Name)] = struct{}{}
		}
	}

	for _, c := range d.Children {
		if c.IsDir {
			collectPaths(c, prefix+"/"+typeSegment(c.Name, false), seen)
			continue
		}
		if isLayout(c.Name) || isLoading(c.Name) || isNotFound(c.Name) {
			continue
		}
		if _, shadowed := dirNames[strings.ToLower(baseName(c.Name))]; shadowed {
			continue
		}

		if isIndex(c.Name) {
			if prefix == "" {
				seen["/"] = struct{}{}
			} else {
				seen[prefix] = struct{}{}
			}
			continue
		}
		seen[prefix+"/"+typeSegment(c.Name, true)] = struct{}{}
	}
}
