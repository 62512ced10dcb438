package routes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/routegen-dev/routegen/internal/errors"
	"github.com/routegen-dev/routegen/internal/scanner"
)

// Builder converts a scanned pages tree into routes and import bindings.
// The builder itself is stateless; every Build call creates a fresh
// accumulator, so nothing can leak between generation passes.
type Builder struct{}

// NewBuilder creates a route builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build converts the tree rooted at root. The returned routes are ordered
// (index first, catch-all last among siblings) and the import bindings are
// in registration order, which is deterministic for a given tree.
func (b *Builder) Build(root *scanner.FileNode) (*Result, error) {
	st := &buildState{
		byRelPath:  make(map[string]*ImportBinding),
		identOwner: make(map[string]string),
	}

	node, err := st.dir(root, "")
	if err != nil {
		return nil, err
	}

	res := &Result{
		Imports:  st.imports,
		Warnings: st.warnings,
	}
	switch {
	case node == nil:
		// Empty pages tree.
	case node.Element == nil:
		// No root layout: the root node adds nothing, hoist its children.
		res.Routes = node.Children
	default:
		res.Routes = []*RouteNode{node}
	}
	return res, nil
}

// buildState is the per-pass accumulator threaded through the recursion.
type buildState struct {
	imports    []ImportBinding
	byRelPath  map[string]*ImportBinding
	identOwner map[string]string // ident -> relPath
	warnings   []string
}

// dir converts one directory node. inheritedLoading is the fallback
// identifier supplied by the nearest ancestor with a loading file.
// Returns nil for directories that contribute nothing (no layout, no
// surviving descendants).
func (st *buildState) dir(d *scanner.FileNode, inheritedLoading string) (*RouteNode, error) {
	layout, loading, rest := st.splitSpecial(d)

	node := &RouteNode{}
	if d.RelPath != "" {
		node.Path = segment(d.Name, false)
	}

	if layout != nil {
		ident, err := st.register(layout.RelPath, d.ParentPath, dirIdent(d.RelPath)+layoutSuffix, ImportStatic)
		if err != nil {
			return nil, err
		}
		node.Element = StaticRef{Ident: ident}
	}

	// A directory's own loading file overrides the inherited one for this
	// subtree only.
	fallback := inheritedLoading
	if loading != nil {
		ident, err := st.register(loading.RelPath, d.ParentPath, dirIdent(d.RelPath)+loadingSuffix, ImportStatic)
		if err != nil {
			return nil, err
		}
		fallback = ident
	}

	// Files that collide with a sibling directory name are shadowed: the
	// directory takes precedence, otherwise both would claim one path.
	dirNames := make(map[string]struct{})
	for _, c := range rest {
		if c.IsDir {
			dirNames[strings.ToLower(c.Name)] = struct{}{}
		}
	}

	topLevel := d.RelPath == ""
	for _, c := range rest {
		if c.IsDir {
			child, err := st.dir(c, fallback)
			if err != nil {
				return nil, err
			}
			if child != nil {
				node.Children = append(node.Children, child)
			}
			continue
		}

		if _, shadowed := dirNames[strings.ToLower(baseName(c.Name))]; shadowed {
			continue
		}

		child, err := st.file(c, topLevel, fallback)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	sortSiblings(node.Children)

	if node.Element == nil && len(node.Children) == 0 {
		return nil, nil
	}
	return node, nil
}

// file converts one page file into a route leaf. Files directly under the
// pages root are bound eagerly; everything deeper is bound lazily and
// wrapped in a suspense boundary.
func (st *buildState) file(f *scanner.FileNode, topLevel bool, fallback string) (*RouteNode, error) {
	var base, seg string
	switch {
	case isNotFound(f.Name):
		base = NotFoundIdent
		seg = "*"
	case isIndex(f.Name):
		base = indexIdent(f.ParentPath)
		seg = ""
	default:
		base = pascalCase(f.Name)
		seg = segment(f.Name, true)
	}

	kind := ImportLazy
	if topLevel {
		kind = ImportStatic
	}
	ident, err := st.register(f.RelPath, f.ParentPath, base, kind)
	if err != nil {
		return nil, err
	}

	node := &RouteNode{Path: seg}
	if topLevel {
		node.Element = StaticRef{Ident: ident}
	} else {
		node.Element = Suspense{Inner: LazyRef{Ident: ident}, FallbackIdent: fallback}
	}
	return node, nil
}

// splitSpecial extracts the directory's layout and loading files. At most
// one of each is honored; extras keep the first encountered and record a
// warning so iterative editing never hard-fails the generator.
func (st *buildState) splitSpecial(d *scanner.FileNode) (layout, loading *scanner.FileNode, rest []*scanner.FileNode) {
	for _, c := range d.Children {
		switch {
		case !c.IsDir && isLayout(c.Name):
			if layout != nil {
				st.warnf("%s: multiple layout files, using %s", d.RelPath, layout.Name)
				continue
			}
			layout = c
		case !c.IsDir && isLoading(c.Name):
			if loading != nil {
				st.warnf("%s: multiple loading files, using %s", d.RelPath, loading.Name)
				continue
			}
			loading = c
		default:
			rest = append(rest, c)
		}
	}
	return layout, loading, rest
}

// register records an import binding for relPath, returning its identifier.
// A file already registered in this pass keeps its identifier. Identifier
// collisions are resolved by prefixing ancestor directory names, nearest
// first; if every prefixed form is taken the pass fails loudly rather than
// silently overwriting an import.
func (st *buildState) register(relPath, parentPath, base string, kind ImportKind) (string, error) {
	if existing, ok := st.byRelPath[relPath]; ok {
		return existing.Ident, nil
	}

	candidates := append([]string{base}, prefixedCandidates(parentPath, base)...)
	for _, ident := range candidates {
		if _, taken := st.identOwner[ident]; taken {
			continue
		}
		st.identOwner[ident] = relPath
		binding := ImportBinding{RelPath: relPath, Ident: ident, Kind: kind}
		st.imports = append(st.imports, binding)
		st.byRelPath[relPath] = &st.imports[len(st.imports)-1]
		return ident, nil
	}

	return "", errors.New("R020").WithDetailf(
		"%q and %q both resolve to identifier %q", relPath, st.identOwner[base], base)
}

func prefixedCandidates(parentPath, base string) []string {
	prefixes := ancestorPrefixes(parentPath)
	out := make([]string, len(prefixes))
	for i, p := range prefixes {
		out[i] = p + base
	}
	return out
}

func (st *buildState) warnf(format string, args ...any) {
	st.warnings = append(st.warnings, fmt.Sprintf(format, args...))
}

// sortSiblings orders one sibling list: the index route (empty path) first,
// the catch-all wildcard last, everything else in encounter order. Routers
// resolve the first structural match, so the wildcard must never shadow a
// more specific sibling.
func sortSiblings(nodes []*RouteNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return siblingRank(nodes[i]) < siblingRank(nodes[j])
	})
}

func siblingRank(n *RouteNode) int {
	switch n.Path {
	case "":
		return 0
	case "*":
		return 2
	default:
		return 1
	}
}
