// Package emit renders build results into source text. The builder hands
// over a structured route tree and import bindings; nothing in here decides
// routing semantics, it only serializes them deterministically.
package emit

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/routegen-dev/routegen/internal/errors"
	"github.com/routegen-dev/routegen/internal/routes"
)

// header is the first line of every generated file.
const header = "// Code generated by routegen. DO NOT EDIT."

// defaultFallback is the built-in suspense placeholder used when no
// ancestor supplies a loading component.
const defaultFallback = "<div>Loading...</div>"

// Options locates the generated module relative to the pages tree so
// import specifiers resolve.
type Options struct {
	// PagesDir is the pages root directory.
	PagesDir string

	// OutFile is the routes module output path. Import specifiers are
	// computed relative to its directory.
	OutFile string
}

// Routes renders the routes module: import lines for every binding and a
// default-exported ordered route list. Output is byte-identical for
// identical input.
func Routes(res *routes.Result, opts Options) ([]byte, error) {
	var b strings.Builder

	b.WriteString(header + "\n\n")
	b.WriteString(`import React, { Suspense, lazy } from "react";` + "\n")
	b.WriteString(`import type { RouteObject } from "react-router-dom";` + "\n")

	static, lazyBindings := splitImports(res.Imports)
	if len(static) > 0 {
		b.WriteString("\n")
		for _, imp := range static {
			fmt.Fprintf(&b, "import %s from %q;\n", imp.Ident, specifier(imp.RelPath, opts))
		}
	}
	if len(lazyBindings) > 0 {
		b.WriteString("\n")
		for _, imp := range lazyBindings {
			fmt.Fprintf(&b, "const %s = lazy(() => import(%q));\n", imp.Ident, specifier(imp.RelPath, opts))
		}
	}

	b.WriteString("\nconst routes: RouteObject[] = [\n")
	for _, node := range res.Routes {
		if err := writeRoute(&b, node, 1); err != nil {
			return nil, err
		}
	}
	b.WriteString("];\n\nexport default routes;\n")

	return []byte(b.String()), nil
}

// writeRoute renders one route record at the given indent depth.
func writeRoute(b *strings.Builder, node *routes.RouteNode, depth int) error {
	indent := strings.Repeat("  ", depth)

	fmt.Fprintf(b, "%s{\n", indent)
	fmt.Fprintf(b, "%s  path: %q,\n", indent, node.Path)

	if node.Element != nil {
		elem, err := renderElement(node.Element)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%s  element: %s,\n", indent, elem)
	}

	if len(node.Children) > 0 {
		fmt.Fprintf(b, "%s  children: [\n", indent)
		for _, child := range node.Children {
			if err := writeRoute(b, child, depth+2); err != nil {
				return err
			}
		}
		fmt.Fprintf(b, "%s  ],\n", indent)
	}

	fmt.Fprintf(b, "%s},\n", indent)
	return nil
}

// renderElement renders an element expression into JSX text.
func renderElement(e routes.Element) (string, error) {
	switch el := e.(type) {
	case routes.StaticRef:
		return fmt.Sprintf("<%s />", el.Ident), nil
	case routes.LazyRef:
		return fmt.Sprintf("<%s />", el.Ident), nil
	case routes.Suspense:
		inner, err := renderElement(el.Inner)
		if err != nil {
			return "", err
		}
		fallback := defaultFallback
		if el.FallbackIdent != "" {
			fallback = fmt.Sprintf("<%s />", el.FallbackIdent)
		}
		return fmt.Sprintf("<Suspense fallback={%s}>%s</Suspense>", fallback, inner), nil
	default:
		return "", errors.New("R030").WithDetailf("unknown element expression %T", e)
	}
}

// splitImports separates bindings by kind, preserving registration order.
func splitImports(imports []routes.ImportBinding) (static, lazyBindings []routes.ImportBinding) {
	for _, imp := range imports {
		if imp.Kind == routes.ImportStatic {
			static = append(static, imp)
		} else {
			lazyBindings = append(lazyBindings, imp)
		}
	}
	return static, lazyBindings
}

// specifier computes the module specifier for a page file relative to the
// output file's directory, extension stripped.
func specifier(relPath string, opts Options) string {
	target := filepath.Join(opts.PagesDir, filepath.FromSlash(relPath))
	rel, err := filepath.Rel(filepath.Dir(opts.OutFile), target)
	if err != nil {
		// Fall back to the pages-rooted path; the bundler will complain
		// with a clearer message than we could produce here.
		rel = filepath.FromSlash(relPath)
	}

	spec := filepath.ToSlash(rel)
	spec = strings.TrimSuffix(spec, path.Ext(spec))
	if !strings.HasPrefix(spec, ".") {
		spec = "./" + spec
	}
	return spec
}
