// Package templates provides the starter files written by `routegen init`.
package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/routegen-dev/routegen/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// PagesDir is the pages directory, as written into routegen.json.
	PagesDir string

	// OutFile is the routes module path, as written into routegen.json.
	OutFile string

	// TypesFile is the type module path, as written into routegen.json.
	TypesFile string
}

// Scaffold writes the starter files into dir. Existing files are never
// overwritten; the first conflict aborts before anything is written.
func Scaffold(dir string, cfg Config) ([]string, error) {
	for relPath := range files {
		fullPath := filepath.Join(dir, relPath)
		if _, err := os.Stat(fullPath); err == nil {
			return nil, errors.New("R040").WithDetailf("%s already exists", fullPath)
		}
	}

	written := make([]string, 0, len(files))
	for relPath, content := range files {
		tmpl, err := template.New(relPath).Parse(content)
		if err != nil {
			return nil, errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return nil, errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return nil, err
		}
		written = append(written, fullPath)
	}

	return written, nil
}

// files maps relative paths to template contents.
var files = map[string]string{
	"routegen.json": `{
  "pagesDir": "{{.PagesDir}}",
  "outFile": "{{.OutFile}}",
  "typesFile": "{{.TypesFile}}"
}
`,

	"src/pages/index.tsx": `export default function Index() {
  return <h1>Welcome</h1>;
}
`,

	"src/pages/layout.tsx": `import { Outlet } from "react-router-dom";

export default function PagesLayout() {
  return (
    <main>
      <Outlet />
    </main>
  );
}
`,

	"src/pages/404.tsx": `export default function NotFound() {
  return <h1>Page not found</h1>;
}
`,

	"src/components.tsx": `import React, { useEffect } from "react";
import { Link as RouterLink, useLocation } from "react-router-dom";
import type { LinkProps } from "react-router-dom";
import type { RoutePath } from "./route-types.gen";

// Link is a typed wrapper: only generated route paths are accepted.
export function Link(props: Omit<LinkProps, "to"> & { to: RoutePath }) {
  return <RouterLink {...props} />;
}

// ScrollRestoration scrolls to the top on every navigation.
export function ScrollRestoration() {
  const { pathname } = useLocation();
  useEffect(() => {
    window.scrollTo(0, 0);
  }, [pathname]);
  return null;
}
`,
}
