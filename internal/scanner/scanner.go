// Package scanner walks a pages directory and produces a tree of FileNode
// records for the route builder. It is deliberately thin: all routing
// semantics live in the routes package.
package scanner

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/routegen-dev/routegen/internal/errors"
)

// FileNode describes one filesystem entry under the pages root.
type FileNode struct {
	// Name is the raw entry name, including any extension and bracket
	// syntax (e.g. "[id].tsx").
	Name string

	// RelPath is the slash-normalized path from the pages root
	// (e.g. "admin/users/[id].tsx"). Empty for the root node itself.
	RelPath string

	// ParentPath is the RelPath of the containing directory.
	ParentPath string

	// IsDir reports whether the entry is a directory.
	IsDir bool

	// Children holds the entries of a directory, in the order the
	// filesystem returned them. Nil for files and empty directories.
	Children []*FileNode
}

// Scanner reads a pages directory into a FileNode tree.
type Scanner struct {
	root string
	exts map[string]struct{}
}

// New creates a scanner rooted at dir that recognizes the given page file
// extensions (each including the leading dot).
func New(dir string, extensions []string) *Scanner {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &Scanner{root: dir, exts: exts}
}

// Scan walks the pages root and returns its FileNode tree. Any I/O error
// aborts the scan; callers must not write output for a failed scan.
func (s *Scanner) Scan() (*FileNode, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("R011").WithDetailf("pages directory %q does not exist", s.root).Wrap(err)
		}
		return nil, errors.New("R010").Wrap(err)
	}
	if !info.IsDir() {
		return nil, errors.New("R011").WithDetailf("%q is not a directory", s.root)
	}

	root := &FileNode{
		Name:  filepath.Base(s.root),
		IsDir: true,
	}
	if err := s.scanDir(s.root, root); err != nil {
		return nil, err
	}
	return root, nil
}

// scanDir reads one directory and recurses into subdirectories.
func (s *Scanner) scanDir(dir string, node *FileNode) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.New("R010").WithDetailf("reading %q", dir).Wrap(err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		child := &FileNode{
			Name:       name,
			RelPath:    joinRel(node.RelPath, name),
			ParentPath: node.RelPath,
			IsDir:      entry.IsDir(),
		}

		if entry.IsDir() {
			if err := s.scanDir(filepath.Join(dir, name), child); err != nil {
				return err
			}
			node.Children = append(node.Children, child)
			continue
		}

		if !s.recognized(name) {
			continue
		}
		node.Children = append(node.Children, child)
	}

	return nil
}

// recognized reports whether a file name carries a page extension.
func (s *Scanner) recognized(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	_, ok := s.exts[ext]
	return ok
}

func joinRel(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
