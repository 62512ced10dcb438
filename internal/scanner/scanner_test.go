package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegen-dev/routegen/internal/errors"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("export default null;\n"), 0644))
	}
}

func TestScanTree(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"index.tsx",
		"about.tsx",
		"admin/layout.tsx",
		"admin/users/[id].tsx",
	)

	tree, err := New(root, []string{".tsx"}).Scan()
	require.NoError(t, err)
	require.True(t, tree.IsDir)
	assert.Equal(t, "", tree.RelPath)

	byName := make(map[string]*FileNode)
	for _, c := range tree.Children {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "index.tsx")
	require.Contains(t, byName, "admin")

	admin := byName["admin"]
	assert.True(t, admin.IsDir)
	assert.Equal(t, "admin", admin.RelPath)
	assert.Equal(t, "", admin.ParentPath)

	var users *FileNode
	for _, c := range admin.Children {
		if c.Name == "users" {
			users = c
		}
	}
	require.NotNil(t, users)
	require.Len(t, users.Children, 1)
	assert.Equal(t, "admin/users/[id].tsx", users.Children[0].RelPath)
	assert.Equal(t, "admin/users", users.Children[0].ParentPath)
}

func TestScanSkipsUnrecognizedAndHidden(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"index.tsx",
		"styles.css",
		"notes.md",
		".hidden.tsx",
		".cache/cached.tsx",
	)

	tree, err := New(root, []string{".tsx"}).Scan()
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "index.tsx", tree.Children[0].Name)
}

func TestScanExtensionCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "About.TSX")

	tree, err := New(root, []string{".tsx"}).Scan()
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
}

func TestScanKeepsEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0755))

	tree, err := New(root, []string{".tsx"}).Scan()
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.True(t, tree.Children[0].IsDir)
	assert.Empty(t, tree.Children[0].Children)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), []string{".tsx"}).Scan()
	require.Error(t, err)

	var rerr *errors.RouteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "R011", rerr.Code)
}

func TestScanRootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "page.tsx")

	_, err := New(filepath.Join(root, "page.tsx"), []string{".tsx"}).Scan()
	require.Error(t, err)
}
