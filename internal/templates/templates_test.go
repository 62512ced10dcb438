package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegen-dev/routegen/internal/errors"
)

func testConfig() Config {
	return Config{
		PagesDir:  "./src/pages",
		OutFile:   "./src/routes.gen.tsx",
		TypesFile: "./src/route-types.gen.d.ts",
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()

	written, err := Scaffold(dir, testConfig())
	require.NoError(t, err)
	assert.Len(t, written, len(files))

	cfgData, err := os.ReadFile(filepath.Join(dir, "routegen.json"))
	require.NoError(t, err)
	assert.Contains(t, string(cfgData), `"pagesDir": "./src/pages"`)
	assert.Contains(t, string(cfgData), `"outFile": "./src/routes.gen.tsx"`)

	for _, rel := range []string{
		"src/pages/index.tsx",
		"src/pages/layout.tsx",
		"src/pages/404.tsx",
		"src/components.tsx",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, "missing %s", rel)
	}

	components, err := os.ReadFile(filepath.Join(dir, "src", "components.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(components), "RoutePath")
}

func TestScaffoldRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "routegen.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	_, err := Scaffold(dir, testConfig())
	require.Error(t, err)

	var rerr *errors.RouteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "R040", rerr.Code)

	// The conflict aborts before anything else is written.
	_, statErr := os.Stat(filepath.Join(dir, "src"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestScaffoldConflictDeepFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "src", "pages", "index.tsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0755))
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	_, err := Scaffold(dir, testConfig())
	require.Error(t, err)

	// The pre-existing file survives untouched.
	data, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "old", string(data))
}

func TestScaffoldTemplatesRenderConfigValues(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		PagesDir:  "./app/pages",
		OutFile:   "./app/routes.gen.tsx",
		TypesFile: "./app/route-types.gen.d.ts",
	}

	_, err := Scaffold(dir, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "routegen.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "./app/pages")
	assert.Contains(t, string(data), "./app/route-types.gen.d.ts")
	assert.NotContains(t, string(data), "{{")
}
