package ez

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverFindsPlainFileInRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greet.ez"), []byte(`out "hi"`), 0o644))

	r := &Resolver{Roots: []string{dir}}
	abs, src, err := r.Resolve("greet", 1)
	require.NoError(t, err)
	assert.Contains(t, abs, "greet.ez")
	assert.Contains(t, src, "hi")
}

func TestResolverFollowsPackageManifest(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "mypkg")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "package.ez"), []byte(`{"main": "entry.ez"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "entry.ez"), []byte(`out "from pkg"`), 0o644))

	r := &Resolver{Roots: []string{dir}}
	_, src, err := r.Resolve("mypkg", 1)
	require.NoError(t, err)
	assert.Contains(t, src, "from pkg")
}

func TestResolverFallsBackToMainEz(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "other")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "main.ez"), []byte(`out "main"`), 0o644))

	r := &Resolver{Roots: []string{dir}}
	_, src, err := r.Resolve("other", 1)
	require.NoError(t, err)
	assert.Contains(t, src, "main")
}

func TestResolverReportsModuleNotFound(t *testing.T) {
	r := &Resolver{Roots: []string{t.TempDir()}}
	_, _, err := r.Resolve("nope", 1)
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, KindModuleNotFound, re.Kind)
}
