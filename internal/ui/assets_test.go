package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("png"), 0o644))
	return p
}

func TestAssetResolver(t *testing.T) {
	dir := t.TempDir()
	ubuntu := touch(t, dir, "Ubuntu.png")
	generic := touch(t, dir, "Linux.png")

	r := NewAssetResolver(dir, testr.New(t))

	p, ok := r.Resolve("Ubuntu")
	require.True(t, ok)
	assert.Equal(t, ubuntu, p)

	p, ok = r.Resolve("PopOS")
	require.True(t, ok)
	assert.Equal(t, generic, p)

	assert.Equal(t, []string{"ArchLinux", "LinuxMint", "Manjaro", "PopOS"}, r.Missing())
}

func TestAssetResolverNothingAvailable(t *testing.T) {
	r := NewAssetResolver(t.TempDir(), testr.New(t))

	p, ok := r.Resolve("Ubuntu")
	assert.False(t, ok)
	assert.Empty(t, p)
}

func TestAssetResolverPathStaysInDir(t *testing.T) {
	r := NewAssetResolver("/assets", testr.New(t))
	assert.Equal(t, "/assets/passwd.png", r.Path("../../etc/passwd"))
}

func TestAssetResolverIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Ubuntu.png"), 0o755))
	generic := touch(t, dir, "Linux.png")

	p, ok := NewAssetResolver(dir, testr.New(t)).Resolve("Ubuntu")
	require.True(t, ok)
	assert.Equal(t, generic, p)
}
