package ui

import (
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/hiveden/linver/internal/branding"
)

// AssetResolver turns asset keys into logo files under a directory.
type AssetResolver struct {
	dir string
	log logr.Logger
}

// NewAssetResolver returns a resolver for PNG logos stored in dir as
// <key>.png.
func NewAssetResolver(dir string, log logr.Logger) *AssetResolver {
	return &AssetResolver{dir: dir, log: log}
}

// Path returns the file a key would be read from.
func (a *AssetResolver) Path(key string) string {
	return filepath.Join(a.dir, filepath.Base(key)+".png")
}

// Resolve returns the logo for key, falling back to the generic logo.
// ok is false when neither file exists.
func (a *AssetResolver) Resolve(key string) (path string, ok bool) {
	for _, k := range []string{key, branding.GenericAssetKey} {
		p := a.Path(k)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			if k != key {
				a.log.V(1).Info("logo missing, using generic", "key", key, "path", p)
			}
			return p, true
		}
	}
	a.log.V(1).Info("no logo available", "key", key, "dir", a.dir)
	return "", false
}

// Missing lists the asset keys that have no logo file of their own.
func (a *AssetResolver) Missing() []string {
	var missing []string
	for _, k := range branding.Keys() {
		if _, err := os.Stat(a.Path(k)); err != nil {
			missing = append(missing, k)
		}
	}
	return missing
}
