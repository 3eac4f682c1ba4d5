// Package branding maps a distribution name to the vendor string and logo
// shown in the about dialog.
package branding

import "sort"

// GenericAssetKey is the logo used for distributions without their own.
const GenericAssetKey = "Linux"

// DisplayProfile is how a distribution is presented.
type DisplayProfile struct {
	Vendor   string `json:"vendor" yaml:"vendor"`
	AssetKey string `json:"assetKey" yaml:"asset_key"`
}

// Kali and openSUSE have no logo of their own and use the generic one.
var profiles = map[string]DisplayProfile{
	"Pop!_OS":        {Vendor: "System76 Pop!_OS", AssetKey: "PopOS"},
	"Ubuntu":         {Vendor: "Canonical Ubuntu", AssetKey: "Ubuntu"},
	"Kali GNU/Linux": {Vendor: "Offensive Security Kali Linux", AssetKey: GenericAssetKey},
	"openSUSE":       {Vendor: "SUSE openSUSE", AssetKey: GenericAssetKey},
	"Linux Mint":     {Vendor: "Linux Mint", AssetKey: "LinuxMint"},
	"Manjaro":        {Vendor: "Manjaro", AssetKey: "Manjaro"},
	"Arch Linux":     {Vendor: "Arch Linux", AssetKey: "ArchLinux"},
}

// Map returns the display profile for distroName. Names are matched
// exactly; unknown names are shown as-is with the generic logo.
func Map(distroName string) DisplayProfile {
	if p, ok := profiles[distroName]; ok {
		return p
	}
	return DisplayProfile{Vendor: distroName, AssetKey: GenericAssetKey}
}

// Keys returns every asset key Map can produce, sorted.
func Keys() []string {
	seen := map[string]struct{}{GenericAssetKey: {}}
	for _, p := range profiles {
		seen[p.AssetKey] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
