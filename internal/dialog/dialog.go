// Package dialog lays out the about box independently of any toolkit.
package dialog

import (
	"strings"

	"github.com/hiveden/linver/internal/branding"
	"github.com/hiveden/linver/internal/hw"
)

const (
	Width  = 450
	Height = 420

	licenseNotice = "The Linux kernel is protected under the GNU General Public\n" +
		"Licence in the United States and other countries/regions."
	registeredTo = "This product is registered to:"
)

// Rect is a position and size in pixels on the fixed canvas.
type Rect struct {
	X, Y, W, H int
}

// Label is a piece of static text.
type Label struct {
	Name     string
	Text     string
	Bounds   Rect
	FontSize int
	Wrap     bool
}

// Dialog is everything a renderer needs to draw the about box.
type Dialog struct {
	Title    string
	Width    int
	Height   int
	AssetKey string
	Logo     Rect
	Labels   []Label
	Button   string
	OK       Rect
}

// Build lays out the dialog for snap presented as profile.
func Build(snap hw.SystemSnapshot, profile branding.DisplayProfile) Dialog {
	return Dialog{
		Title:    "About " + snap.DistroName,
		Width:    Width,
		Height:   Height,
		AssetKey: profile.AssetKey,
		Logo:     Rect{10, 10, 430, 90},
		Labels: []Label{
			{Name: "vendor", Text: profile.Vendor, Bounds: Rect{20, 115, 400, 20}, FontSize: 10},
			{Name: "version", Text: VersionLine(snap.DistroVersion, snap.DistroCodename), Bounds: Rect{20, 135, 400, 20}, FontSize: 10},
			{Name: "kernel", Text: snap.KernelVersion, Bounds: Rect{20, 155, 400, 20}, FontSize: 10},
			{Name: "license", Text: licenseNotice, Bounds: Rect{20, 200, 410, 40}, FontSize: 9, Wrap: true},
			{Name: "registered", Text: registeredTo, Bounds: Rect{20, 260, 400, 20}, FontSize: 10},
			{Name: "username", Text: snap.Username, Bounds: Rect{50, 280, 400, 20}, FontSize: 10},
			{Name: "hostname", Text: snap.Hostname, Bounds: Rect{50, 300, 400, 20}, FontSize: 10},
		},
		Button: "OK",
		OK:     Rect{345, 377, 80, 30},
	}
}

// VersionLine formats "Version <version> (<codename>)", leaving out the
// parts that are empty.
func VersionLine(version, codename string) string {
	parts := []string{"Version"}
	if version != "" {
		parts = append(parts, version)
	}
	if codename != "" {
		parts = append(parts, "("+codename+")")
	}
	return strings.Join(parts, " ")
}

// Label returns the label with the given name.
func (d Dialog) Label(name string) (Label, bool) {
	for _, l := range d.Labels {
		if l.Name == name {
			return l, true
		}
	}
	return Label{}, false
}
