package hw

import (
	"context"
	"os"
	"os/user"
	"strings"

	"github.com/acobaugh/osrelease"
	"github.com/go-logr/logr"
	"github.com/shirou/gopsutil/v3/host"
)

// KernelLabel prefixes the kernel release in SystemSnapshot.KernelVersion.
const KernelLabel = "Kernel build "

// DefaultOSReleasePaths are tried in order when no explicit os-release
// path is configured.
var DefaultOSReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Sources are the OS facilities the collector reads from. Any of them may
// fail; a failing source only blanks its own fields.
type Sources struct {
	KernelRelease func(ctx context.Context) (string, error)
	Username      func() (string, error)
	Hostname      func() (string, error)
	OSRelease     func() (map[string]string, error)
}

// Collector gathers a SystemSnapshot from its Sources.
type Collector struct {
	src Sources
	log logr.Logger
}

// NewCollector returns a collector reading from the local machine.
// osReleasePath may be empty to use DefaultOSReleasePaths.
func NewCollector(log logr.Logger, osReleasePath string) *Collector {
	return NewCollectorWithSources(log, Sources{
		KernelRelease: host.KernelVersionWithContext,
		Username:      currentUsername,
		Hostname:      os.Hostname,
		OSRelease: func() (map[string]string, error) {
			return readOSRelease(osReleasePath)
		},
	})
}

// NewCollectorWithSources returns a collector reading from src. Nil
// sources are treated as unavailable.
func NewCollectorWithSources(log logr.Logger, src Sources) *Collector {
	return &Collector{src: src, log: log}
}

// Collect queries every source exactly once. It never fails: a field whose
// source is unavailable is left empty.
func (c *Collector) Collect(ctx context.Context) SystemSnapshot {
	var snap SystemSnapshot

	if c.src.KernelRelease != nil {
		release, err := c.src.KernelRelease(ctx)
		if release = strings.TrimSpace(release); err == nil && release != "" {
			snap.KernelVersion = KernelLabel + release
		} else {
			c.unavailable("kernel release", err)
		}
	}

	snap.Username = c.read("username", c.src.Username)
	snap.Hostname = c.read("hostname", c.src.Hostname)

	if c.src.OSRelease != nil {
		release, err := c.src.OSRelease()
		if err != nil {
			c.unavailable("os-release", err)
		} else {
			snap.DistroName = strings.TrimSpace(release["NAME"])
			snap.DistroVersion = strings.TrimSpace(release["VERSION_ID"])
			snap.DistroCodename = codename(release)
		}
	}

	c.log.V(1).Info("collected system snapshot",
		"kernel", snap.KernelVersion,
		"user", snap.Username,
		"host", snap.Hostname,
		"distro", snap.DistroName,
		"version", snap.DistroVersion,
		"codename", snap.DistroCodename)

	return snap
}

func (c *Collector) read(what string, fn func() (string, error)) string {
	if fn == nil {
		return ""
	}
	v, err := fn()
	if err != nil {
		c.unavailable(what, err)
		return ""
	}
	return strings.TrimSpace(v)
}

func (c *Collector) unavailable(what string, err error) {
	c.log.V(1).Info("system information unavailable", "field", what, "reason", err)
}

// codename prefers VERSION_CODENAME, then UBUNTU_CODENAME, then the first
// word inside the parentheses of VERSION, e.g. "20.04.6 LTS (Focal Fossa)".
func codename(release map[string]string) string {
	for _, key := range []string{"VERSION_CODENAME", "UBUNTU_CODENAME"} {
		if v := strings.TrimSpace(release[key]); v != "" {
			return v
		}
	}

	version := release["VERSION"]
	open := strings.Index(version, "(")
	end := strings.LastIndex(version, ")")
	if open == -1 || end <= open {
		return ""
	}
	fields := strings.Fields(version[open+1 : end])
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(fields[0], ","))
}

func readOSRelease(path string) (map[string]string, error) {
	if path != "" {
		return osrelease.ReadFile(path)
	}

	var lastErr error
	for _, p := range DefaultOSReleasePaths {
		release, err := osrelease.ReadFile(p)
		if err == nil {
			return release, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func currentUsername() (string, error) {
	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
