package hw

// SystemSnapshot is a point-in-time capture of the facts shown in the
// about dialog. It is built once by Collect and never modified.
type SystemSnapshot struct {
	KernelVersion  string `json:"kernelVersion" yaml:"kernel_version"`
	Username       string `json:"username" yaml:"username"`
	Hostname       string `json:"hostname" yaml:"hostname"`
	DistroName     string `json:"distroName" yaml:"distro_name"`
	DistroVersion  string `json:"distroVersion" yaml:"distro_version"`
	DistroCodename string `json:"distroCodename" yaml:"distro_codename"`
}

// HardwareSummary holds a short description of the machine's hardware.
type HardwareSummary struct {
	CPUModel    string `json:"cpuModel" yaml:"cpu_model"`
	Cores       uint32 `json:"cores" yaml:"cores"`
	Threads     uint32 `json:"threads" yaml:"threads"`
	MemoryBytes int64  `json:"memoryBytes" yaml:"memory_bytes"`
}
