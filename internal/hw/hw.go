package hw

import (
	"fmt"

	"github.com/jaypipes/ghw"
)

// GetHardwareSummary returns the CPU model, core and thread counts and the
// usable memory of the host.
func GetHardwareSummary() (*HardwareSummary, error) {
	cpu, err := ghw.CPU()
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	memory, err := ghw.Memory()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	summary := &HardwareSummary{
		Cores:       cpu.TotalCores,
		Threads:     cpu.TotalHardwareThreads,
		MemoryBytes: memory.TotalUsableBytes,
	}
	for _, proc := range cpu.Processors {
		if proc.Model != "" {
			summary.CPUModel = proc.Model
			break
		}
	}

	return summary, nil
}
