// Package sysinfo samples host CPU and memory utilization for the
// header bar.
package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds one utilization sample.
type Stats struct {
	CPUPercent float64
	RAMPercent float64
}

// Sample returns current CPU and RAM utilization percentages. The CPU
// figure is computed against the previous call, so the first sample of a
// session may read zero.
func Sample() (Stats, error) {
	percents, err := cpu.Percent(0, false)
	if err != nil {
		return Stats{}, fmt.Errorf("sampling cpu: %w", err)
	}
	var cpuPct float64
	if len(percents) > 0 {
		cpuPct = percents[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return Stats{}, fmt.Errorf("sampling memory: %w", err)
	}

	return Stats{CPUPercent: cpuPct, RAMPercent: vm.UsedPercent}, nil
}
