package utils

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

// GetCPUUsage returns the current CPU usage as a percentage
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		Logger.Warn("failed to read CPU usage", zap.Error(err))
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

// GetMemoryUsage returns the current memory usage as a percentage
func GetMemoryUsage() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		Logger.Warn("failed to read memory usage", zap.Error(err))
		return 0
	}
	return vm.UsedPercent
}

// StartSystemMetricsCollector feeds the system gauges on a fixed
// interval until the process exits.
func StartSystemMetricsCollector(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			CPUUsagePercent.Set(GetCPUUsage())
			MemoryUsagePercent.Set(GetMemoryUsage())
		}
	}()
}
