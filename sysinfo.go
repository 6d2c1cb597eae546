package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// systemSummary returns a one-line description of the host, e.g.
// "linux (amd64) | AMD EPYC 7B13 | 31.35 G RAM | Go go1.25.0".
func systemSummary() string {
	parts := []string{fmt.Sprintf("%s (%s)", runtime.GOOS, runtime.GOARCH)}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		if model := strings.TrimSpace(infos[0].ModelName); model != "" {
			parts = append(parts, model)
		}
	}
	if total := totalMemory(); total > 0 {
		parts = append(parts, formatSize(total)+" RAM")
	}
	parts = append(parts, "Go "+runtime.Version())
	return strings.Join(parts, " | ")
}

// totalMemory returns the physical memory size, or 0 if unknown.
func totalMemory() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.Total
}
