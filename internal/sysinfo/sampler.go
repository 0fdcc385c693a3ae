// Package sysinfo provides process and system resource sampling for the
// memory stress and system monitor workloads.
package sysinfo

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Sampler reads point-in-time resource usage. All percentages are in the
// 0-100 range.
type Sampler interface {
	CPUPercent(ctx context.Context) (float64, error)
	MemoryPercent(ctx context.Context) (float64, error)
	DiskPercent(ctx context.Context, path string) (float64, error)
	ProcessResidentMB(ctx context.Context) (float64, error)
}

// Compile-time interface satisfaction check.
var _ Sampler = (*HostSampler)(nil)

// HostSampler implements Sampler against the local host via gopsutil.
type HostSampler struct {
	proc *process.Process
}

// NewHostSampler builds a sampler bound to the current process.
func NewHostSampler() (*HostSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("attach to own process: %w", err)
	}
	return &HostSampler{proc: p}, nil
}

// CPUPercent returns total CPU utilization since the previous call.
func (h *HostSampler) CPUPercent(ctx context.Context) (float64, error) {
	// Interval 0 measures against the last invocation instead of blocking.
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, fmt.Errorf("cpu percent: %w", err)
	}
	if len(pcts) == 0 {
		return 0, fmt.Errorf("cpu percent: no samples")
	}
	return pcts[0], nil
}

// MemoryPercent returns system memory utilization.
func (h *HostSampler) MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("virtual memory: %w", err)
	}
	return vm.UsedPercent, nil
}

// DiskPercent returns disk utilization for the filesystem holding path.
func (h *HostSampler) DiskPercent(ctx context.Context, path string) (float64, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("disk usage %s: %w", path, err)
	}
	return u.UsedPercent, nil
}

// ProcessResidentMB returns this process's resident set size in MiB.
func (h *HostSampler) ProcessResidentMB(ctx context.Context) (float64, error) {
	mi, err := h.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("process memory info: %w", err)
	}
	return float64(mi.RSS) / 1024 / 1024, nil
}
