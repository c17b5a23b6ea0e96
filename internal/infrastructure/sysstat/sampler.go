package sysstat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/procfs"
)

var ErrNoMemInfo = errors.New("sysstat: meminfo has no MemTotal")

// Usage is an instantaneous host utilisation snapshot, in percent.
type Usage struct {
	CPUPercent    float64
	MemoryPercent float64
}

// ProcSampler reads CPU and memory utilisation from a procfs mount. CPU is
// measured as the busy share of ticks since the previous sample.
type ProcSampler struct {
	fs          procfs.FS
	minInterval time.Duration
	now         func() time.Time

	mu      sync.Mutex
	last    procfs.CPUStat
	lastAt  time.Time
	lastPct float64
}

func NewProcSampler(procPath string, minInterval time.Duration) (*ProcSampler, error) {
	fs, err := procfs.NewFS(procPath)
	if err != nil {
		return nil, fmt.Errorf("sysstat: open procfs %q: %w", procPath, err)
	}

	s := &ProcSampler{
		fs:          fs,
		minInterval: minInterval,
		now:         time.Now,
	}

	stat, err := fs.Stat()
	if err != nil {
		return nil, fmt.Errorf("sysstat: read stat: %w", err)
	}
	s.last = stat.CPUTotal
	s.lastAt = s.now()

	return s, nil
}

func (s *ProcSampler) Sample(ctx context.Context) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}

	cpu, err := s.cpuPercent()
	if err != nil {
		return Usage{}, err
	}

	mem, err := s.memoryPercent()
	if err != nil {
		return Usage{}, err
	}

	return Usage{CPUPercent: cpu, MemoryPercent: mem}, nil
}

func (s *ProcSampler) cpuPercent() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastAt) < s.minInterval {
		return s.lastPct, nil
	}

	stat, err := s.fs.Stat()
	if err != nil {
		return 0, fmt.Errorf("sysstat: read stat: %w", err)
	}

	cur := stat.CPUTotal
	totalDelta := total(cur) - total(s.last)
	busyDelta := busy(cur) - busy(s.last)

	// No ticks elapsed; keep the previous reading.
	if totalDelta > 0 {
		s.lastPct = clamp(busyDelta / totalDelta * 100)
	}
	s.last = cur
	s.lastAt = now

	return s.lastPct, nil
}

func (s *ProcSampler) memoryPercent() (float64, error) {
	info, err := s.fs.Meminfo()
	if err != nil {
		return 0, fmt.Errorf("sysstat: read meminfo: %w", err)
	}

	if info.MemTotal == nil || *info.MemTotal == 0 {
		return 0, ErrNoMemInfo
	}
	memTotal := float64(*info.MemTotal)

	var available float64
	switch {
	case info.MemAvailable != nil:
		available = float64(*info.MemAvailable)
	default:
		available = float64(deref(info.MemFree) + deref(info.Buffers) + deref(info.Cached))
	}

	return clamp((memTotal - available) / memTotal * 100), nil
}

func total(c procfs.CPUStat) float64 {
	return c.User + c.Nice + c.System + c.Idle + c.Iowait + c.IRQ + c.SoftIRQ + c.Steal
}

func busy(c procfs.CPUStat) float64 {
	return total(c) - c.Idle - c.Iowait
}

func deref(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

func clamp(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}
