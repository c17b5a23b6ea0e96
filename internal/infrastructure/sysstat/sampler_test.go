package sysstat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProc(t *testing.T, dir string, user, idle uint64, memTotal, memAvailable uint64) {
	t.Helper()

	stat := fmt.Sprintf("cpu  %d 0 0 %d 0 0 0 0 0 0\ncpu0 %d 0 0 %d 0 0 0 0 0 0\nbtime 1771480000\n", user, idle, user, idle)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"), []byte(stat), 0o644))

	meminfo := fmt.Sprintf("MemTotal:       %d kB\nMemFree:         1000 kB\nMemAvailable:   %d kB\n", memTotal, memAvailable)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meminfo"), []byte(meminfo), 0o644))
}

func TestProcSamplerComputesDeltas(t *testing.T) {
	dir := t.TempDir()
	writeProc(t, dir, 100, 900, 16000, 4000)

	s, err := NewProcSampler(dir, 0)
	require.NoError(t, err)

	// 30 busy ticks out of 100 since the priming read.
	writeProc(t, dir, 130, 970, 16000, 4000)

	usage, err := s.Sample(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 30.0, usage.CPUPercent, 0.001)
	assert.InDelta(t, 75.0, usage.MemoryPercent, 0.001)
}

func TestProcSamplerReusesReadingWithinInterval(t *testing.T) {
	dir := t.TempDir()
	writeProc(t, dir, 100, 900, 1000, 500)

	s, err := NewProcSampler(dir, time.Hour)
	require.NoError(t, err)

	writeProc(t, dir, 200, 900, 1000, 500)

	usage, err := s.Sample(context.Background())
	require.NoError(t, err)
	assert.Zero(t, usage.CPUPercent)
	assert.InDelta(t, 50.0, usage.MemoryPercent, 0.001)
}

func TestProcSamplerFailures(t *testing.T) {
	_, err := NewProcSampler(filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(t, err)

	dir := t.TempDir()
	writeProc(t, dir, 1, 1, 1000, 500)
	s, err := NewProcSampler(dir, 0)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, "meminfo")))
	_, err = s.Sample(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Sample(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
