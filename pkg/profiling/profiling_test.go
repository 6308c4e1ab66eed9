package profiling

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Tests in this file swap package-level seams and must not run in parallel.

func TestDoCPUProfiling(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cpu.prof")
	stop := DoCPUProfiling(file, zap.NewNop())
	assert.True(t, stop != nil)
	stop()

	info, err := os.Stat(file)
	assert.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestDoCPUProfiling_Errors(t *testing.T) {
	origOsCreate, origStart := osCreate, pprofStartCPUProfile
	t.Cleanup(func() {
		osCreate, pprofStartCPUProfile = origOsCreate, origStart
	})

	t.Run("create", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		osCreate = func(string) (*os.File, error) {
			return nil, errors.New("mock error")
		}
		stop := DoCPUProfiling("invalid", zap.New(core))
		stop()
		assert.Equal(t, 1, logs.FilterMessage("could not create CPU profile").Len())
	})

	t.Run("start", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		osCreate = os.Create
		pprofStartCPUProfile = func(io.Writer) error {
			return errors.New("mock pprof error")
		}
		stop := DoCPUProfiling(filepath.Join(t.TempDir(), "cpu_err.prof"), zap.New(core))
		stop()
		assert.Equal(t, 1, logs.FilterMessage("could not start CPU profile").Len())
	})
}

func TestDoMemProfiling(t *testing.T) {
	origInterval, origWrite := memProfilingInterval, pprofWriteHeapProfile
	t.Cleanup(func() {
		memProfilingInterval, pprofWriteHeapProfile = origInterval, origWrite
	})

	var writes atomic.Int32
	memProfilingInterval = 20 * time.Millisecond
	pprofWriteHeapProfile = func(w io.Writer) error {
		writes.Add(1)
		_, err := w.Write([]byte("heap"))
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	file := filepath.Join(t.TempDir(), "mem.prof")
	write := DoMemProfiling(ctx, file, zap.NewNop())
	write()

	data, err := os.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "heap", string(data))

	deadline := time.Now().Add(2 * time.Second)
	for writes.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, writes.Load() >= 2, "ticker should rewrite the profile")
}

func TestDoMemProfiling_Errors(t *testing.T) {
	origOsCreate, origWrite := osCreate, pprofWriteHeapProfile
	t.Cleanup(func() {
		osCreate, pprofWriteHeapProfile = origOsCreate, origWrite
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("create", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		osCreate = func(string) (*os.File, error) {
			return nil, errors.New("mock error")
		}
		DoMemProfiling(ctx, "invalid", zap.New(core))()
		assert.Equal(t, 1, logs.FilterMessage("could not create memory profile").Len())
	})

	t.Run("write", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		osCreate = os.Create
		pprofWriteHeapProfile = func(io.Writer) error {
			return errors.New("mock pprof error")
		}
		DoMemProfiling(ctx, filepath.Join(t.TempDir(), "mem_err.prof"), zap.New(core))()
		assert.Equal(t, 1, logs.FilterMessage("could not write memory profile").Len())
	})
}
