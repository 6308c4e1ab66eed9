// Package profiling writes CPU and heap profiles for --cpuprofile and --memprofile.
package profiling

import (
	"context"
	"os"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
	memProfilingInterval  = 10 * time.Second
)

// DoCPUProfiling starts a CPU profile into file. The returned func stops it
// and is safe to call even when profiling could not start.
func DoCPUProfiling(file string, logger *zap.Logger) func() {
	f, err := osCreate(file)
	if err != nil {
		logger.Error("could not create CPU profile", zap.String("file", file), zap.Error(err))
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logger.Error("could not start CPU profile", zap.Error(err))
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			logger.Error("could not close CPU profile", zap.Error(err))
		}
	}
}

// DoMemProfiling rewrites a heap profile into file now and then until ctx is done.
// The returned func writes one on demand, typically on exit.
func DoMemProfiling(ctx context.Context, file string, logger *zap.Logger) func() {
	create, writeHeap := osCreate, pprofWriteHeapProfile
	write := func() {
		f, err := create(file)
		if err != nil {
			logger.Error("could not create memory profile", zap.String("file", file), zap.Error(err))
			return
		}
		defer func() {
			_ = f.Close()
		}()
		if err = writeHeap(f); err != nil {
			logger.Error("could not write memory profile", zap.Error(err))
		}
	}
	ticker := time.NewTicker(memProfilingInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				write()
			}
		}
	}()
	return write
}
