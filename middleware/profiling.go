package middleware

import (
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/duynhne/bookstore-service/config"
)

var profiler *pyroscope.Profiler

// InitProfiling starts the Pyroscope continuous profiler.
func InitProfiling(cfg *config.Config) error {
	runtime.SetMutexProfileFraction(5)
	runtime.SetBlockProfileRate(5)

	hostname, _ := os.Hostname()

	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.Service.Name,
		ServerAddress:   cfg.Profiling.Endpoint,
		Tags: map[string]string{
			"hostname": hostname,
			"env":      cfg.Service.Env,
			"version":  cfg.Service.Version,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockCount,
			pyroscope.ProfileBlockDuration,
		},
	})
	if err != nil {
		return err
	}

	profiler = p
	return nil
}

// StopProfiling flushes and stops the profiler if it was started.
func StopProfiling() {
	if profiler != nil {
		_ = profiler.Stop()
		profiler = nil
	}
}
