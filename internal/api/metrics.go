package api

import (
	"net/http"
	"runtime"
	"time"
)

// SystemMetrics is the response payload for the metrics endpoint.
type SystemMetrics struct {
	Timestamp     time.Time       `json:"timestamp"`
	Version       string          `json:"version"`
	UptimeSeconds float64         `json:"uptime_seconds"`
	Runtime       RuntimeMetrics  `json:"runtime"`
	Database      DatabaseMetrics `json:"database"`
}

// RuntimeMetrics reports Go runtime statistics.
type RuntimeMetrics struct {
	Goroutines    int     `json:"goroutines"`
	MemoryAllocMB float64 `json:"memory_alloc_mb"`
	MemoryTotalMB float64 `json:"memory_total_mb"`
	NumGC         uint32  `json:"num_gc"`
}

// DatabaseMetrics reports the connection pool state.
type DatabaseMetrics struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	metrics := SystemMetrics{
		Timestamp:     time.Now().UTC(),
		Version:       s.version,
		UptimeSeconds: time.Since(s.startTime).Seconds(),
		Runtime: RuntimeMetrics{
			Goroutines:    runtime.NumGoroutine(),
			MemoryAllocMB: float64(mem.Alloc) / 1024 / 1024,
			MemoryTotalMB: float64(mem.TotalAlloc) / 1024 / 1024,
			NumGC:         mem.NumGC,
		},
	}

	if s.db != nil {
		stats := s.db.Stats()
		metrics.Database = DatabaseMetrics{
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
			WaitCount:       stats.WaitCount,
		}
	}

	writeJSON(w, http.StatusOK, metrics)
}
