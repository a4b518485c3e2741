package middleware

import (
	"runtime"
	"strconv"
	"time"

	"fiesta/metrics"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
)

// MetricsMiddleware collects HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		// Increment in-progress counter
		metrics.RequestInProgress.WithLabelValues(method, path).Inc()

		// Start timer
		startTime := time.Now()

		// Process request
		c.Next()

		// Record request duration
		duration := time.Since(startTime).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestCounter.WithLabelValues(status, method, path).Inc()
		metrics.RequestDuration.WithLabelValues(status, method, path).Observe(duration)
		metrics.RequestInProgress.WithLabelValues(method, path).Dec()
	}
}

// UpdateSystemMetrics periodically updates memory, goroutine, CPU, load and
// disk metrics
func UpdateSystemMetrics() {
	go func() {
		for {
			// Update memory stats
			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			metrics.MemoryStats.WithLabelValues("alloc").Set(float64(memStats.Alloc))
			metrics.MemoryStats.WithLabelValues("sys").Set(float64(memStats.Sys))
			metrics.MemoryStats.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
			metrics.MemoryStats.WithLabelValues("heap_sys").Set(float64(memStats.HeapSys))
			metrics.MemoryStats.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))

			// Update goroutine count
			metrics.GoroutineCount.Set(float64(runtime.NumGoroutine()))

			updateHostMetrics()

			// Wait before next update
			time.Sleep(15 * time.Second)
		}
	}()
}

func updateHostMetrics() {
	if percents, err := cpu.Percent(0, true); err == nil {
		for core, percent := range percents {
			metrics.SystemCPUUsage.WithLabelValues(strconv.Itoa(core)).Set(percent)
		}
	}

	if avg, err := load.Avg(); err == nil {
		metrics.SystemLoadAverage.WithLabelValues("1min").Set(avg.Load1)
		metrics.SystemLoadAverage.WithLabelValues("5min").Set(avg.Load5)
		metrics.SystemLoadAverage.WithLabelValues("15min").Set(avg.Load15)
	}

	if usage, err := disk.Usage("/"); err == nil {
		metrics.SystemDiskUsage.WithLabelValues(usage.Path, "used").Set(float64(usage.Used))
		metrics.SystemDiskUsage.WithLabelValues(usage.Path, "free").Set(float64(usage.Free))
		metrics.SystemDiskUsage.WithLabelValues(usage.Path, "total").Set(float64(usage.Total))
	}
}
