package handler

import (
	"net/http"
	"sync"
	"time"

	"cashback-rewards/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type dependencyStatus struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. All checkers are pinged in parallel; any
// failure turns the answer into 503 "degraded".
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		results := make([]dependencyStatus, len(checkers))

		var wg sync.WaitGroup
		for i, checker := range checkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				start := time.Now()
				err := checker.Ping(ctx)
				results[i] = dependencyStatus{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
				if err != nil {
					results[i].Status = "unhealthy"
					results[i].Error = err.Error()
				}
			}()
		}
		wg.Wait()

		status, code := "healthy", http.StatusOK
		deps := make(map[string]dependencyStatus, len(checkers))
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
			if results[i].Status != "healthy" {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
