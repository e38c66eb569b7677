package services

import (
	"fmt"
	"time"

	"github.com/ruok-app/ruok-api/internal/config"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck reports service health: process up, database reachable.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		config.Logger.Errorw("health check failed", "error", err)
		return result
	}

	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		config.Logger.Errorw("health check failed", "error", err)
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase

	// Redis is optional and only degrades chat history, so an outage
	// shows in details without flipping overall status.
	if cfg.RedisAddr != "" {
		if err := utils.PingAddr(cfg.RedisAddr, 2*time.Second); err != nil {
			result.Details["redis"] = "unreachable"
			config.Logger.Warnw("redis unreachable during health check", "error", err)
		} else {
			result.Details["redis"] = "ok"
		}
	}

	return result
}
