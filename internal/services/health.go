package services

import (
	"time"

	"github.com/pathwaycare/intake-api/internal/config"
	"gorm.io/gorm"
)

// HealthResult is the healthcheck report.
type HealthResult struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// HealthCheck pings the database and reports overall service health.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthResult {
	result := HealthResult{
		Status:    "healthy",
		Database:  cfg.DBType,
		Timestamp: time.Now().UTC(),
	}

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
	}
	return result
}
