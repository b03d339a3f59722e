package services

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/dto"
)

// HealthService produces the admin system-health snapshot. Host metric
// failures degrade to zero values; only the store check is authoritative.
type HealthService struct {
	db *gorm.DB
}

// NewHealthService creates a new HealthService
func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

// Snapshot gathers the current system health.
func (s *HealthService) Snapshot() dto.SystemHealth {
	snapshot := dto.SystemHealth{
		Goroutines: runtime.NumGoroutine(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snapshot.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snapshot.MemoryPercent = vm.UsedPercent
	}
	if uptime, err := host.Uptime(); err == nil {
		snapshot.UptimeSeconds = uptime
	}

	if sqlDB, err := s.db.DB(); err == nil {
		snapshot.StoreOK = sqlDB.Ping() == nil
	}

	return snapshot
}
