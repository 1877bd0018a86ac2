package models

import (
	"time"
)

// AlertStatus 告警状态枚举
type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "pending"  // 活跃状态
	AlertStatusResolved AlertStatus = "resolved" // 已解决
)

// AlertEvent 事件类型枚举
type AlertEvent string

const (
	AlertEventStaleness AlertEvent = "staleness" // 孪生新鲜度事件
	AlertEventBackend   AlertEvent = "backend"   // 孪生后端事件
	AlertEventOptimizer AlertEvent = "optimizer" // 优化器事件
	AlertEventSystem    AlertEvent = "system"    // 系统事件
)

// Alert 告警数据模型
type Alert struct {
	ID          uint        `json:"id" gorm:"primaryKey;autoIncrement" example:"1"`
	Name        string      `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255" example:"孪生数据过期"`
	EventType   AlertEvent  `json:"event_type" gorm:"not null;size:50" validate:"required" example:"staleness"`
	Status      AlertStatus `json:"status" gorm:"not null;size:20;default:'pending'" validate:"required" example:"pending"`
	Description string      `json:"description" gorm:"type:text" validate:"max=1000" example:"平均信息年龄超过阈值，孪生层可能落后于物理层"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	ResolvedAt  *time.Time  `json:"resolved_at,omitempty"`
}
