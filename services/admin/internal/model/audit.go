package model

import "time"

// Audit 审计字段，沿用历史库的 created_by/created_dt 列名
type Audit struct {
	CreatedBy string    `gorm:"column:created_by;size:20" json:"createdBy,omitempty"`
	CreatedDt time.Time `gorm:"column:created_dt;autoCreateTime" json:"createdDt"`
	UpdatedBy string    `gorm:"column:updated_by;size:20" json:"updatedBy,omitempty"`
	UpdatedDt time.Time `gorm:"column:updated_dt;autoUpdateTime" json:"updatedDt"`
}
