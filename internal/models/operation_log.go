package models

import (
	"time"
)

// OperationLog 操作审计日志，记录对业务数据的写操作
type OperationLog struct {
	LogID       int64     `gorm:"column:LogID;primaryKey;autoIncrement" json:"log_id"`
	Module      string    `gorm:"column:Module;type:varchar(50);not null;index" json:"module"`
	Action      string    `gorm:"column:Action;type:varchar(50);not null" json:"action"`
	TargetType  *string   `gorm:"column:TargetType;type:varchar(50)" json:"target_type,omitempty"`
	TargetID    *string   `gorm:"column:TargetID;type:varchar(50)" json:"target_id,omitempty"`
	RequestData *string   `gorm:"column:RequestData;type:text" json:"request_data,omitempty"`
	StatusCode  int       `gorm:"column:StatusCode;not null" json:"status_code"`
	IP          string    `gorm:"column:IP;type:varchar(45)" json:"ip"`
	UserAgent   *string   `gorm:"column:UserAgent;type:varchar(255)" json:"user_agent,omitempty"`
	CreatedAt   time.Time `gorm:"column:CreatedAt;autoCreateTime;index" json:"created_at"`
}

// TableName 表名
func (OperationLog) TableName() string {
	return "OPERATION_LOG"
}
