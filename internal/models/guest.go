package models

import (
	"time"
)

// Guest 客人模型
type Guest struct {
	GuestID     int64     `gorm:"column:GuestID;primaryKey;autoIncrement" json:"guest_id"`
	FirstName   string    `gorm:"column:FirstName;type:varchar(50);not null" json:"first_name"`
	LastName    string    `gorm:"column:LastName;type:varchar(50);not null" json:"last_name"`
	Email       string    `gorm:"column:Email;type:varchar(100);not null" json:"email"`
	Phone       *string   `gorm:"column:Phone;type:varchar(20)" json:"phone,omitempty"`
	Address     *string   `gorm:"column:Address;type:varchar(255)" json:"address,omitempty"`
	CreatedDate time.Time `gorm:"column:CreatedDate;autoCreateTime" json:"created_date"`

	// 关联
	Reservations []Reservation `gorm:"foreignKey:GuestID;references:GuestID" json:"reservations,omitempty"`
}

// TableName 表名
func (Guest) TableName() string {
	return "GUEST"
}

// FullName 返回客人全名
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
