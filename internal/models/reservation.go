package models

import (
	"time"
)

// Reservation 预订模型
type Reservation struct {
	ReservationID int64     `gorm:"column:ReservationID;primaryKey;autoIncrement" json:"reservation_id"`
	GuestID       int64     `gorm:"column:GuestID;index;not null" json:"guest_id"`
	CheckInDate   time.Time `gorm:"column:CheckInDate;type:date;not null" json:"check_in_date"`
	CheckOutDate  time.Time `gorm:"column:CheckOutDate;type:date;not null" json:"check_out_date"`
	TotalAmount   float64   `gorm:"column:TotalAmount;type:decimal(10,2);not null" json:"total_amount"`
	Status        string    `gorm:"column:Status;type:varchar(20);not null;default:'Confirmed'" json:"status"`
	BookingDate   time.Time `gorm:"column:BookingDate;autoCreateTime" json:"booking_date"`

	// 关联
	Guest          *Guest          `gorm:"foreignKey:GuestID;references:GuestID" json:"guest,omitempty"`
	AllocatedRooms []AllocatedRoom `gorm:"foreignKey:ReservationID;references:ReservationID" json:"allocated_rooms,omitempty"`
	Payments       []Payment       `gorm:"foreignKey:ReservationID;references:ReservationID" json:"payments,omitempty"`
}

// TableName 表名
func (Reservation) TableName() string {
	return "RESERVATION"
}

// 预订状态
const (
	ReservationStatusConfirmed  = "Confirmed"
	ReservationStatusCheckedOut = "CheckedOut"
	ReservationStatusCancelled  = "Cancelled"
)

// Nights 返回预订的夜数
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

// AllocatedRoom 房间分配模型（记录分配时的每晚价格快照）
type AllocatedRoom struct {
	AllocationID  int64   `gorm:"column:AllocationID;primaryKey;autoIncrement" json:"allocation_id"`
	ReservationID int64   `gorm:"column:ReservationID;index;not null" json:"reservation_id"`
	RoomNumber    string  `gorm:"column:RoomNumber;type:varchar(20);index;not null" json:"room_number"`
	PricePerNight float64 `gorm:"column:PricePerNight;type:decimal(10,2);not null" json:"price_per_night"`

	// 关联
	Reservation *Reservation `gorm:"foreignKey:ReservationID;references:ReservationID" json:"reservation,omitempty"`
	Room        *Room        `gorm:"foreignKey:RoomNumber;references:RoomNumber" json:"room,omitempty"`
}

// TableName 表名
func (AllocatedRoom) TableName() string {
	return "ALLOCATED_ROOM"
}
