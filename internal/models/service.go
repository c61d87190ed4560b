package models

// Service 附加服务模型
type Service struct {
	ServiceID    int64   `gorm:"column:ServiceID;primaryKey;autoIncrement" json:"service_id"`
	ServiceName  string  `gorm:"column:ServiceName;type:varchar(100);not null" json:"service_name"`
	ServicePrice float64 `gorm:"column:ServicePrice;type:decimal(10,2);not null" json:"service_price"`
}

// TableName 表名
func (Service) TableName() string {
	return "SERVICE"
}

// ReservationService 预订-服务关联模型
type ReservationService struct {
	ReservationID int64 `gorm:"column:ReservationID;primaryKey" json:"reservation_id"`
	ServiceID     int64 `gorm:"column:ServiceID;primaryKey" json:"service_id"`

	// 关联
	Reservation *Reservation `gorm:"foreignKey:ReservationID;references:ReservationID" json:"reservation,omitempty"`
	Service     *Service     `gorm:"foreignKey:ServiceID;references:ServiceID" json:"service,omitempty"`
}

// TableName 表名
func (ReservationService) TableName() string {
	return "RESERVATION_SERVICE"
}
