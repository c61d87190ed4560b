package models

// RoomType 房型模型
type RoomType struct {
	RoomTypeID  int64   `gorm:"column:RoomTypeID;primaryKey;autoIncrement" json:"room_type_id"`
	TypeName    string  `gorm:"column:TypeName;type:varchar(50);not null" json:"type_name"`
	Rate        float64 `gorm:"column:Rate;type:decimal(10,2);not null" json:"rate"`
	MaxCapacity int     `gorm:"column:MaxCapacity;not null" json:"max_capacity"`
	Description *string `gorm:"column:Description;type:text" json:"description,omitempty"`

	// 关联
	Rooms []Room `gorm:"foreignKey:RoomTypeID;references:RoomTypeID" json:"rooms,omitempty"`
}

// TableName 表名
func (RoomType) TableName() string {
	return "ROOM_TYPE"
}

// Room 房间模型（RoomNumber 为自然主键）
type Room struct {
	RoomNumber string `gorm:"column:RoomNumber;primaryKey;type:varchar(20)" json:"room_number"`
	RoomTypeID int64  `gorm:"column:RoomTypeID;index;not null" json:"room_type_id"`
	Floor      int    `gorm:"column:Floor;not null;default:1" json:"floor"`
	Status     string `gorm:"column:Status;type:varchar(20);not null;default:'Available'" json:"status"`

	// 关联
	RoomType *RoomType `gorm:"foreignKey:RoomTypeID;references:RoomTypeID" json:"room_type,omitempty"`
}

// TableName 表名
func (Room) TableName() string {
	return "ROOM"
}

// 房间状态
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// ValidRoomStatuses 合法的房间状态集合
var ValidRoomStatuses = []string{
	RoomStatusAvailable,
	RoomStatusOccupied,
	RoomStatusMaintenance,
}

// IsValidRoomStatus 检查房间状态是否合法
func IsValidRoomStatus(status string) bool {
	for _, s := range ValidRoomStatuses {
		if s == status {
			return true
		}
	}
	return false
}
