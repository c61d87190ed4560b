package database

import (
	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// AutoMigrate 迁移全部业务表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Guest{},
		&models.RoomType{},
		&models.Room{},
		&models.Reservation{},
		&models.AllocatedRoom{},
		&models.Service{},
		&models.ReservationService{},
		&models.Payment{},
		&models.OperationLog{},
	)
}
