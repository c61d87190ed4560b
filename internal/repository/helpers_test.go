// Package repository 仓储层测试辅助
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// setupTestDB 创建内存 SQLite 数据库并迁移全部表
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	require.NoError(t, err)

	return db
}

// createTestGuest 创建测试客人
func createTestGuest(t *testing.T, db *gorm.DB, firstName, lastName, email string) *models.Guest {
	guest := &models.Guest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	require.NoError(t, db.Create(guest).Error)
	return guest
}

// createTestRoomType 创建测试房型
func createTestRoomType(t *testing.T, db *gorm.DB, name string, rate float64, capacity int) *models.RoomType {
	roomType := &models.RoomType{
		TypeName:    name,
		Rate:        rate,
		MaxCapacity: capacity,
	}
	require.NoError(t, db.Create(roomType).Error)
	return roomType
}

// createTestRoom 创建测试房间
func createTestRoom(t *testing.T, db *gorm.DB, number string, roomTypeID int64, floor int, status string) *models.Room {
	room := &models.Room{
		RoomNumber: number,
		RoomTypeID: roomTypeID,
		Floor:      floor,
		Status:     status,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

// createTestReservation 创建测试预订
func createTestReservation(t *testing.T, db *gorm.DB, guestID int64, checkIn, checkOut time.Time, total float64) *models.Reservation {
	reservation := &models.Reservation{
		GuestID:      guestID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  total,
		Status:       models.ReservationStatusConfirmed,
	}
	require.NoError(t, db.Create(reservation).Error)
	return reservation
}

// testCtx 测试上下文
func testCtx() context.Context {
	return context.Background()
}
