// Package reservation 预订服务单元测试
package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appErrors "github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// setupTestDB 创建测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&models.Guest{},
		&models.RoomType{},
		&models.Room{},
		&models.Reservation{},
		&models.AllocatedRoom{},
		&models.Service{},
		&models.ReservationService{},
		&models.Payment{},
	)
	require.NoError(t, err)

	return db
}

// setupTestService 创建测试用的 ReservationService
func setupTestService(t *testing.T) (*ReservationService, *gorm.DB) {
	db := setupTestDB(t)
	service := NewReservationService(
		db,
		repository.NewReservationRepository(db),
		repository.NewAllocatedRoomRepository(db),
		repository.NewRoomRepository(db),
		repository.NewGuestRepository(db),
		repository.NewServiceRepository(db),
	)
	return service, db
}

// createTestData 创建客人、房型和可用房间
func createTestData(t *testing.T, db *gorm.DB, rate float64) (*models.Guest, *models.Room) {
	guest := &models.Guest{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
	}
	require.NoError(t, db.Create(guest).Error)

	roomType := &models.RoomType{
		TypeName:    "Standard",
		Rate:        rate,
		MaxCapacity: 2,
	}
	require.NoError(t, db.Create(roomType).Error)

	room := &models.Room{
		RoomNumber: "101",
		RoomTypeID: roomType.RoomTypeID,
		Floor:      1,
		Status:     models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(room).Error)

	return guest, room
}

func TestCreateReservation(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	reservation, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	require.NoError(t, err)

	// 3 晚 * 100 = 300
	assert.Equal(t, 300.00, reservation.TotalAmount)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)

	// 分配记录携带价格快照
	var allocation models.AllocatedRoom
	require.NoError(t, db.Where(`"ReservationID" = ?`, reservation.ReservationID).First(&allocation).Error)
	assert.Equal(t, "101", allocation.RoomNumber)
	assert.Equal(t, 100.00, allocation.PricePerNight)

	// 房间翻转为已入住
	var updated models.Room
	require.NoError(t, db.Where(`"RoomNumber" = ?`, "101").First(&updated).Error)
	assert.Equal(t, models.RoomStatusOccupied, updated.Status)
}

func TestCreateReservation_RateSnapshot(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	reservation, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(48 * time.Hour),
	})
	require.NoError(t, err)

	// 之后调整房型价格，历史快照不受影响
	require.NoError(t, db.Model(&models.RoomType{}).
		Where(`"RoomTypeID" = ?`, room.RoomTypeID).
		Update("Rate", 250).Error)

	var allocation models.AllocatedRoom
	require.NoError(t, db.Where(`"ReservationID" = ?`, reservation.ReservationID).First(&allocation).Error)
	assert.Equal(t, 100.00, allocation.PricePerNight)
	assert.Equal(t, 200.00, reservation.TotalAmount)
}

func TestCreateReservation_Validation(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("退房日期必须晚于入住日期", func(t *testing.T) {
		_, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
			GuestID:      guest.GuestID,
			RoomNumber:   room.RoomNumber,
			CheckInDate:  checkIn,
			CheckOutDate: checkIn,
		})
		assert.ErrorIs(t, err, appErrors.ErrReservationDates)
	})

	t.Run("客人不存在", func(t *testing.T) {
		_, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
			GuestID:      9999,
			RoomNumber:   room.RoomNumber,
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.Add(24 * time.Hour),
		})
		assert.ErrorIs(t, err, appErrors.ErrGuestNotFound)
	})

	t.Run("房间不存在", func(t *testing.T) {
		_, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
			GuestID:      guest.GuestID,
			RoomNumber:   "999",
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.Add(24 * time.Hour),
		})
		assert.ErrorIs(t, err, appErrors.ErrRoomNotFound)
	})

	t.Run("房间不可用", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Room{}).
			Where(`"RoomNumber" = ?`, room.RoomNumber).
			Update("Status", models.RoomStatusMaintenance).Error)

		_, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
			GuestID:      guest.GuestID,
			RoomNumber:   room.RoomNumber,
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.Add(24 * time.Hour),
		})
		assert.ErrorIs(t, err, appErrors.ErrRoomNotAvailable)

		// 预订和分配均未写入
		var count int64
		require.NoError(t, db.Model(&models.Reservation{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
		require.NoError(t, db.Model(&models.AllocatedRoom{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestCheckOut(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	reservation, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	updated, err := service.CheckOut(context.Background(), reservation.ReservationID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCheckedOut, updated.Status)

	// 房间释放
	var released models.Room
	require.NoError(t, db.Where(`"RoomNumber" = ?`, room.RoomNumber).First(&released).Error)
	assert.Equal(t, models.RoomStatusAvailable, released.Status)

	// 已退房的预订不能再退房
	_, err = service.CheckOut(context.Background(), reservation.ReservationID)
	assert.ErrorIs(t, err, appErrors.ErrReservationStatusError)
}

func TestCancel(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	reservation, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	updated, err := service.Cancel(context.Background(), reservation.ReservationID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, updated.Status)

	var released models.Room
	require.NoError(t, db.Where(`"RoomNumber" = ?`, room.RoomNumber).First(&released).Error)
	assert.Equal(t, models.RoomStatusAvailable, released.Status)
}

func TestCancel_NotFound(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.Cancel(context.Background(), 9999)
	assert.ErrorIs(t, err, appErrors.ErrReservationNotFound)
}

func TestGetReservation(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	created, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	found, err := service.GetReservation(context.Background(), created.ReservationID)
	require.NoError(t, err)
	require.NotNil(t, found.Guest)
	assert.Equal(t, "John", found.Guest.FirstName)
	require.Len(t, found.AllocatedRooms, 1)
	assert.Equal(t, "101", found.AllocatedRooms[0].RoomNumber)
}

func TestSearch(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	created, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	t.Run("数字按ID精确查找", func(t *testing.T) {
		results, err := service.Search(context.Background(), "1")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, created.ReservationID, results[0].ReservationID)
	})

	t.Run("数字无匹配返回空", func(t *testing.T) {
		results, err := service.Search(context.Background(), "9999")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("非数字按姓名模糊匹配", func(t *testing.T) {
		results, err := service.Search(context.Background(), "Smi")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, created.ReservationID, results[0].ReservationID)
	})

	t.Run("空关键词返回最近列表", func(t *testing.T) {
		results, err := service.Search(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}

func TestCreateReservation_RollbackOnAllocationFailure(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	// 删除分配表使事务第二步失败，预订写入必须整体回滚
	require.NoError(t, db.Migrator().DropTable(&models.AllocatedRoom{}))

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(48 * time.Hour),
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).Count(&count).Error)
	assert.Zero(t, count, "回滚后不应残留预订记录")

	var fresh models.Room
	require.NoError(t, db.First(&fresh, `"RoomNumber" = ?`, room.RoomNumber).Error)
	assert.Equal(t, models.RoomStatusAvailable, fresh.Status)
}

func TestCreateReservation_TimeOfDayNormalized(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	// 带时分的时间戳按日历日处理：不足 24 小时但跨了一天，仍按一晚计价
	checkIn := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)

	reservation, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.00, reservation.TotalAmount)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), reservation.CheckInDate)
	assert.Equal(t, time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC), reservation.CheckOutDate)
}

func TestCreateReservation_SameDayRejected(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	// 同一天内的时间差不构成一晚
	checkIn := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 10, 20, 0, 0, 0, time.UTC)

	_, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	assert.ErrorIs(t, err, appErrors.ErrReservationDates)

	// 未产生任何预订，房间仍可用
	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).Count(&count).Error)
	assert.Zero(t, count)

	var fresh models.Room
	require.NoError(t, db.First(&fresh, `"RoomNumber" = ?`, room.RoomNumber).Error)
	assert.Equal(t, models.RoomStatusAvailable, fresh.Status)
}

func TestListReservations_Filters(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	created, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(48 * time.Hour),
	})
	require.NoError(t, err)

	t.Run("按客人过滤", func(t *testing.T) {
		results, total, err := service.ListReservations(context.Background(), 0, 10,
			map[string]interface{}{"guest_id": guest.GuestID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, created.ReservationID, results[0].ReservationID)
	})

	t.Run("按状态过滤", func(t *testing.T) {
		_, total, err := service.ListReservations(context.Background(), 0, 10,
			map[string]interface{}{"status": models.ReservationStatusCancelled})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("按入住日期范围过滤", func(t *testing.T) {
		_, total, err := service.ListReservations(context.Background(), 0, 10,
			map[string]interface{}{
				"start_date": checkIn.Add(-24 * time.Hour),
				"end_date":   checkIn.Add(24 * time.Hour),
			})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		_, total, err = service.ListReservations(context.Background(), 0, 10,
			map[string]interface{}{"start_date": checkIn.Add(24 * time.Hour)})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("分页越界返回空页", func(t *testing.T) {
		results, total, err := service.ListReservations(context.Background(), 10, 10, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Empty(t, results)
	})
}

func TestAttachService(t *testing.T) {
	service, db := setupTestService(t)
	guest, room := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	reservation, err := service.CreateReservation(context.Background(), &CreateReservationRequest{
		GuestID:      guest.GuestID,
		RoomNumber:   room.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	spa := &models.Service{ServiceName: "Spa", ServicePrice: 50}
	require.NoError(t, db.Create(spa).Error)

	require.NoError(t, service.AttachService(context.Background(), reservation.ReservationID, spa.ServiceID))

	services, err := service.ListServices(context.Background(), reservation.ReservationID)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Spa", services[0].ServiceName)

	t.Run("服务不存在", func(t *testing.T) {
		err := service.AttachService(context.Background(), reservation.ReservationID, 9999)
		assert.ErrorIs(t, err, appErrors.ErrServiceNotFound)
	})

	t.Run("预订不存在", func(t *testing.T) {
		err := service.AttachService(context.Background(), 9999, spa.ServiceID)
		assert.ErrorIs(t, err, appErrors.ErrReservationNotFound)
	})

	t.Run("移除服务", func(t *testing.T) {
		require.NoError(t, service.DetachService(context.Background(), reservation.ReservationID, spa.ServiceID))
		services, err := service.ListServices(context.Background(), reservation.ReservationID)
		require.NoError(t, err)
		assert.Empty(t, services)
	})
}

func TestListLatest(t *testing.T) {
	service, db := setupTestService(t)
	guest, _ := createTestData(t, db, 100)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		reservation := &models.Reservation{
			GuestID:      guest.GuestID,
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.Add(24 * time.Hour),
			TotalAmount:  100,
			Status:       models.ReservationStatusConfirmed,
		}
		require.NoError(t, db.Create(reservation).Error)
	}

	reservations, err := service.ListLatest(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, reservations, 3)
	assert.Greater(t, reservations[0].ReservationID, reservations[2].ReservationID)
}
