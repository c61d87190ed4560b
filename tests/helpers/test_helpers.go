// Package helpers 提供测试辅助工具
package helpers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// RandomString 生成随机字符串
func RandomString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandomEmail 生成随机邮箱
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", RandomString(10))
}

// RandomPhone 生成随机电话号码
func RandomPhone() string {
	return fmt.Sprintf("+1 555-%04d", rand.Intn(10000))
}

// RandomFloat 生成随机浮点数
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// StringPtr 返回字符串指针
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr 返回浮点数指针
func Float64Ptr(f float64) *float64 {
	return &f
}

// NewGuest 构造测试客人
func NewGuest(firstName, lastName string) *models.Guest {
	phone := RandomPhone()
	return &models.Guest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     RandomEmail(),
		Phone:     &phone,
	}
}

// NewRoomType 构造测试房型
func NewRoomType(name string, rate float64) *models.RoomType {
	return &models.RoomType{
		TypeName:    name,
		Rate:        rate,
		MaxCapacity: 2,
	}
}

// NewRoom 构造测试房间
func NewRoom(number string, roomTypeID int64, status string) *models.Room {
	return &models.Room{
		RoomNumber: number,
		RoomTypeID: roomTypeID,
		Floor:      1,
		Status:     status,
	}
}

// NewReservation 构造测试预订
func NewReservation(guestID int64, checkIn time.Time, nights int, total float64) *models.Reservation {
	return &models.Reservation{
		GuestID:      guestID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, nights),
		TotalAmount:  total,
		Status:       models.ReservationStatusConfirmed,
	}
}
