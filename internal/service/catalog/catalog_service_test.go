// Package catalog 服务目录单元测试
package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appErrors "github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/utils"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

func setupTestService(t *testing.T) *CatalogService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Service{}, &models.ReservationService{}))

	return NewCatalogService(repository.NewServiceRepository(db))
}

func TestCreateService(t *testing.T) {
	service := setupTestService(t)

	created, err := service.CreateService(context.Background(), &CreateServiceRequest{
		ServiceName:  "Breakfast",
		ServicePrice: 15,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ServiceID)

	t.Run("名称必填", func(t *testing.T) {
		_, err := service.CreateService(context.Background(), &CreateServiceRequest{ServicePrice: 10})
		assert.ErrorIs(t, err, appErrors.ErrServiceNameRequired)
	})

	t.Run("价格不能为负", func(t *testing.T) {
		_, err := service.CreateService(context.Background(), &CreateServiceRequest{
			ServiceName:  "Spa",
			ServicePrice: -1,
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrInvalidParams.Code, appErr.Code)
	})

	t.Run("免费服务允许", func(t *testing.T) {
		free, err := service.CreateService(context.Background(), &CreateServiceRequest{
			ServiceName: "Wi-Fi",
		})
		require.NoError(t, err)
		assert.Equal(t, 0.00, free.ServicePrice)
	})
}

func TestUpdateService(t *testing.T) {
	service := setupTestService(t)

	created, err := service.CreateService(context.Background(), &CreateServiceRequest{
		ServiceName:  "Laundry",
		ServicePrice: 20,
	})
	require.NoError(t, err)

	updated, err := service.UpdateService(context.Background(), created.ServiceID, &UpdateServiceRequest{
		ServicePrice: utils.Float64Ptr(25),
	})
	require.NoError(t, err)
	assert.Equal(t, 25.00, updated.ServicePrice)
	assert.Equal(t, "Laundry", updated.ServiceName)

	_, err = service.UpdateService(context.Background(), 9999, &UpdateServiceRequest{})
	assert.ErrorIs(t, err, appErrors.ErrServiceNotFound)
}

func TestDeleteService(t *testing.T) {
	service := setupTestService(t)

	created, err := service.CreateService(context.Background(), &CreateServiceRequest{
		ServiceName:  "Spa",
		ServicePrice: 50,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteService(context.Background(), created.ServiceID))
	_, err = service.GetService(context.Background(), created.ServiceID)
	assert.ErrorIs(t, err, appErrors.ErrServiceNotFound)
}

func TestListServices(t *testing.T) {
	service := setupTestService(t)

	for _, name := range []string{"Spa", "Laundry"} {
		_, err := service.CreateService(context.Background(), &CreateServiceRequest{
			ServiceName:  name,
			ServicePrice: 10,
		})
		require.NoError(t, err)
	}

	services, err := service.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 2)
}
