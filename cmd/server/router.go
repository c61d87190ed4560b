// Package main 是应用程序入口
package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/config"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/metrics"
	commonMiddleware "github.com/Newton2003/Hotel-Reservation-System/internal/common/middleware"
	catalogHandler "github.com/Newton2003/Hotel-Reservation-System/internal/handler/catalog"
	guestHandler "github.com/Newton2003/Hotel-Reservation-System/internal/handler/guest"
	paymentHandler "github.com/Newton2003/Hotel-Reservation-System/internal/handler/payment"
	reportHandler "github.com/Newton2003/Hotel-Reservation-System/internal/handler/report"
	reservationHandler "github.com/Newton2003/Hotel-Reservation-System/internal/handler/reservation"
	roomHandler "github.com/Newton2003/Hotel-Reservation-System/internal/handler/room"
	"github.com/Newton2003/Hotel-Reservation-System/internal/middleware"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
	catalogService "github.com/Newton2003/Hotel-Reservation-System/internal/service/catalog"
	guestService "github.com/Newton2003/Hotel-Reservation-System/internal/service/guest"
	paymentService "github.com/Newton2003/Hotel-Reservation-System/internal/service/payment"
	reportService "github.com/Newton2003/Hotel-Reservation-System/internal/service/report"
	reservationService "github.com/Newton2003/Hotel-Reservation-System/internal/service/reservation"
	roomService "github.com/Newton2003/Hotel-Reservation-System/internal/service/room"
)

// setupRouter 设置路由
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) {
	// 初始化仓储
	guestRepo := repository.NewGuestRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	allocationRepo := repository.NewAllocatedRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// 初始化服务
	guestSvc := guestService.NewGuestService(guestRepo)
	roomSvc := roomService.NewRoomService(roomRepo, roomTypeRepo)
	catalogSvc := catalogService.NewCatalogService(serviceRepo)
	reservationSvc := reservationService.NewReservationService(
		db, reservationRepo, allocationRepo, roomRepo, guestRepo, serviceRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, reservationRepo)
	reportSvc := reportService.NewReportService(
		reportRepo, guestRepo, roomRepo, reservationRepo, paymentRepo)

	// 初始化处理器
	guestH := guestHandler.NewGuestHandler(guestSvc)
	roomH := roomHandler.NewRoomHandler(roomSvc)
	catalogH := catalogHandler.NewCatalogHandler(catalogSvc)
	reservationH := reservationHandler.NewReservationHandler(reservationSvc)
	paymentH := paymentHandler.NewPaymentHandler(paymentSvc)
	reportH := reportHandler.NewReportHandler(reportSvc)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.CORS(&middleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(middleware.AccessLog(logger))
	if cfg.Tracing.Enabled {
		r.Use(commonMiddleware.Tracing(&commonMiddleware.TracingConfig{
			ServiceName: cfg.Tracing.ServiceName,
			SkipPaths:   []string{"/health", "/ping", "/ready", cfg.Metrics.Path},
		}))
	}
	if cfg.Metrics.Enabled {
		r.Use(metrics.GetMetrics().Middleware())
	}
	opLogger := commonMiddleware.NewOperationLogger(repository.NewOperationLogRepository(db))
	r.Use(opLogger.Log())
	if cfg.RateLimit.Enabled {
		r.Use(middleware.IPRateLimit(redisClient, cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.Window)*time.Second))
	}

	// 健康检查
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db, redisClient))

	// Prometheus 指标
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 客人管理
		v1.POST("/guests", guestH.CreateGuest)
		v1.GET("/guests", guestH.ListGuests)
		v1.GET("/guests/:id", guestH.GetGuest)
		v1.PUT("/guests/:id", guestH.UpdateGuest)
		v1.DELETE("/guests/:id", guestH.DeleteGuest)

		// 房型管理
		v1.POST("/room-types", roomH.CreateRoomType)
		v1.GET("/room-types", roomH.ListRoomTypes)
		v1.GET("/room-types/:id", roomH.GetRoomType)
		v1.PUT("/room-types/:id", roomH.UpdateRoomType)
		v1.DELETE("/room-types/:id", roomH.DeleteRoomType)

		// 房间管理
		v1.POST("/rooms", roomH.CreateRoom)
		v1.GET("/rooms", roomH.ListRooms)
		v1.GET("/rooms/available", roomH.ListAvailableRooms)
		v1.GET("/rooms/:room_number", roomH.GetRoom)
		v1.PUT("/rooms/:room_number/status", roomH.UpdateRoomStatus)
		v1.DELETE("/rooms/:room_number", roomH.DeleteRoom)

		// 服务目录
		v1.POST("/services", catalogH.CreateService)
		v1.GET("/services", catalogH.ListServices)
		v1.GET("/services/:id", catalogH.GetService)
		v1.PUT("/services/:id", catalogH.UpdateService)
		v1.DELETE("/services/:id", catalogH.DeleteService)

		// 预订工作流
		v1.POST("/reservations", reservationH.CreateReservation)
		v1.GET("/reservations", reservationH.ListReservations)
		v1.GET("/reservations/:id", reservationH.GetReservation)
		v1.POST("/reservations/:id/check-out", reservationH.CheckOut)
		v1.POST("/reservations/:id/cancel", reservationH.Cancel)
		v1.GET("/reservations/:id/services", reservationH.ListReservationServices)
		v1.POST("/reservations/:id/services", reservationH.AttachService)
		v1.DELETE("/reservations/:id/services/:service_id", reservationH.DetachService)

		// 支付记录
		v1.POST("/payments", paymentH.CreatePayment)
		v1.GET("/payments", paymentH.ListPayments)
		v1.GET("/payments/:id", paymentH.GetPayment)
		v1.PUT("/payments/:id/status", paymentH.UpdatePaymentStatus)

		// 仪表盘与报表
		v1.GET("/dashboard/overview", reportH.GetDashboardOverview)
		v1.GET("/reports/revenue-by-room-type", reportH.GetRevenueByRoomType)
		v1.GET("/reports/occupancy-by-room-type", reportH.GetOccupancyByRoomType)
		v1.GET("/reports/daily-check-ins", reportH.GetDailyCheckIns)
		v1.GET("/reports/service-usage", reportH.GetServiceUsage)
		v1.GET("/reports/guest-spending", reportH.GetGuestSpending)
	}

	// 404 处理
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    404,
			"message": "接口不存在",
		})
	})
}
