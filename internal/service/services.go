package service

import (
	"github.com/Daafh07/HeartbeatSenseDB/internal/config"
	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
)

type Services struct {
	AuthService        AuthService
	SessionService     SessionService
	ActivityService    ActivityService
	MeasurementService MeasurementService
	AppInfoService     AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	authService := NewAuthService(repositories.UserRepository, cfg.App, logger)

	return &Services{
		AuthService: authService,
		SessionService: NewSessionService(
			authService,
			repositories.DeviceRepository,
			repositories.MeasurementRepository,
			logger,
		),
		ActivityService: NewActivityService(repositories.ActivityRepository, logger),
		MeasurementService: NewMeasurementService(
			repositories.DeviceRepository,
			repositories.MeasurementRepository,
			repositories.ActivityRepository,
			logger,
		),
		AppInfoService: NewAppInfoService(cfg.App.Version),
	}
}
