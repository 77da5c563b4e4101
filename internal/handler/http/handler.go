package http

import (
	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/metrics"
	"github.com/Daafh07/HeartbeatSenseDB/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.HTTPMetrics
	pinger   Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, httpMetrics *metrics.HTTPMetrics, pinger Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  httpMetrics,
		pinger:   pinger,
		logger:   logger,
	}
}
