package service

import (
	"context"

	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/models"
)

type appInfoService struct {
	info models.BuildInfoResponse

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo. cfg.Version fills in the version when
// the binary was built without one.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) AppInfoService {
	info := buildInfo.Response()
	if info.Version == "N/A" && cfg.Version != "" {
		info.Version = cfg.Version
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.BuildInfoResponse {
	return s.info
}
