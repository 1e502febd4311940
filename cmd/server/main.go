package main

import (
	"fmt"

	"github.com/MKhiriev/go-commerce-edge/internal/adapter"
	"github.com/MKhiriev/go-commerce-edge/internal/config"
	"github.com/MKhiriev/go-commerce-edge/internal/handler"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/metrics"
	"github.com/MKhiriev/go-commerce-edge/internal/server"
	"github.com/MKhiriev/go-commerce-edge/internal/service"
	"github.com/MKhiriev/go-commerce-edge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("edge-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("edge-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.API.BaseURL()).
		Bool("payments", cfg.Stripe.SecretKey != "").
		Bool("webhooks", cfg.Stripe.WebhookSecret != "").
		Bool("places", cfg.Places.APIKey != "").
		Msg("received configs")

	adapters := adapter.NewAdapters(*cfg, log)
	services := service.NewServices(adapters, buildInfo, *cfg, log)
	prom := metrics.NewPrometheus()

	handlers, err := handler.NewHandlers(services, adapters, *cfg, prom, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
