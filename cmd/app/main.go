package main

import (
	"lotus/config"
	"lotus/di"
	"lotus/shared/logger"
)

// @title Lotus Booking Engine API
// @version 1.0
// @description Walk-in booking, pricing and revenue allocation for the studio.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
