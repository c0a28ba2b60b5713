package main

import (
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
)

// @title Hotelier API
// @version 1.0
// @description Back-office API for hotel room, customer, and booking management.
//
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
