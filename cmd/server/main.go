package main

import (
	"log"

	_ "calltrack/docs"
	"calltrack/internal/config"
	"calltrack/internal/server"
)

// @title           Calltrack API
// @version         1.0
// @description     API for tracking calls, tags and follow-up tasks.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name auth-token

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
