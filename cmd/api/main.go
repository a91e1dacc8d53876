package main

import (
	"os"

	"github.com/campusnav/campusnav/internal/pkg/logger"
	"github.com/campusnav/campusnav/internal/server"
)

// @title CampusNav API
// @version 1.0
// @description API for the CampusNav campus map and class schedule service
// @BasePath /api
func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
