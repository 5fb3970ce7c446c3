// File: labreserve/main.go
package main

import (
	"context"
	"os/signal"
	"syscall"

	"labreserve/config"
	"labreserve/server"
	"labreserve/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	// Wait for an OS signal to gracefully shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Sugar().Fatalf("main: server failed: %v", err)
	}
}
