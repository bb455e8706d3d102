package main

import (
	"os"
	"os/signal"
	"syscall"

	"goblog/internal/config"
	jwtPkg "goblog/pkg/jwt"
	"goblog/pkg/log"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	// Both are required process configuration; refusing to start beats
	// issuing unverifiable tokens or dialing an empty DSN later.
	if os.Getenv(jwtPkg.AccessTokenSecretEnv) == "" {
		logger.Fatalf("%s is not set", jwtPkg.AccessTokenSecretEnv)
	}
	if os.Getenv("DATABASE_URL") == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithMiddleware(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
