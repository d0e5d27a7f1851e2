package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PortfolioGolang/internal/config"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/markdown"
	"PortfolioGolang/pkg/smtp"
	"PortfolioGolang/pkg/validation"
	"PortfolioGolang/web"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	storage, mediaRoot, err := config.NewMediaStorage(logger)
	if err != nil {
		logger.Fatal(err)
	}

	fiberApp := config.NewFiber(logger, web.NewEngine(storage, markdown.New()))
	smtpMailer := smtp.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validation.New()),
		config.WithDatabase(),
		config.WithMediaStorage(storage, mediaRoot),
		config.WithSMTPMailer(smtpMailer),
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
