package main

import (
	"freelance_backend/internal/app"
	"freelance_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
