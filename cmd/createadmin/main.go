package main

import (
	"flag"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/config"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/database"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/logger"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Mode)

	if *username == "" || *password == "" {
		logger.Log.Fatal("both -username and -password are required")
	}

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	if err := authService.CreateAdmin(*username, *password); err != nil {
		logger.Log.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Log.Info("admin created", zap.String("username", *username))
}
