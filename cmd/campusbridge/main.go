package main

import (
	"os"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/auth"
	"github.com/campusbridge/campusbridge/internal/handlers"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/router"
	"github.com/campusbridge/campusbridge/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine in deployed environments where config comes
	// from the process environment.
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := auth.InitJWTSecret(); err != nil {
		logger.Fatal("failed to initialize JWT secret", "error", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatal("failed to migrate database", "error", err)
	}

	generator, err := services.NewTimetableGenerator()

	if err != nil {
		logger.Warn("AI timetable generation disabled", "error", err)
	} else {
		handlers.Generator = generator
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		logger.Info("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
