package config

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func Init() {
	_ = godotenv.Load()

	logger = logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func Logger() *logrus.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

func WithContext(ctx context.Context) logrus.FieldLogger {
	log := Logger()
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return log.WithField("request_id", reqID)
	}
	return logrus.NewEntry(log)
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger().WithError(err).Error("Failed to encode JSON response")
	}
}
