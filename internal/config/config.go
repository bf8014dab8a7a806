package config

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	logger *logrus.Logger

	// DB is the shared connection pool, opened once by Connect.
	DB *gorm.DB
)

// Init configures the process-wide logger. LOG_LEVEL accepts any
// logrus level name; the default is info.
func Init() {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// WithContext returns a request-scoped logger carrying the chi request id.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if logger == nil {
		Init()
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return logger.WithField("request_id", reqID)
	}
	return logger.WithFields(logrus.Fields{})
}

// JSON writes v as a JSON response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		WithContext(context.Background()).WithError(err).Error("Failed to encode JSON response")
	}
}

// Connect opens the Postgres pool and runs migrations for the given models.
func Connect(ctx context.Context, dsn string, models ...interface{}) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return err
		}
	}

	DB = db
	return nil
}
