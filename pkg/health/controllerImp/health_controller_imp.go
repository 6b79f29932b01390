package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbErr := h.pingDB(ctx)

	status := http.StatusOK
	if dbErr != "" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"ok":         dbErr == "",
		"db_error":   dbErr,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingDB(ctx context.Context) string {
	if h.db == nil {
		return "gorm db is nil"
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return "db.DB(): " + err.Error()
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "ping: " + err.Error()
	}
	return ""
}
