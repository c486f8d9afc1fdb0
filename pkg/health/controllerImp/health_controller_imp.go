package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmsurvey/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health reports whether the survey store is reachable and migrated.
// Offline collectors poll this before attempting a sync.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbCheck := h.pingDB(ctx)
	schemaCheck := h.checkSchema()

	allOK := dbCheck.OK && schemaCheck.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	var surveyCount int64
	if allOK {
		h.db.WithContext(ctx).Model(&entities.FarmSurvey{}).Count(&surveyCount)
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": dbCheck,
			"schema":   schemaCheck,
		},
		"surveys": surveyCount,
		"time":    time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}

func (h *HealthCtrl) pingDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) checkSchema() check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	m := h.db.Migrator()
	for _, model := range []any{&entities.FarmSurvey{}, &entities.Tree{}} {
		if !m.HasTable(model) {
			return check{Err: "schema not migrated"}
		}
	}
	return check{OK: true}
}
