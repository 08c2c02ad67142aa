package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/hagd0520/my-memo/internal/config"
	"github.com/hagd0520/my-memo/internal/models"
	"github.com/hagd0520/my-memo/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.Memo{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret:         "test-secret-12345678901234567890123456789012",
		SessionMaxAge:         3600,
		RequestTimeoutSeconds: 5,
	}

	audit := services.NewAuditService(db, logger, nil)
	memo := services.NewMemoService(db, logger)
	accounts := services.NewAccountService(db, logger)

	h := NewHandler(cfg, logger, db, nil, memo, accounts, audit)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := h.SetupRouter(nil, "../../web/templates/*")

	// Session fixture for authenticated requests
	r.GET("/set-session/:name", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("username", c.Param("name"))
		session.Save()
		c.Status(200)
	})

	return r
}

func sessionCookie(r *gin.Engine, username string) string {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/set-session/"+username, nil)
	r.ServeHTTP(w, req)
	return w.Header().Get("Set-Cookie")
}
