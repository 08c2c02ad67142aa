package handlers

import (
	"log/slog"

	"github.com/hagd0520/my-memo/internal/config"
	"github.com/hagd0520/my-memo/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Error payload kinds, one per failure class in the error taxonomy.
const (
	kindValidation     = "validation"
	kindDuplicate      = "duplicate_username"
	kindAuthentication = "authentication"
	kindUnauthorized   = "unauthorized"
	kindNotFound       = "not_found"
	kindStore          = "store_error"
)

func errorJSON(kind, message string) gin.H {
	return gin.H{"kind": kind, "error": message}
}

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	db             *gorm.DB
	rdb            *redis.Client
	memoService    *services.MemoService
	accountService *services.AccountService
	auditService   *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	memoService *services.MemoService,
	accountService *services.AccountService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		rdb:            rdb,
		memoService:    memoService,
		accountService: accountService,
		auditService:   auditService,
	}
}
