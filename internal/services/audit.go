package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/hagd0520/my-memo/internal/models"

	"github.com/mssola/user_agent"
	"gorm.io/gorm"
)

// AuditService persists authentication events (signup, login, logout)
// through a buffered channel so request handlers never block on the audit
// table. Memo operations are not audited.
type AuditService struct {
	db           *gorm.DB
	logger       *slog.Logger
	geoIPService *GeoIPService
	auditChannel chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger, geoIPService *GeoIPService) *AuditService {
	return &AuditService{
		db:           db,
		logger:       logger,
		geoIPService: geoIPService,
		auditChannel: make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	s.logger.Info("Audit worker starting")
	for {
		select {
		case entry := <-s.auditChannel:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Audit worker stopping")
			return
		}
	}
}

func (s *AuditService) LogAction(userID *uint, action, entityID string, details interface{}, ip, rawUserAgent string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		UserAgent: summarizeUserAgent(rawUserAgent),
		Timestamp: time.Now(),
	}

	if s.geoIPService != nil {
		entry.Country = s.geoIPService.Country(ip)
	}

	select {
	case s.auditChannel <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}

func summarizeUserAgent(raw string) string {
	if raw == "" {
		return ""
	}
	ua := user_agent.New(raw)
	browserName, browserVer := ua.Browser()
	summary := strings.TrimSpace(browserName + " " + browserVer)
	if os := ua.OS(); os != "" {
		summary = summary + " / " + os
	}
	return summary
}
