package services

import (
	"context"
	"testing"
	"time"

	"github.com/hagd0520/my-memo/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAuditService(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuditService(db, testLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Start(ctx)

	uid := uint(1)
	svc.LogAction(&uid, "LOGIN", "alice", map[string]interface{}{"ok": true}, "127.0.0.1",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	// Worker writes asynchronously
	var entry models.AuditLog
	assert.Eventually(t, func() bool {
		return db.Where("action = ?", "LOGIN").First(&entry).Error == nil
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "alice", entry.EntityID)
	assert.Equal(t, &uid, entry.UserID)
	assert.Contains(t, entry.UserAgent, "Chrome")
	assert.Contains(t, entry.Details, "ok")
}

func TestSummarizeUserAgent(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", summarizeUserAgent(""))
	})

	t.Run("Browser And OS", func(t *testing.T) {
		summary := summarizeUserAgent("Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0")
		assert.Contains(t, summary, "Firefox")
	})
}
