package services

import (
	"testing"

	"github.com/hagd0520/my-memo/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestGeoIPService(t *testing.T) {
	t.Run("Disabled Without DB Path", func(t *testing.T) {
		svc := NewGeoIPService(config.Config{}, testLogger())
		svc.Init()
		assert.Equal(t, "Unknown", svc.Country("8.8.8.8"))
	})

	t.Run("Localhost Shortcut", func(t *testing.T) {
		svc := NewGeoIPService(config.Config{}, testLogger())
		assert.Equal(t, "Localhost", svc.Country("127.0.0.1"))
		assert.Equal(t, "Localhost", svc.Country("::1"))
	})

	t.Run("Missing DB File", func(t *testing.T) {
		svc := NewGeoIPService(config.Config{GeoIPDBPath: "/nonexistent/geo.mmdb"}, testLogger())
		svc.Init()
		assert.Equal(t, "Unknown", svc.Country("8.8.8.8"))
	})

	t.Run("Close Without Reader", func(t *testing.T) {
		svc := NewGeoIPService(config.Config{}, testLogger())
		svc.Close()
		assert.Equal(t, "Unknown", svc.Country("8.8.8.8"))
	})
}
