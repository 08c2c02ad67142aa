package services

import (
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/hagd0520/my-memo/internal/config"

	"github.com/oschwald/geoip2-golang"
)

// GeoIPService tags audit entries with the country a request came from.
// Lookups stay disabled unless a local MaxMind database is configured.
type GeoIPService struct {
	cfg       config.Config
	logger    *slog.Logger
	geoReader *geoip2.Reader
	geoLock   sync.RWMutex
}

func NewGeoIPService(cfg config.Config, logger *slog.Logger) *GeoIPService {
	return &GeoIPService{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *GeoIPService) Init() {
	dbPath := s.cfg.GeoIPDBPath
	if dbPath == "" {
		s.logger.Warn("GeoIP: database path not set. Lookups will be disabled.")
		return
	}

	if _, err := os.Stat(dbPath); err != nil {
		s.logger.Error("GeoIP: database not readable", "path", dbPath, "error", err)
		return
	}

	reader, err := geoip2.Open(dbPath)
	if err != nil {
		s.logger.Error("GeoIP: Failed to open database", "path", dbPath, "error", err)
		return
	}

	s.geoLock.Lock()
	if s.geoReader != nil {
		s.geoReader.Close()
	}
	s.geoReader = reader
	s.geoLock.Unlock()

	meta := reader.Metadata()
	s.logger.Info("GeoIP: Loaded database", "epoch", meta.BuildEpoch)
}

func (s *GeoIPService) Close() {
	s.geoLock.Lock()
	defer s.geoLock.Unlock()

	if s.geoReader != nil {
		s.geoReader.Close()
		s.geoReader = nil
	}
}

func (s *GeoIPService) Country(ipStr string) string {
	if ipStr == "127.0.0.1" || ipStr == "::1" {
		return "Localhost"
	}

	s.geoLock.RLock()
	reader := s.geoReader
	s.geoLock.RUnlock()

	if reader == nil {
		return "Unknown"
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return "Invalid IP"
	}

	record, err := reader.Country(ip)
	if err != nil {
		s.logger.Error("GeoIP: Lookup error", "ip", ipStr, "error", err)
		return "Error"
	}

	if name, ok := record.Country.Names["en"]; ok && name != "" {
		return name
	}
	if record.Country.IsoCode != "" {
		return record.Country.IsoCode
	}
	return "Unknown"
}
