package config

import (
	"log/slog"
	"os"
	"strings"
)

// ArchiveURL is the NASA Exoplanet Archive TAP query the data loader hits.
const defaultArchiveURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync?query=select+pl_name,hostname,sy_snum,sy_pnum,discoverymethod,disc_year,disc_facility,pl_orbper,pl_orbsmax,pl_rade,pl_bmasse,pl_orbeccen,st_spectype,st_teff,st_rad,st_mass,st_met,st_logg,rastr,decstr,sy_dist,sy_vmag,sy_kmag,sy_gaiamag+from+pscomppars&format=json"

type Config struct {
	ListenAddr string
	RedisURL   string
	ArchiveURL string
	LogLevel   slog.Level
}

func Load() Config {
	return Config{
		ListenAddr: getenv("LISTEN_ADDR", ":5000"),
		RedisURL:   getenv("REDIS_URL", "redis://localhost:6379"),
		ArchiveURL: getenv("ARCHIVE_URL", defaultArchiveURL),
		LogLevel:   parseLevel(getenv("LOG_LEVEL", "warn")),
	}
}

// Logger builds the process-wide JSON logger at the configured level.
func (c Config) Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseLevel maps the enumerated LOG_LEVEL values. Unknown values fall back
// to warn rather than failing startup.
func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
