package config

import (
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"SIGNAL_STORE_URL", "MONGO_URL", "SIGNAL_DB_NAME", "SIGNAL_COLLECTION",
	"SIGNAL_STORE_TIMEOUT", "SIGNAL_SOURCE_PATH", "SIGNAL_ENRICHMENT_PATH",
	"SIGNAL_DEADLINE_TZ", "SIGNAL_LOG_LEVEL", "SIGNAL_LOG_JSON", "SIGNAL_HTTP_ADDR",
	"SIGNAL_SQLITE_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Store.URL != DefaultStoreURL {
		t.Errorf("Store.URL = %q, want %q", cfg.Store.URL, DefaultStoreURL)
	}
	if cfg.Store.Database != "studentsignal" {
		t.Errorf("Store.Database = %q", cfg.Store.Database)
	}
	if cfg.Store.Collection != "scholarships_ui" {
		t.Errorf("Store.Collection = %q", cfg.Store.Collection)
	}
	if cfg.Store.Timeout != 60*time.Second {
		t.Errorf("Store.Timeout = %v, want 60s", cfg.Store.Timeout)
	}
	if cfg.Pipeline.SourcePath != "" {
		t.Errorf("Pipeline.SourcePath = %q, want empty", cfg.Pipeline.SourcePath)
	}
	if cfg.Pipeline.EnrichmentPath != DefaultEnrichmentPath {
		t.Errorf("Pipeline.EnrichmentPath = %q", cfg.Pipeline.EnrichmentPath)
	}
	if cfg.Log.Level != "info" || cfg.Log.JSON {
		t.Errorf("Log = %+v, want info/console", cfg.Log)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIGNAL_STORE_URL", "sqlite:///tmp/catalog.db")
	t.Setenv("SIGNAL_DB_NAME", "signal_test")
	t.Setenv("SIGNAL_COLLECTION", "scholarships_v2")
	t.Setenv("SIGNAL_STORE_TIMEOUT", "5s")
	t.Setenv("SIGNAL_SOURCE_PATH", "data/scholarships.csv")
	t.Setenv("SIGNAL_ENRICHMENT_PATH", "data/enrichment.json")
	t.Setenv("SIGNAL_LOG_LEVEL", "debug")
	t.Setenv("SIGNAL_LOG_JSON", "true")
	t.Setenv("SIGNAL_HTTP_ADDR", ":9090")

	cfg := Load()
	if cfg.Store.URL != "sqlite:///tmp/catalog.db" {
		t.Errorf("Store.URL = %q", cfg.Store.URL)
	}
	if cfg.Store.Database != "signal_test" || cfg.Store.Collection != "scholarships_v2" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Store.Timeout != 5*time.Second {
		t.Errorf("Store.Timeout = %v, want 5s", cfg.Store.Timeout)
	}
	if cfg.Pipeline.SourcePath != "data/scholarships.csv" || cfg.Pipeline.EnrichmentPath != "data/enrichment.json" {
		t.Errorf("Pipeline = %+v", cfg.Pipeline)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
}

func TestLoadMongoURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URL", "mongodb://db.internal:27017")

	if got := Load().Store.URL; got != "mongodb://db.internal:27017" {
		t.Errorf("Store.URL = %q, want MONGO_URL value", got)
	}

	t.Setenv("SIGNAL_STORE_URL", "sqlite://catalog.db")
	if got := Load().Store.URL; got != "sqlite://catalog.db" {
		t.Errorf("Store.URL = %q, SIGNAL_STORE_URL should win over MONGO_URL", got)
	}
}

func TestDeadlineLocation(t *testing.T) {
	if loc := (PipelineConfig{}).DeadlineLocation(); loc != time.UTC {
		t.Errorf("empty tz = %v, want UTC", loc)
	}
	if loc := (PipelineConfig{DeadlineTZ: "Not/AZone"}).DeadlineLocation(); loc != time.UTC {
		t.Errorf("bad tz = %v, want UTC", loc)
	}
	if loc := (PipelineConfig{DeadlineTZ: "UTC"}).DeadlineLocation(); loc.String() != "UTC" {
		t.Errorf("UTC tz = %v", loc)
	}
}

func TestSQLitePath(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "/home/signal")
	if got, want := SQLitePath(), filepath.Join("/home/signal", ".studentsignal", "catalog.db"); got != want {
		t.Errorf("SQLitePath() = %q, want %q", got, want)
	}

	t.Setenv("SIGNAL_SQLITE_PATH", "/data/catalog.db")
	if got := SQLitePath(); got != "/data/catalog.db" {
		t.Errorf("SQLitePath() = %q, want SIGNAL_SQLITE_PATH", got)
	}
}
