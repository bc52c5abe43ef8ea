package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultStoreURL       = "mongodb://localhost:27017"
	DefaultDatabase       = "studentsignal"
	DefaultCollection     = "scholarships_ui"
	DefaultEnrichmentPath = "scholarship_manual_enrichment.json"
)

// Config holds everything the pipeline and the catalog server need.
type Config struct {
	Store    StoreConfig
	Pipeline PipelineConfig
	Log      LogConfig
	HTTPAddr string
}

// StoreConfig addresses the destination collection.
type StoreConfig struct {
	URL        string // mongodb://... or sqlite://path
	Database   string
	Collection string
	Timeout    time.Duration // 0 means no deadline on store calls
}

// PipelineConfig controls where records and enrichment come from.
type PipelineConfig struct {
	SourcePath     string // empty means the built-in seed records
	EnrichmentPath string
	DeadlineTZ     string
}

type LogConfig struct {
	Level string
	JSON  bool
}

// Load reads configuration from the environment (and a .env file in the
// working directory, if there is one) with local-development defaults.
func Load() Config {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// MONGO_URL is kept as a fallback for existing deployments.
	_ = v.BindEnv("store.url", "SIGNAL_STORE_URL", "MONGO_URL")
	_ = v.BindEnv("store.database", "SIGNAL_DB_NAME")
	_ = v.BindEnv("store.collection", "SIGNAL_COLLECTION")
	_ = v.BindEnv("store.timeout", "SIGNAL_STORE_TIMEOUT")
	_ = v.BindEnv("pipeline.source", "SIGNAL_SOURCE_PATH")
	_ = v.BindEnv("pipeline.enrichment", "SIGNAL_ENRICHMENT_PATH")
	_ = v.BindEnv("pipeline.deadline_tz", "SIGNAL_DEADLINE_TZ")
	_ = v.BindEnv("log.level", "SIGNAL_LOG_LEVEL")
	_ = v.BindEnv("log.json", "SIGNAL_LOG_JSON")
	_ = v.BindEnv("http.addr", "SIGNAL_HTTP_ADDR")

	return Config{
		Store: StoreConfig{
			URL:        v.GetString("store.url"),
			Database:   v.GetString("store.database"),
			Collection: v.GetString("store.collection"),
			Timeout:    v.GetDuration("store.timeout"),
		},
		Pipeline: PipelineConfig{
			SourcePath:     v.GetString("pipeline.source"),
			EnrichmentPath: v.GetString("pipeline.enrichment"),
			DeadlineTZ:     v.GetString("pipeline.deadline_tz"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			JSON:  v.GetBool("log.json"),
		},
		HTTPAddr: v.GetString("http.addr"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.url", DefaultStoreURL)
	v.SetDefault("store.database", DefaultDatabase)
	v.SetDefault("store.collection", DefaultCollection)
	v.SetDefault("store.timeout", 60*time.Second)
	v.SetDefault("pipeline.source", "")
	v.SetDefault("pipeline.enrichment", DefaultEnrichmentPath)
	v.SetDefault("pipeline.deadline_tz", "UTC")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("http.addr", ":8080")
}

// SQLitePath is where a bare sqlite:// store URL keeps the catalog:
// SIGNAL_SQLITE_PATH when set, otherwise ~/.studentsignal/catalog.db.
func SQLitePath() string {
	v := viper.New()
	_ = v.BindEnv("sqlite.path", "SIGNAL_SQLITE_PATH")
	if p := v.GetString("sqlite.path"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".studentsignal", "catalog.db")
}

// DeadlineLocation resolves DeadlineTZ, falling back to UTC when the zone
// is unknown.
func (c PipelineConfig) DeadlineLocation() *time.Location {
	if c.DeadlineTZ == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.DeadlineTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}
