package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// persistence
	StorageBackend string `toml:"storage_backend" validate:"oneof=file sqlite redis"`
	StoragePath    string `toml:"storage_path"`
	StorageSlot    string `toml:"storage_slot" validate:"required"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// avatar
	AvatarMode            string        `toml:"avatar_mode" validate:"oneof=static generate"`
	StaticStrategy        string        `toml:"static_strategy" validate:"oneof=per_level stage"`
	StaticAssetRoot       string        `toml:"static_asset_root" validate:"required"`
	ImageAPIURL           string        `toml:"image_api_url"`
	ImageModel            string        `toml:"image_model"`
	ImageAspectRatio      string        `toml:"image_aspect_ratio"`
	GenerationMaxAttempts int           `toml:"generation_max_attempts" validate:"gte=1,lte=10"`
	GenerationBaseDelay   time.Duration `toml:"generation_base_delay" validate:"gte=0"`
	GenerationMultiplier  float64       `toml:"generation_multiplier" validate:"gte=1"`
	GenerationPerMinute   int           `toml:"generation_per_minute" validate:"gte=0"`
	BatchDelay            time.Duration `toml:"batch_delay" validate:"gte=0"`
	AvatarCacheMB         int           `toml:"avatar_cache_mb" validate:"gte=0"`
	AvatarCacheTTL        time.Duration `toml:"avatar_cache_ttl" validate:"gte=0"`
	AssetOutputDir        string        `toml:"asset_output_dir"`

	// telemetry
	MetricsHost      string `toml:"metrics_host"`
	MetricsPort      int    `toml:"metrics_port" validate:"gte=0,lte=65535"`
	HoneycombEnabled bool   `toml:"honeycomb_enabled"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config for the given env,
// with defaults applied and values validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing in %s", env, path)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Default returns a config usable without any file, all defaults applied.
func Default() *Config {
	cfg := &Config{Environment: "development"}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.StorageBackend == "" {
		c.StorageBackend = "file"
	}
	if c.StoragePath == "" {
		c.StoragePath = "./data"
	}
	if c.StorageSlot == "" {
		c.StorageSlot = "unicorn_stats"
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.AvatarMode == "" {
		c.AvatarMode = "static"
	}
	if c.StaticStrategy == "" {
		c.StaticStrategy = "per_level"
	}
	if c.StaticAssetRoot == "" {
		c.StaticAssetRoot = "https://rsnkmyqbzvwbghfqyjui.supabase.co/storage/v1/object/public/unicorns"
	}
	if c.ImageAPIURL == "" {
		c.ImageAPIURL = "https://generativelanguage.googleapis.com"
	}
	if c.ImageModel == "" {
		c.ImageModel = "gemini-2.5-flash-image"
	}
	if c.ImageAspectRatio == "" {
		c.ImageAspectRatio = "1:1"
	}
	if c.GenerationMaxAttempts == 0 {
		c.GenerationMaxAttempts = 4
	}
	if c.GenerationBaseDelay == 0 {
		c.GenerationBaseDelay = 3 * time.Second
	}
	if c.GenerationMultiplier == 0 {
		c.GenerationMultiplier = 2
	}
	if c.BatchDelay == 0 {
		c.BatchDelay = time.Second
	}
	if c.AvatarCacheMB == 0 {
		c.AvatarCacheMB = 32
	}
	if c.AvatarCacheTTL == 0 {
		c.AvatarCacheTTL = time.Hour
	}
	if c.AssetOutputDir == "" {
		c.AssetOutputDir = "./assets/unicorns"
	}
	if c.MetricsHost == "" {
		c.MetricsHost = "localhost"
	}
}
