package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	API struct {
		BaseURL      string        `yaml:"base_url"`
		MediaBaseURL string        `yaml:"media_base_url"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"api"`

	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Database struct {
		DSN string `yaml:"url"` // empty = in-memory dev store
	} `yaml:"database"`

	Storage struct {
		BasePath string `yaml:"base_path"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"` // bytes
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	Features struct {
		// MockFallback substitutes generated browse results when the list
		// query fails. Development aid only; keep off in production.
		MockFallback bool `yaml:"mock_fallback"`
		// LocalFavorites keeps the saved-profiles set on local disk,
		// unsynced with the server.
		LocalFavorites bool   `yaml:"local_favorites"`
		FavoritesPath  string `yaml:"favorites_path"`
	} `yaml:"features"`
}

var AppConfig *Config

// LoadConfig reads config.yaml (or CONFIG_PATH) and applies environment
// overrides. A .env file is honored when present. The yaml file is optional
// so tests and one-off tools can run on env vars alone.
func LoadConfig() {
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			panic("config: failed to parse " + configPath + ": " + err.Error())
		}
		f.Close()
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ZANARA_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("ZANARA_MEDIA_URL"); v != "" {
		cfg.API.MediaBaseURL = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("ZANARA_MOCK_FALLBACK"); v != "" {
		cfg.Features.MockFallback = v == "1" || v == "true"
	}
}

func applyDefaults(cfg *Config) {
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.API.MediaBaseURL == "" {
		cfg.API.MediaBaseURL = cfg.API.BaseURL
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-only-secret"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/files"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
			"video/mp4", "video/quicktime",
		}
	}
	if cfg.Features.FavoritesPath == "" {
		cfg.Features.FavoritesPath = ".zanara/favorites.json"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
