package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Bedrock    BedrockConfig    `yaml:"bedrock"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// RedisConfig holds the hot-cache settings. Disabled means classifications
// are cached in Postgres (or memory) only.
type RedisConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// TTL returns the cache TTL as a duration
func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// BedrockConfig holds AWS Bedrock settings for the AI fallback
type BedrockConfig struct {
	Enabled bool   `yaml:"enabled"`
	Region  string `yaml:"region"`
	ModelID string `yaml:"model_id"`
}

// ClassifierConfig holds the deterministic classifier thresholds. Zero
// values use the built-in defaults.
type ClassifierConfig struct {
	MinKeywordScore   int     `yaml:"min_keyword_score"`
	AmbiguityRatio    float64 `yaml:"ambiguity_ratio"`
	FuzzyMinSubstring int     `yaml:"fuzzy_min_substring"`
	SharedWordMinLen  int     `yaml:"shared_word_min_len"`
	SubjectWeight     int     `yaml:"subject_weight"`
	PreviewWeight     int     `yaml:"preview_weight"`
	BodyWeight        int     `yaml:"body_weight"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.TTLMinutes == 0 {
		cfg.Redis.TTLMinutes = 60
	}
	if cfg.Bedrock.Region == "" {
		cfg.Bedrock.Region = "us-east-1"
	}
	if cfg.Bedrock.ModelID == "" {
		cfg.Bedrock.ModelID = "anthropic.claude-3-haiku-20240307-v1:0"
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars on ECS.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Database override (critical for container deployment where
	// config.yaml has local defaults)
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
		cfg.Database.Enabled = true
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
		cfg.Redis.Enabled = true
	}
	if pw := os.Getenv("REDIS_PASSWORD"); pw != "" {
		cfg.Redis.Password = pw
	}

	if region := os.Getenv("BEDROCK_REGION"); region != "" {
		cfg.Bedrock.Region = region
	}
	if modelID := os.Getenv("BEDROCK_MODEL_ID"); modelID != "" {
		cfg.Bedrock.ModelID = modelID
	}
	if os.Getenv("BEDROCK_ENABLED") == "true" {
		cfg.Bedrock.Enabled = true
	}

	return cfg, nil
}
