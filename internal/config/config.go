package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/ramalMr/cocktail-advisor/internal/cache"
	"github.com/ramalMr/cocktail-advisor/internal/corpus"
	"github.com/ramalMr/cocktail-advisor/internal/domain"
	embeddingopenai "github.com/ramalMr/cocktail-advisor/internal/embedding/openai"
	"github.com/ramalMr/cocktail-advisor/internal/embedding/retry"
	chatopenai "github.com/ramalMr/cocktail-advisor/internal/provider/openai"
)

// Config represents the advisor configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Redis     RedisConfig
	Embedding embeddingopenai.Config
	Chat      chatopenai.Config
	Retry     retry.Config
	Cache     cache.Config
	Advisor   domain.AdvisorConfig
	Corpus    corpus.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int `env:"SERVER_PORT"            envDefault:"8080"`
	ReadTimeout    int `env:"SERVER_READ_TIMEOUT"    envDefault:"30"`
	WriteTimeout   int `env:"SERVER_WRITE_TIMEOUT"   envDefault:"30"`
	RequestTimeout int `env:"SERVER_REQUEST_TIMEOUT" envDefault:"25"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RedisConfig contains Redis connection settings. An empty address disables
// cache persistence and falls back to in-memory preferences.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*RedisConfig
	Embedding *embeddingopenai.Config
	Chat      *chatopenai.Config
	Retry     *retry.Config
	Cache     *cache.Config
	*domain.AdvisorConfig
	Corpus *corpus.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		ServerConfig:  &cfg.Server,
		CORSConfig:    &cfg.CORS,
		RedisConfig:   &cfg.Redis,
		Embedding:     &cfg.Embedding,
		Chat:          &cfg.Chat,
		Retry:         &cfg.Retry,
		Cache:         &cfg.Cache,
		AdvisorConfig: &cfg.Advisor,
		Corpus:        &cfg.Corpus,
	}
}
