package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL   PostgreSQLConfig
	Server       ServerConfig
	Admin        AdminConfig
	Upload       UploadConfig
	Catalog      CatalogConfig
	Ranking      RankingConfig
	Configurator ConfiguratorConfig
	Logging      LoggingConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, wins over the individual fields
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	ConnectAttempts    int
	SeedDemoData       bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int
	Host            string
	GinMode         string
	AllowedOrigins  []string
	AllowedMethods  []string
	AllowedHeaders  []string
	ShutdownTimeout int // seconds
}

// AdminConfig holds the back-office credentials.
// An empty PasswordHash leaves the admin API open.
type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt
}

// UploadConfig limits image uploads
type UploadConfig struct {
	MaxBytes int64
}

// CatalogConfig holds catalog listing defaults
type CatalogConfig struct {
	PublicInStockOnly bool
}

// RankingConfig holds similar-project ranking weights
type RankingConfig struct {
	WeightSpaceType float64
	WeightStyle     float64
	WeightProfile   float64
}

// ConfiguratorConfig holds configurator result settings
type ConfiguratorConfig struct {
	SimilarProjects int
	PriceNote       string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "mangal"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
			ConnectAttempts:    getEnvAsInt("PG_CONNECT_ATTEMPTS", 10),
			SeedDemoData:       getEnvAsBool("SEED_DEMO_DATA", false),
		},
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:         getEnv("GIN_MODE", "release"),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods:  getEnvAsList("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders:  getEnvAsList("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
			ShutdownTimeout: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getEnvAsInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		},
		Catalog: CatalogConfig{
			PublicInStockOnly: getEnvAsBool("CATALOG_IN_STOCK_ONLY", true),
		},
		Ranking: RankingConfig{
			WeightSpaceType: getEnvAsFloat("RANK_WEIGHT_SPACE_TYPE", 0.4),
			WeightStyle:     getEnvAsFloat("RANK_WEIGHT_STYLE", 0.2),
			WeightProfile:   getEnvAsFloat("RANK_WEIGHT_PROFILE", 0.4),
		},
		Configurator: ConfiguratorConfig{
			SimilarProjects: getEnvAsInt("CONFIGURATOR_SIMILAR_PROJECTS", 3),
			PriceNote:       getEnv("CONFIGURATOR_PRICE_NOTE", "Точная стоимость после замеров и консультации"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Upload.MaxBytes <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_BYTES must be positive, got %d", cfg.Upload.MaxBytes)
	}
	if cfg.Configurator.SimilarProjects < 0 {
		return nil, fmt.Errorf("CONFIGURATOR_SIMILAR_PROJECTS must not be negative")
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// AdminAuthEnabled reports whether admin routes require credentials
func (c *Config) AdminAuthEnabled() bool {
	return c.Admin.PasswordHash != ""
}

// EffectiveGinMode returns the gin mode, forced to debug when LOG_LEVEL=debug
func (c *Config) EffectiveGinMode() string {
	if strings.EqualFold(c.Logging.Level, "debug") {
		return "debug"
	}
	return c.Server.GinMode
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
