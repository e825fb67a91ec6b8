package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Session  SessionConfig
	HRMS     HRMSConfig
	Portal   PortalConfig
	Meet     MeetConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	FrontendURL   string
	Timezone      string
	DefaultLocale string
}

// SessionConfig controls server-side identity sessions
type SessionConfig struct {
	// EncryptionKey is the 32-byte key sealing upstream tokens at rest
	EncryptionKey []byte
	TTL           time.Duration
	PurgeInterval time.Duration
}

// HRMSConfig holds the HRMS backend connection
type HRMSConfig struct {
	BaseURL         string
	APIToken        string
	ClientID        string
	ClientSecret    string
	TokenURL        string
	Scopes          []string
	Timeout         time.Duration
	ResolveInterval time.Duration
	EndpointsFile   string
	Endpoints       HRMSEndpoints
	StatsStaleAfter time.Duration
}

// PortalConfig holds the career-platform backend (content, seeker profile,
// resume pipeline, login issuer)
type PortalConfig struct {
	BaseURL string
	Timeout time.Duration
}

// MeetConfig holds the Meet-scheduling service
type MeetConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig holds file storage for generated exports
type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "career-gateway"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		Timezone:      getEnv("APP_TIMEZONE", "Asia/Jakarta"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Session configuration
	sessionTTL, err := getEnvDuration("SESSION_TTL", "168h")
	if err != nil {
		return nil, err
	}
	purgeInterval, err := getEnvDuration("SESSION_PURGE_INTERVAL", "1h")
	if err != nil {
		return nil, err
	}
	var encryptionKey []byte
	if raw := getEnv("SESSION_ENCRYPTION_KEY", ""); raw != "" {
		encryptionKey, err = base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_ENCRYPTION_KEY: %w", err)
		}
	}
	config.Session = SessionConfig{
		EncryptionKey: encryptionKey,
		TTL:           sessionTTL,
		PurgeInterval: purgeInterval,
	}

	// HRMS configuration
	hrmsTimeout, err := getEnvDuration("HRMS_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	resolveInterval, err := getEnvDuration("HRMS_RESOLVE_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}
	staleAfter, err := getEnvDuration("HRMS_STATS_STALE_AFTER", "10m")
	if err != nil {
		return nil, err
	}
	endpointsFile := getEnv("HRMS_ENDPOINTS_FILE", "")
	endpoints, err := LoadHRMSEndpoints(endpointsFile)
	if err != nil {
		return nil, err
	}
	config.HRMS = HRMSConfig{
		BaseURL:         getEnv("HRMS_BASE_URL", ""),
		APIToken:        getEnv("HRMS_API_TOKEN", ""),
		ClientID:        getEnv("HRMS_CLIENT_ID", ""),
		ClientSecret:    getEnv("HRMS_CLIENT_SECRET", ""),
		TokenURL:        getEnv("HRMS_TOKEN_URL", ""),
		Scopes:          getEnvSlice("HRMS_SCOPES"),
		Timeout:         hrmsTimeout,
		ResolveInterval: resolveInterval,
		EndpointsFile:   endpointsFile,
		Endpoints:       endpoints,
		StatsStaleAfter: staleAfter,
	}

	// Portal backend configuration
	portalTimeout, err := getEnvDuration("PORTAL_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	config.Portal = PortalConfig{
		BaseURL: getEnv("PORTAL_BASE_URL", "http://localhost:5000"),
		Timeout: portalTimeout,
	}

	// Meet-scheduling service configuration
	meetTimeout, err := getEnvDuration("MEET_TIMEOUT", "20s")
	if err != nil {
		return nil, err
	}
	config.Meet = MeetConfig{
		BaseURL: getEnv("MEET_BASE_URL", "http://localhost:5001"),
		Timeout: meetTimeout,
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if len(c.Session.EncryptionKey) != 32 {
		return fmt.Errorf("SESSION_ENCRYPTION_KEY must be 32 bytes, base64 encoded")
	}
	if c.HRMS.BaseURL == "" {
		return fmt.Errorf("HRMS_BASE_URL is required")
	}
	if c.HRMS.ClientID != "" && (c.HRMS.ClientSecret == "" || c.HRMS.TokenURL == "") {
		return fmt.Errorf("HRMS_CLIENT_SECRET and HRMS_TOKEN_URL are required when HRMS_CLIENT_ID is set")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the timezone used to derive local dates.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
