package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Sheets   SheetsConfig
	Graph    GraphConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SheetsConfig points at the governance spreadsheet. GIDs select the edge
// and node tabs for the CSV export endpoint; the ranges are used by the
// Sheets API client instead when UseAPI is set.
type SheetsConfig struct {
	SheetID    string
	EdgesGID   string
	NodesGID   string
	UseAPI     bool
	EdgesRange string
	NodesRange string
}

type GraphConfig struct {
	Anchor      string
	Aggregation string
	Strict      bool
	RefreshCron string
	ExportDir   string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// Load reads configuration from the environment. DATA_SOURCE selects the
// env file: "template" loads client_credentials/.env, "client" overrides
// with client_credentials/.env-client.
func Load() (*Config, error) {
	switch os.Getenv("DATA_SOURCE") {
	case "client":
		if err := godotenv.Overload("client_credentials/.env-client"); err != nil {
			log.Println("No client env file found, using environment variables")
		}
	default:
		if err := godotenv.Load("client_credentials/.env"); err != nil {
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, using environment variables")
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "sig"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Sheets: SheetsConfig{
			SheetID:    getEnv("GS_SHEET_ID", ""),
			EdgesGID:   getEnv("GS_GID_EDGES", ""),
			NodesGID:   getEnv("GS_GID_NODES", ""),
			UseAPI:     getEnvAsBool("GS_USE_API", false),
			EdgesRange: getEnv("GS_RANGE_EDGES", "edges"),
			NodesRange: getEnv("GS_RANGE_NODES", "nodes"),
		},
		Graph: GraphConfig{
			Anchor:      getEnv("SIG_ANCHOR_NODE", "roles"),
			Aggregation: getEnv("SIG_AGGREGATION", "none"),
			Strict:      getEnvAsBool("SIG_STRICT_BUILD", false),
			RefreshCron: getEnv("REFRESH_CRON", "0 0 0 * * *"),
			ExportDir:   getEnv("SIG_EXPORT_DIR", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Sheets.SheetID == "" {
		return fmt.Errorf("GS_SHEET_ID is required")
	}

	if !c.Sheets.UseAPI && (c.Sheets.EdgesGID == "" || c.Sheets.NodesGID == "") {
		return fmt.Errorf("GS_GID_EDGES and GS_GID_NODES are required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
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
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
