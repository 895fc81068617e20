package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort   string `yaml:"APP_PORT"`
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	SQLitePath string `yaml:"SQLITE_PATH"`

	// Redis cache
	RedisAddr       string `yaml:"REDIS_ADDR"`
	RedisPassword   string `yaml:"REDIS_PASSWORD"`
	RedisDB         string `yaml:"REDIS_DB"`
	CacheTTLSeconds string `yaml:"CACHE_TTL_SECONDS"`

	// Recommendation engine
	RecommendationLimit string `yaml:"RECOMMENDATION_LIMIT"`

	// Admin access
	JWTSecret         string `yaml:"JWT_SECRET"`
	AdminPasswordHash string `yaml:"ADMIN_PASSWORD_HASH"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

// LoadConfig reads config.yaml (or the file named by CONFIG_PATH). Values
// already present in the environment win over the file.
func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err = yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	for key, field := range fields() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
			continue
		}
		os.Setenv(key, *field)
	}
}

func fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":             &config.AppPort,
		"LOG_LEVEL":            &config.LogLevel,
		"LOG_FORMAT":           &config.LogFormat,
		"DB_DRIVER":            &config.DBDriver,
		"DB_USER":              &config.DBUser,
		"DB_NAME":              &config.DBName,
		"DB_PASSWORD":          &config.DBPassword,
		"DB_PORT":              &config.DBPort,
		"DB_HOST":              &config.DBHost,
		"SQLITE_PATH":          &config.SQLitePath,
		"REDIS_ADDR":           &config.RedisAddr,
		"REDIS_PASSWORD":       &config.RedisPassword,
		"REDIS_DB":             &config.RedisDB,
		"CACHE_TTL_SECONDS":    &config.CacheTTLSeconds,
		"RECOMMENDATION_LIMIT": &config.RecommendationLimit,
		"JWT_SECRET":           &config.JWTSecret,
		"ADMIN_PASSWORD_HASH":  &config.AdminPasswordHash,
		"AWS_S3_BUCKET":        &config.AWSS3Bucket,
		"AWS_S3_REGION":        &config.AWSS3Region,
		"AWS_ACCESS_KEY":       &config.AWSAccessKey,
		"AWS_SECRET_KEY":       &config.AWSSecretKey,
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		if config.AppPort == "" {
			return "8080"
		}
		return config.AppPort
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FORMAT":
		return config.LogFormat
	case "DB_DRIVER":
		if config.DBDriver == "" {
			return "postgres"
		}
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SQLITE_PATH":
		if config.SQLitePath == "" {
			return "healthy-eats.db"
		}
		return config.SQLitePath
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "REDIS_DB":
		return config.RedisDB
	case "CACHE_TTL_SECONDS":
		return config.CacheTTLSeconds
	case "RECOMMENDATION_LIMIT":
		return config.RecommendationLimit
	case "JWT_SECRET":
		return config.JWTSecret
	case "ADMIN_PASSWORD_HASH":
		return config.AdminPasswordHash
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetConfigInt parses an integer setting, returning fallback when it is unset or malformed.
func GetConfigInt(key string, fallback int) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return v
}
