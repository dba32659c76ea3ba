package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppPort           int
	FormatCatalogPath string
	MaxUploadBytes    int64
}

func Load() (*Config, error) {
	appPort, err := strconv.Atoi(getEnv("APP_PORT"))
	if err != nil {
		return nil, err
	}

	maxUpload := int64(50 << 20)
	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		maxUpload, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		AppPort:           appPort,
		FormatCatalogPath: os.Getenv("FORMAT_CATALOG_PATH"),
		MaxUploadBytes:    maxUpload,
	}, nil
}

func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required but not set", key)
	}
	return value
}
