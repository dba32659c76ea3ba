package main

import (
	"log"
	"strconv"

	"go.uber.org/zap"

	"github.com/homdahal997/fileapi/api"
	"github.com/homdahal997/fileapi/config"
	"github.com/homdahal997/fileapi/convert"
	"github.com/homdahal997/fileapi/format"
	"github.com/homdahal997/fileapi/pdfextract"
)

func main() {
	// =========
	// Config
	// =========
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Format catalog
	// =========
	catalog, err := format.Load(cfg.FormatCatalogPath)
	if err != nil {
		logger.Fatal("failed to load format catalog", zap.Error(err))
	}

	// =========
	// PDF extraction chain
	// =========
	extractor := pdfextract.New(pdfextract.Config{}, logger)

	// =========
	// Conversion Service
	// =========
	service := convert.NewService(catalog, extractor, logger)

	// =========
	// HTTP
	// =========
	server := api.NewServer(service, logger, strconv.Itoa(cfg.AppPort), cfg.MaxUploadBytes)
	if err := server.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
