package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort      string
	StorageDriver string // file | memory | postgres | badger
	DataFile      string // file sürücüsü için JSON dosya yolu
	DatabaseDSN   string // postgres sürücüsü için
	BadgerPath    string // badger sürücüsü için klasör yolu
	CORSOrigins   string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataFile:      getEnv("DATA_FILE", "./data/qms_inspections_v2.json"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=qms port=5432 sslmode=disable"),
		BadgerPath:    getEnv("BADGER_PATH", "./data/badger"),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	switch cfg.StorageDriver {
	case "file", "memory", "postgres", "badger":
	default:
		log.Fatalf("[FATAL] Bilinmeyen STORAGE_DRIVER: %q (file | memory | postgres | badger)", cfg.StorageDriver)
	}

	if cfg.StorageDriver == "memory" {
		log.Println("[WARN] memory sürücüsü kalıcı değildir, yalnızca deneme için kullanın.")
	}
	if cfg.StorageDriver == "postgres" && cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=qms port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgini tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
