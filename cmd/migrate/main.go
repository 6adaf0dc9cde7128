package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/adspacehq/adspace/internal/config"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/postgres"
)

const defaultSchemaPath = "scripts/schema.sql"

// Applies the database schema. The schema is idempotent (CREATE ... IF NOT
// EXISTS) so rerunning is safe.
func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.Fatalf("failed to load config: %v", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.L.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := postgres.NewClient(cfg, log)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	schemaPath := defaultSchemaPath
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatalf("failed to read schema file %s: %v", schemaPath, err)
	}

	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	log.Infow("schema applied", "path", schemaPath)
}
