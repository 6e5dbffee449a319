package dbprep

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"

	_ "github.com/go-sql-driver/mysql"

	"github.com/benZhai01/vstest/internal/config"
)

// DatabaseManager ensures the isolated per-worker test databases exist
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

var validDatabaseName = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

// EnsureDatabases checks that one database per worker exists, creating any
// that are missing. Returns the worker IDs that have a database.
func (dm *DatabaseManager) EnsureDatabases(workerCount int) ([]int, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/",
		envOrDefault("DB_USERNAME", "root"),
		os.Getenv("DB_PASSWORD"),
		envOrDefault("DB_HOST", "127.0.0.1"),
		envOrDefault("DB_PORT", "3306"),
	)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database server: %w", err)
	}

	workers := make([]int, 0, workerCount)
	for i := 1; i <= workerCount; i++ {
		name := dm.config.WorkerDatabase(i)
		if !validDatabaseName.MatchString(name) {
			return nil, fmt.Errorf("invalid database name: %s", name)
		}
		if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", name)); err != nil {
			return nil, fmt.Errorf("create database %s: %w", name, err)
		}
		workers = append(workers, i)
	}
	return workers, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
