package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-questions-api/internal/config"
)

// Утилита для ручного управления схемой: up, down, force (снятие dirty-состояния)
func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	dsn := flag.String("dsn", "", "строка подключения к PostgreSQL (по умолчанию берется из конфигурации)")
	path := flag.String("path", "", "источник миграций, например file://migrations")
	cmd := flag.String("cmd", "up", "команда: up, down или force")
	version := flag.Int("version", -1, "версия для команды force")
	flag.Parse()

	connStr := *dsn
	sourceURL := *path
	if connStr == "" || sourceURL == "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if connStr == "" {
			connStr = cfg.Database.PostgresConnectionString()
		}
		if sourceURL == "" {
			sourceURL = cfg.Server.MigrationsPath
		}
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(m, *cmd, *version); err != nil {
		log.Printf("Migration %s failed: %v", *cmd, err)
		os.Exit(1)
	}

	current, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Printf("Failed to read migration version: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Done. Current version: %d (dirty: %t)\n", current, dirty)
}

func run(m *migrate.Migrate, cmd string, version int) error {
	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		// Откатываем только одну миграцию
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "force":
		if version < 0 {
			return fmt.Errorf("force requires -version")
		}
		fmt.Printf("Forcing migration version to %d to clean dirty state...\n", version)
		return m.Force(version)
	default:
		return fmt.Errorf("unknown command %q (expected up, down or force)", cmd)
	}
}
